package models

// SeriesPoint is one month of the Monthly Citation Metric time series.
type SeriesPoint struct {
	Month string  `json:"month" bson:"month"`
	Value float64 `json:"value" bson:"value"`
}

// Snapshot is the persisted metric state for one source. Scalar metrics are
// pointers: a nil value serializes as JSON null when neither the current run
// nor the prior snapshot produced it.
type Snapshot struct {
	Source    string        `json:"source" bson:"source"`
	UpdatedAt string        `json:"updated_at" bson:"updated_at"`
	H5Index   *float64      `json:"h5_index" bson:"h5_index"`
	MCM       *float64      `json:"mcm" bson:"mcm"`
	Series    []SeriesPoint `json:"series" bson:"series"`
}

// ArchiveEntry is one history record written to the snapshot archive after a
// successful run.
type ArchiveEntry struct {
	Source      string        `bson:"source"`
	UpdatedAt   string        `bson:"updated_at"`
	H5Index     *float64      `bson:"h5_index"`
	MCM         *float64      `bson:"mcm"`
	Series      []SeriesPoint `bson:"series"`
	ContentHash string        `bson:"content_hash"`
	FetchedAt   int64         `bson:"fetched_at"`
}
