// Package store persists the metrics snapshot as a pretty-printed JSON file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/peas8810/ojs/internal/models"
)

// Load reads the snapshot at path. A missing or unreadable file and malformed
// JSON all count as "no prior snapshot": an empty Snapshot is returned.
func Load(path string) *models.Snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		return &models.Snapshot{}
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return &models.Snapshot{}
	}
	return &snap
}

// Save writes the snapshot to path as indented UTF-8 JSON with non-ASCII
// characters preserved literally. The file is replaced atomically via a temp
// file in the same directory, so a crash mid-write cannot leave a truncated
// snapshot behind.
func Save(path string, snap *models.Snapshot) error {
	if snap.Series == nil {
		snap.Series = []models.SeriesPoint{}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
