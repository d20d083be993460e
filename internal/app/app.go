// Package app runs the single-shot metric update pipeline: fetch the source
// page, apply the extraction heuristics, merge with the prior snapshot and
// persist the result.
package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/peas8810/ojs/internal/config"
	"github.com/peas8810/ojs/internal/db"
	"github.com/peas8810/ojs/internal/extract"
	"github.com/peas8810/ojs/internal/models"
	"github.com/peas8810/ojs/internal/store"
)

type Updater struct {
	cfg     *config.UpdaterConfig
	client  *http.Client
	archive *db.Archive // nil when no connection is configured
}

func NewUpdater(cfg *config.UpdaterConfig) (*Updater, error) {
	u := &Updater{
		cfg:    cfg,
		client: newClient(cfg.Source.TimeoutSec),
	}

	if cfg.DB.Connection != "" {
		archive, err := db.NewArchive(cfg.DB)
		if err != nil {
			return nil, err
		}
		u.archive = archive
	}
	return u, nil
}

// Run executes one update. On any error the output file is left untouched:
// the write happens only at the very end of the success path, so a failed run
// leaves the previous snapshot intact for the dashboard.
func (u *Updater) Run(ctx context.Context) error {
	prior := store.Load(u.cfg.Output.Path)

	if u.cfg.Source.RespectRobots {
		if err := u.checkRobots(u.cfg.Source.URL); err != nil {
			return err
		}
	}

	html, contentHash, err := u.fetchHTML(ctx, u.cfg.Source.URL)
	if err != nil {
		return err
	}

	h5, h5ok := extract.NumberNearLabel(html, extract.H5IndexLabel)
	mcm, mcmok := extract.NumberNearLabel(html, extract.MCMLabel)

	// Carry-forward: a transient parse failure must never erase history.
	series := extract.Series(html)
	if len(series) == 0 && len(prior.Series) > 0 {
		series = prior.Series
	}

	snap := &models.Snapshot{
		Source:    u.cfg.Source.URL,
		UpdatedAt: time.Now().UTC().Format("2006-01-02"),
		H5Index:   mergeScalar(h5, h5ok, prior.H5Index),
		MCM:       mergeScalar(mcm, mcmok, prior.MCM),
		Series:    series,
	}

	if err := store.Save(u.cfg.Output.Path, snap); err != nil {
		return err
	}

	if u.archive != nil {
		entry := &models.ArchiveEntry{
			Source:      snap.Source,
			UpdatedAt:   snap.UpdatedAt,
			H5Index:     snap.H5Index,
			MCM:         snap.MCM,
			Series:      snap.Series,
			ContentHash: contentHash,
			FetchedAt:   time.Now().Unix(),
		}
		if err := u.archive.SaveEntry(entry); err != nil {
			log.Printf("failed to archive snapshot: %v", err)
		}
	}
	return nil
}

// mergeScalar keeps the freshly parsed value, falling back to the prior
// snapshot's value when the heuristic missed.
func mergeScalar(v float64, ok bool, prior *float64) *float64 {
	if ok {
		return &v
	}
	return prior
}

func (u *Updater) Close() error {
	if u.archive != nil {
		return u.archive.Close()
	}
	return nil
}
