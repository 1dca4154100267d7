// Package catalog records generation runs: which parameters produced
// which batch, where the artifacts landed, and a fingerprint of what came
// out. Spectrum artifacts themselves stay deterministic; everything
// host- or time-dependent about a run lives here instead.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/uvislab/go-hallucinator/params"
)

// Run is one recorded generation run. The embedded parameter record is
// enough to replay the run; the digest is enough to check the replay.
type Run struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	OutputDir string        `json:"outputDir"`
	Spectra   int           `json:"spectra"`
	Digest    string        `json:"digest"`
	Params    params.Record `json:"params"`
}

// NewRun stamps a fresh run record with a unique ID and the current time.
func NewRun(record params.Record, outputDir string, spectra int, digest string) Run {
	return Run{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		OutputDir: outputDir,
		Spectra:   spectra,
		Digest:    digest,
		Params:    record,
	}
}

// Store persists run records.
type Store interface {
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)
	Close() error
}
