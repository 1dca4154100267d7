package synth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uvislab/go-hallucinator/params"
	"github.com/uvislab/go-hallucinator/peaks"
	"github.com/uvislab/go-hallucinator/spectra"
)

// Batch artifact names. Spectrum files are zero-padded so lexical and
// index order agree.
const (
	ParamsFile = "parameters.json"
	LinesFile  = "lines.json"
)

// SpectrumFile returns the artifact name for spectrum index i.
func SpectrumFile(i int) string {
	return fmt.Sprintf("spectrum_%04d.json", i)
}

// WriteBatch writes a generated batch plus its parameter record and line
// table to dir. The whole batch is staged in a temporary directory and
// renamed into place, so a failed run never leaves a partial batch
// behind. The target directory must not already exist.
func (e *Engine) WriteBatch(specs []*spectra.Spectrum, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("output directory %s already exists", dir)
	}

	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return fmt.Errorf("create output parent: %w", err)
	}

	staging, err := os.MkdirTemp(parent, ".hallucinator-")
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer func() {
		if staging != "" {
			os.RemoveAll(staging)
		}
	}()
	if err := os.Chmod(staging, 0755); err != nil {
		return fmt.Errorf("prepare staging directory: %w", err)
	}

	for _, sp := range specs {
		if err := spectra.WriteJSON(sp, filepath.Join(staging, SpectrumFile(sp.Index))); err != nil {
			return err
		}
	}
	if err := params.WriteJSON(e.record, filepath.Join(staging, ParamsFile)); err != nil {
		return err
	}
	if err := peaks.WriteTable(e.table, filepath.Join(staging, LinesFile)); err != nil {
		return err
	}

	if err := os.Rename(staging, dir); err != nil {
		return fmt.Errorf("move batch into place: %w", err)
	}
	staging = ""
	return nil
}
