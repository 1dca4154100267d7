// Package spectra defines the spectrum artifact format plus the loading,
// statistics, comparison and fingerprinting that operate on it.
package spectra

import (
	"fmt"

	"github.com/uvislab/go-hallucinator/composition"
)

const SchemaVersion = "1.0.0"

// Spectrum is one hallucinated measurement. Artifacts are deterministic:
// the same parameter record yields byte-identical files, so nothing time-
// or host-dependent belongs in here. Run bookkeeping lives in the catalog
// instead.
type Spectrum struct {
	Version     string                  `json:"version"`
	Seed        int64                   `json:"seed"`
	Index       int                     `json:"index"`
	Composition composition.Composition `json:"composition"`
	Label       string                  `json:"label"`
	Wavelengths []float64               `json:"wavelengths"`
	Intensities []float64               `json:"intensities"`
}

// Validate checks the structural integrity of an artifact.
func (s *Spectrum) Validate() error {
	if len(s.Wavelengths) == 0 {
		return fmt.Errorf("spectrum has no samples")
	}
	if len(s.Wavelengths) != len(s.Intensities) {
		return fmt.Errorf("spectrum has %d wavelengths but %d intensities",
			len(s.Wavelengths), len(s.Intensities))
	}
	if err := s.Composition.Validate(); err != nil {
		return fmt.Errorf("spectrum composition: %w", err)
	}
	return nil
}
