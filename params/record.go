// Package params defines the generation parameter record: the complete,
// replayable description of one hallucination run.
package params

import (
	"fmt"

	"github.com/uvislab/go-hallucinator/element"
)

const SchemaVersion = "1.0.0"

// Background kinds.
const (
	BackgroundFlat     = "flat"
	BackgroundGaussian = "gaussian"
)

// Default shape constants. Wavelengths are nanometers across the
// UV-VIS-NIR window the original instrument covered.
const (
	DefaultWavelengthMin = 300
	DefaultWavelengthMax = 1100
	DefaultNumPoints     = 1000
	DefaultPeakWidth     = 20
	DefaultLineSpread    = 200
	DefaultNoiseLevel    = 0.1
	DefaultWidthJitter   = 0.05
	DefaultBackground    = 0.01
)

// Background describes the baseline curve under the peaks. A flat
// background is the constant Level everywhere; a gaussian background is a
// broad bump of height Level centered at Center with sigma Width.
type Background struct {
	Kind   string  `json:"kind"`
	Level  float64 `json:"level"`
	Center float64 `json:"center,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

// Record is the full parameter set for one run. Two runs with equal
// records produce byte-identical spectra, no matter how the records were
// built. Records are resolved once and never mutated afterwards.
type Record struct {
	Version         string     `json:"version"`
	Seed            int64      `json:"seed"`
	Elements        []string   `json:"elements"`
	NoiseLevel      float64    `json:"noiseLevel"`
	PeakWidth       float64    `json:"peakWidth"`
	PeaksPerElement int        `json:"peaksPerElement"`
	WidthJitter     float64    `json:"widthJitter"`
	NumSpectra      int        `json:"numSpectra"`
	WavelengthMin   float64    `json:"wavelengthMin"`
	WavelengthMax   float64    `json:"wavelengthMax"`
	NumPoints       int        `json:"numPoints"`
	LineSpread      float64    `json:"lineSpread"`
	Background      Background `json:"background"`

	// Subset sampling. MinElements zero means every listed element appears
	// in every composition; positive MinElements draws random subsets of
	// between MinElements and MaxElements elements per spectrum.
	MaxFraction float64 `json:"maxFraction,omitempty"`
	MinElements int     `json:"minElements,omitempty"`
	MaxElements int     `json:"maxElements,omitempty"`
}

// Default returns the stock record: random subsets of the whole element
// registry, matching the instrument simulation this tool started as.
// Callers that pass an explicit element list normally disable subset
// sampling so that every listed element shows up in every spectrum.
func Default() Record {
	return Record{
		Version:         SchemaVersion,
		Elements:        element.Symbols(),
		NoiseLevel:      DefaultNoiseLevel,
		PeakWidth:       DefaultPeakWidth,
		PeaksPerElement: 1,
		WidthJitter:     DefaultWidthJitter,
		NumSpectra:      1,
		WavelengthMin:   DefaultWavelengthMin,
		WavelengthMax:   DefaultWavelengthMax,
		NumPoints:       DefaultNumPoints,
		LineSpread:      DefaultLineSpread,
		Background:      Background{Kind: BackgroundFlat, Level: DefaultBackground},
		MaxFraction:     1,
		MinElements:     1,
		MaxElements:     4,
	}
}

// Validate checks every field and reports the first problem. A record
// that validates can always be generated from; a record that does not is
// rejected before any output is written.
//
// Seed zero is a valid seed, not an unset one. Callers that want a fresh
// seed draw it before building the record, so the record always names the
// effective value.
func (r Record) Validate() error {
	if len(r.Elements) == 0 {
		return fmt.Errorf("no elements configured")
	}
	if err := element.ValidateAll(r.Elements); err != nil {
		return err
	}
	if r.NoiseLevel < 0 || r.NoiseLevel > 1 {
		return fmt.Errorf("noise level %v outside [0, 1]", r.NoiseLevel)
	}
	if r.PeakWidth <= 0 {
		return fmt.Errorf("peak width must be positive, got %v", r.PeakWidth)
	}
	if r.PeaksPerElement < 1 {
		return fmt.Errorf("peaks per element must be at least 1, got %d", r.PeaksPerElement)
	}
	if r.WidthJitter < 0 {
		return fmt.Errorf("width jitter must not be negative, got %v", r.WidthJitter)
	}
	if r.NumSpectra < 1 {
		return fmt.Errorf("number of spectra must be at least 1, got %d", r.NumSpectra)
	}
	if r.WavelengthMin >= r.WavelengthMax {
		return fmt.Errorf("wavelength range [%v, %v] is empty", r.WavelengthMin, r.WavelengthMax)
	}
	if r.NumPoints < 2 {
		return fmt.Errorf("number of points must be at least 2, got %d", r.NumPoints)
	}
	if r.LineSpread <= 0 {
		return fmt.Errorf("line spread must be positive, got %v", r.LineSpread)
	}
	switch r.Background.Kind {
	case BackgroundFlat:
	case BackgroundGaussian:
		if r.Background.Width <= 0 {
			return fmt.Errorf("gaussian background needs a positive width, got %v", r.Background.Width)
		}
	default:
		return fmt.Errorf("unknown background kind %q", r.Background.Kind)
	}
	if r.Background.Level < 0 {
		return fmt.Errorf("background level must not be negative, got %v", r.Background.Level)
	}
	if r.MaxFraction < 0 {
		return fmt.Errorf("max fraction must not be negative, got %v", r.MaxFraction)
	}
	if r.MinElements < 0 || r.MaxElements < 0 {
		return fmt.Errorf("subset bounds must not be negative")
	}
	if r.MinElements > len(r.Elements) {
		return fmt.Errorf("min elements %d exceeds the %d listed elements", r.MinElements, len(r.Elements))
	}
	if r.MinElements > 0 && r.MaxElements > 0 && r.MinElements > r.MaxElements {
		return fmt.Errorf("min elements %d exceeds max elements %d", r.MinElements, r.MaxElements)
	}
	return nil
}

// Equal reports whether two records would generate identical runs. Every
// field participates, including element order.
func (r Record) Equal(other Record) bool {
	if len(r.Elements) != len(other.Elements) {
		return false
	}
	for i := range r.Elements {
		if r.Elements[i] != other.Elements[i] {
			return false
		}
	}
	return r.Version == other.Version &&
		r.Seed == other.Seed &&
		r.NoiseLevel == other.NoiseLevel &&
		r.PeakWidth == other.PeakWidth &&
		r.PeaksPerElement == other.PeaksPerElement &&
		r.WidthJitter == other.WidthJitter &&
		r.NumSpectra == other.NumSpectra &&
		r.WavelengthMin == other.WavelengthMin &&
		r.WavelengthMax == other.WavelengthMax &&
		r.NumPoints == other.NumPoints &&
		r.LineSpread == other.LineSpread &&
		r.Background == other.Background &&
		r.MaxFraction == other.MaxFraction &&
		r.MinElements == other.MinElements &&
		r.MaxElements == other.MaxElements
}
