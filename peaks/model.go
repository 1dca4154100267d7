package peaks

import (
	"fmt"

	"github.com/uvislab/go-hallucinator/composition"
	"github.com/uvislab/go-hallucinator/rng"
)

// widthFloor is the smallest width a jittered peak may keep, as a
// fraction of the base width. Gaussian jitter has unbounded tails; the
// floor keeps every peak a finite, renderable bump.
const widthFloor = 0.1

// Descriptor is one Gaussian peak to lay into a spectrum.
type Descriptor struct {
	Element   string  `json:"element"`
	Center    float64 `json:"center"`
	Amplitude float64 `json:"amplitude"`
	Width     float64 `json:"width"`
}

// Model expands compositions into peak descriptors using a line table.
type Model struct {
	Table           *Table
	DomainMin       float64
	DomainMax       float64
	Width           float64 // base Gaussian sigma
	PeaksPerElement int
	WidthJitter     float64 // relative sigma of the width perturbation
}

// NewModel validates the shape parameters and returns a Model.
func NewModel(table *Table, domainMin, domainMax, width float64, perElement int, jitter float64) (*Model, error) {
	if table == nil {
		return nil, fmt.Errorf("line table is required")
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("peak width must be positive, got %v", width)
	}
	if perElement < 1 {
		return nil, fmt.Errorf("peaks per element must be at least 1, got %d", perElement)
	}
	if jitter < 0 {
		return nil, fmt.Errorf("width jitter must not be negative, got %v", jitter)
	}
	if domainMin >= domainMax {
		return nil, fmt.Errorf("domain [%v, %v] is empty", domainMin, domainMax)
	}
	return &Model{
		Table:           table,
		DomainMin:       domainMin,
		DomainMax:       domainMax,
		Width:           width,
		PeaksPerElement: perElement,
		WidthJitter:     jitter,
	}, nil
}

// Describe expands one composition into its peak descriptors.
//
// # Ordering
//
// Descriptors follow composition order, then peak index. Peak 0 of an
// element sits on its characteristic line with amplitude height times
// fraction, costing no draws. Higher peak indices are satellites: one
// uniform center draw, then one uniform amplitude scale draw. Every peak
// then draws its width jitter, even at jitter zero, so the draw count per
// spectrum never depends on parameter values.
func (m *Model) Describe(comp composition.Composition, ctx *rng.Context) []Descriptor {
	out := make([]Descriptor, 0, len(comp)*m.PeaksPerElement)
	for _, entry := range comp {
		line := m.Table.Lines[entry.Symbol]
		for k := 0; k < m.PeaksPerElement; k++ {
			var center, amplitude float64
			if k == 0 {
				center = line.Center
				amplitude = line.Height * entry.Fraction
			} else {
				center = ctx.Uniform(m.DomainMin, m.DomainMax)
				amplitude = line.Height * entry.Fraction * ctx.Uniform(0, 1)
			}
			width := m.Width * (1 + m.WidthJitter*ctx.Normal(0, 1))
			if width < widthFloor*m.Width {
				width = widthFloor * m.Width
			}
			if amplitude < 0 {
				amplitude = 0
			}
			out = append(out, Descriptor{
				Element:   entry.Symbol,
				Center:    center,
				Amplitude: amplitude,
				Width:     width,
			})
		}
	}
	return out
}
