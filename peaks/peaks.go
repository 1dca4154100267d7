// Package peaks derives characteristic emission lines for the element
// registry and expands compositions into the concrete Gaussian peaks that
// make up a hallucinated spectrum.
package peaks

import (
	"fmt"

	"github.com/uvislab/go-hallucinator/element"
	"github.com/uvislab/go-hallucinator/rng"
)

// Line height draws are centered here; real intensities are arbitrary
// units, so only the relative scale matters.
const (
	lineHeightMean = 10
	lineHeightStd  = 3
)

// stageLines names the derived stream the line table is drawn from. It is
// separate from the per-spectrum streams so the table never shifts when a
// run changes its spectrum count.
const stageLines = "lines"

// Line is an element's characteristic emission line: where it sits on the
// wavelength axis and how strongly it shows at unit concentration.
type Line struct {
	Center float64 `json:"center"`
	Height float64 `json:"height"`
}

// Table holds the characteristic line of every registered element for one
// seed. Heights can come out negative on the tail of the draw; consumers
// clamp amplitudes, not the table, so the table stays a faithful record
// of what was drawn.
type Table struct {
	Seed   int64           `json:"seed"`
	Mean   float64         `json:"mean"`
	Spread float64         `json:"spread"`
	Lines  map[string]Line `json:"lines"`
}

// GenerateTable draws the characteristic line of every registered element.
//
// # Determinism
//
// Lines are drawn in registry order, two draws per element: center first,
// then height. The table depends only on (seed, mean, spread) - never on
// which elements a run selects or how many spectra it produces.
func GenerateTable(seed int64, mean, spread float64) *Table {
	ctx := rng.Stream(seed, stageLines, 0)
	lines := make(map[string]Line, element.Count())
	for _, sym := range element.Symbols() {
		center := ctx.Normal(mean, spread)
		height := ctx.Normal(lineHeightMean, lineHeightStd)
		lines[sym] = Line{Center: center, Height: height}
	}
	return &Table{Seed: seed, Mean: mean, Spread: spread, Lines: lines}
}

// Validate checks that the table covers the whole registry.
func (t *Table) Validate() error {
	if len(t.Lines) != element.Count() {
		return fmt.Errorf("line table has %d entries, want %d", len(t.Lines), element.Count())
	}
	for _, sym := range element.Symbols() {
		if _, ok := t.Lines[sym]; !ok {
			return fmt.Errorf("line table missing element %s", sym)
		}
	}
	return nil
}
