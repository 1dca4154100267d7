package synth

import (
	"fmt"

	"github.com/uvislab/go-hallucinator/composition"
	"github.com/uvislab/go-hallucinator/params"
	"github.com/uvislab/go-hallucinator/peaks"
	"github.com/uvislab/go-hallucinator/rng"
	"github.com/uvislab/go-hallucinator/spectra"
)

// Stream stage names. Each stage draws from its own derived stream so
// that no stage can shift another's sequence.
const (
	stageSpectrum = "spectrum"
	stageFixed    = "hallucinate"
)

// Engine generates the spectra described by one parameter record.
//
// # Determinism
//
// The engine resolves the record once: the wavelength grid and the line
// table are built at construction and shared by every spectrum. Spectrum
// i draws from the stream derived from (seed, i) alone, so index i yields
// the same spectrum whether the run asks for one spectrum or a thousand,
// and regardless of which indices were generated before it.
//
// The engine never learns how its record was assembled. Flags, parameter
// files and catalog replays all resolve to a Record first, which is what
// makes replay equality hold by construction.
type Engine struct {
	record      params.Record
	wavelengths []float64
	table       *peaks.Table
	sampler     *composition.Sampler
	model       *peaks.Model
}

// NewEngine validates record and prepares a run. The characteristic
// line table is derived from the record's seed.
func NewEngine(record params.Record) (*Engine, error) {
	mean := (record.WavelengthMin + record.WavelengthMax) / 2
	return NewEngineWithTable(record, peaks.GenerateTable(record.Seed, mean, record.LineSpread))
}

// NewEngineWithTable prepares a run around a previously saved line table
// instead of deriving one from the seed. Renders that must reuse the
// exact lines of an earlier run load its lines.json and come in here.
func NewEngineWithTable(record params.Record, table *peaks.Table) (*Engine, error) {
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	sampler, err := composition.NewSampler(composition.Config{
		Elements:    record.Elements,
		MaxFraction: record.MaxFraction,
		MinElements: record.MinElements,
		MaxElements: record.MaxElements,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	model, err := peaks.NewModel(table, record.WavelengthMin, record.WavelengthMax,
		record.PeakWidth, record.PeaksPerElement, record.WidthJitter)
	if err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return &Engine{
		record:      record,
		wavelengths: Grid(record.WavelengthMin, record.WavelengthMax, record.NumPoints),
		table:       table,
		sampler:     sampler,
		model:       model,
	}, nil
}

// Record returns the resolved parameter record for this run.
func (e *Engine) Record() params.Record {
	return e.record
}

// Table returns the characteristic line table backing this run.
func (e *Engine) Table() *peaks.Table {
	return e.table
}

// Spectrum generates spectrum index i of the run.
//
// Per-spectrum draw order: composition first, then peak descriptors,
// then one noise draw per grid point.
func (e *Engine) Spectrum(i int) (*spectra.Spectrum, error) {
	if i < 0 || i >= e.record.NumSpectra {
		return nil, fmt.Errorf("spectrum index %d outside run of %d", i, e.record.NumSpectra)
	}
	ctx := rng.Stream(e.record.Seed, stageSpectrum, i)
	comp := e.sampler.Sample(ctx)
	return e.render(comp, i, ctx), nil
}

// Generate produces the whole run in index order.
func (e *Engine) Generate() ([]*spectra.Spectrum, error) {
	out := make([]*spectra.Spectrum, e.record.NumSpectra)
	for i := range out {
		s, err := e.Spectrum(i)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// FromComposition renders a single spectrum for a fixed, caller-supplied
// mixture instead of a sampled one. Any registered element works here;
// the record's element list only constrains sampling. Draws come from a
// stage of their own, so fixed renders never disturb the indexed run.
func (e *Engine) FromComposition(comp composition.Composition) (*spectra.Spectrum, error) {
	if err := comp.Validate(); err != nil {
		return nil, err
	}
	ctx := rng.Stream(e.record.Seed, stageFixed, 0)
	return e.render(comp, 0, ctx), nil
}

func (e *Engine) render(comp composition.Composition, index int, ctx *rng.Context) *spectra.Spectrum {
	descs := e.model.Describe(comp, ctx)
	intensities := Synthesize(e.wavelengths, descs, e.record.Background, e.record.NoiseLevel, ctx)

	// Each artifact owns its grid copy so callers can mutate one loaded
	// spectrum without corrupting its siblings.
	wl := make([]float64, len(e.wavelengths))
	copy(wl, e.wavelengths)

	return &spectra.Spectrum{
		Version:     spectra.SchemaVersion,
		Seed:        e.record.Seed,
		Index:       index,
		Composition: comp,
		Label:       comp.Label(),
		Wavelengths: wl,
		Intensities: intensities,
	}
}
