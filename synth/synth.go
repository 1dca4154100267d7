// Package synth renders peak descriptors into sampled spectra and
// orchestrates whole generation runs.
package synth

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/uvislab/go-hallucinator/params"
	"github.com/uvislab/go-hallucinator/peaks"
	"github.com/uvislab/go-hallucinator/rng"
)

// Grid returns n evenly spaced wavelengths from min to max inclusive.
func Grid(min, max float64, n int) []float64 {
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	// Pin the endpoint so the grid is exactly [min, max] regardless of
	// accumulated rounding.
	out[n-1] = max
	return out
}

// Synthesize renders one spectrum over the wavelength grid.
//
// # Ordering
//
// The stages run in fixed order: background first, then every peak in
// descriptor order, then one noise draw per grid point in increasing
// wavelength order, then a clip of negative values to zero. The noise
// draws happen even at noise level zero, so the draw count per spectrum
// never depends on parameter values.
func Synthesize(wavelengths []float64, descs []peaks.Descriptor, bg params.Background, noiseLevel float64, ctx *rng.Context) []float64 {
	n := len(wavelengths)
	intensities := make([]float64, n)
	shape := make([]float64, n)
	scaled := make([]float64, n)

	addBackground(intensities, wavelengths, bg, shape, scaled)

	for _, d := range descs {
		gaussianShape(shape, wavelengths, d.Center, d.Width)
		vecmath.ScaleBlock(scaled, shape, d.Amplitude)
		vecmath.AddBlockInPlace(intensities, scaled)
	}

	for j := range intensities {
		intensities[j] += ctx.Normal(0, noiseLevel)
	}

	// A detector cannot report negative counts. Clipping last lets noise
	// carve into low-signal regions before the floor is applied.
	for j, v := range intensities {
		if v < 0 {
			intensities[j] = 0
		}
	}
	return intensities
}

// addBackground lays the baseline curve into dst. Flat backgrounds are a
// constant level; gaussian backgrounds are one broad bump whose center
// and width come from the record, costing no draws either way.
func addBackground(dst, wavelengths []float64, bg params.Background, shape, scaled []float64) {
	switch bg.Kind {
	case params.BackgroundGaussian:
		gaussianShape(shape, wavelengths, bg.Center, bg.Width)
		vecmath.ScaleBlock(scaled, shape, bg.Level)
		vecmath.AddBlockInPlace(dst, scaled)
	default:
		for j := range dst {
			dst[j] += bg.Level
		}
	}
}

// gaussianShape fills shape with a unit-height bell curve over the grid.
func gaussianShape(shape, wavelengths []float64, center, width float64) {
	for j, x := range wavelengths {
		delta := x - center
		shape[j] = math.Exp(-(delta * delta) / (2 * width * width))
	}
}
