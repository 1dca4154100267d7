package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uvislab/go-hallucinator/plotter"
	"github.com/uvislab/go-hallucinator/spectra"
)

func plot(args []string) error {
	fs := flag.NewFlagSet("plot", flag.ExitOnError)
	output := fs.String("output", "", "Output SVG file (required)")
	width := fs.Int("width", 800, "Plot width in pixels")
	height := fs.Int("height", 600, "Plot height in pixels")
	title := fs.String("title", "", "Plot title (default: composition label for a single spectrum)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hallucinator plot -output <file.svg> [options] <spectrum.json> [more...]

Generate an SVG plot from spectrum artifacts. Multiple artifacts are
overlaid on a shared grid, each labeled by its composition.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Plot a single spectrum
  hallucinator plot -output spectrum.svg run1/spectrum_0000.json

  # Overlay two runs
  hallucinator plot -output overlay.svg run1/spectrum_0000.json run2/spectrum_0000.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("spectrum file required")
	}

	if *output == "" {
		fs.Usage()
		return fmt.Errorf("-output required")
	}

	specs := make([]*spectra.Spectrum, fs.NArg())
	for i, name := range fs.Args() {
		sp, err := spectra.ReadJSON(name)
		if err != nil {
			return err
		}
		specs[i] = sp
	}

	svg := plotter.PlotSpectra(specs, float64(*width), float64(*height), *title)
	if err := os.WriteFile(*output, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write SVG: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Plot saved to %s\n", *output)
	return nil
}
