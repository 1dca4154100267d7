package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uvislab/go-hallucinator/spectra"
)

func summary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	prominence := fs.Float64("prominence", 0.5, "Minimum prominence for peak detection")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hallucinator summary [options] <spectrum.json>

Display quick summary of a spectrum artifact: its generation metadata,
intensity statistics and detected peaks.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  hallucinator summary run1/spectrum_0000.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("spectrum file required")
	}

	spectrumFile := fs.Arg(0)

	sp, err := spectra.ReadJSON(spectrumFile)
	if err != nil {
		return err
	}

	fmt.Printf("File: %s\n", spectrumFile)
	fmt.Printf("Label: %s\n", sp.Label)
	fmt.Printf("Seed: %d\n", sp.Seed)
	fmt.Printf("Index: %d\n", sp.Index)
	fmt.Printf("Samples: %d (%.1f → %.1f)\n",
		len(sp.Wavelengths),
		sp.Wavelengths[0],
		sp.Wavelengths[len(sp.Wavelengths)-1])

	fmt.Println("\nComposition:")
	for _, entry := range sp.Composition {
		fmt.Printf("  %-3s %.4f\n", entry.Symbol, entry.Fraction)
	}

	stat := spectra.ComputeStats(sp.Intensities)
	fmt.Println("\nIntensity:")
	fmt.Printf("  Min:    %.4f\n", stat.Min)
	fmt.Printf("  Max:    %.4f\n", stat.Max)
	fmt.Printf("  Mean:   %.4f\n", stat.Mean)
	fmt.Printf("  Median: %.4f\n", stat.Median)
	fmt.Printf("  Std:    %.4f\n", stat.Std)

	found := spectra.FindPeaks(sp, *prominence)
	fmt.Printf("\nPeaks (prominence ≥ %g): %d\n", *prominence, len(found))
	for _, peak := range found {
		fmt.Printf("  %.2f nm  intensity %.3f  prominence %.3f\n",
			peak.Wavelength, peak.Intensity, peak.Prominence)
	}

	return nil
}
