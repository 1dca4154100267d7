package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/uvislab/go-hallucinator/spectra"
)

func compare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	epsilon := fs.Float64("epsilon", 0, "Intensity tolerance (0 = bit-exact)")
	outputJSON := fs.Bool("json", false, "Output report as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hallucinator compare [options] <spectrum.json> <spectrum.json> [more...]

Compare spectrum artifacts point by point. Every unordered pair is
compared; the exit status is 0 when all pairs are identical and 1
otherwise. Mismatched grids make a pair incomparable, which also
counts as disagreement.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Bit-exact comparison of two runs
  hallucinator compare run1/spectrum_0000.json run2/spectrum_0000.json

  # Allow small numeric drift
  hallucinator compare -epsilon 1e-9 a.json b.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("at least two spectrum files required")
	}

	names := fs.Args()
	specs := make([]*spectra.Spectrum, len(names))
	for i, name := range names {
		sp, err := spectra.ReadJSON(name)
		if err != nil {
			return err
		}
		specs[i] = sp
	}

	report := spectra.CompareAll(names, specs, *epsilon)

	if *outputJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printReport(report)
	}

	if !report.AllIdentical() {
		os.Exit(1)
	}
	return nil
}

func printReport(report spectra.Report) {
	fmt.Printf("=== Spectrum Comparison (%d pairs, epsilon %g) ===\n\n",
		len(report.Pairs), report.Epsilon)

	for _, pair := range report.Pairs {
		fmt.Printf("%s vs %s: %s\n", pair.A, pair.B, pair.Verdict)
		switch pair.Verdict {
		case spectra.VerdictIncomparable:
			fmt.Printf("  %s\n", pair.Reason)
		case spectra.VerdictDiffer:
			fmt.Printf("  First divergence: sample %d (wavelength %.4f): %v vs %v\n",
				pair.FirstIndex, pair.FirstWavelength, pair.FirstA, pair.FirstB)
			fmt.Printf("  Differing samples: %d\n", pair.DiffCount)
			fmt.Printf("  Max delta: %g\n", pair.MaxDelta)
		}
	}

	fmt.Println()
	if report.AllIdentical() {
		fmt.Println("✓ All spectra identical")
	} else {
		fmt.Println("✗ Spectra differ")
	}
}
