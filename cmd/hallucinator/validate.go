package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uvislab/go-hallucinator/params"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hallucinator validate <parameters.json>

Validate a parameter file without generating anything. The file must
parse strictly (unknown fields are rejected) and every field must pass
the same checks generation applies.

Examples:
  hallucinator validate run1/parameters.json
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("parameter file required")
	}

	paramFile := fs.Arg(0)

	record, err := params.ReadJSON(paramFile)
	if err != nil {
		return err
	}

	fmt.Println("=== Parameter Validation ===")
	fmt.Printf("File: %s\n", paramFile)
	fmt.Printf("Seed: %d\n", record.Seed)
	fmt.Printf("Elements: %d\n", len(record.Elements))
	fmt.Printf("Spectra: %d\n", record.NumSpectra)
	fmt.Printf("Grid: %d points (%.1f → %.1f)\n",
		record.NumPoints, record.WavelengthMin, record.WavelengthMax)
	fmt.Printf("Noise: %g\n", record.NoiseLevel)
	fmt.Println()

	if err := record.Validate(); err != nil {
		fmt.Printf("✗ Invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ Parameters valid")
	return nil
}
