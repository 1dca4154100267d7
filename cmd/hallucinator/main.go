package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := generate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "hallucinate":
		if err := hallucinate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "compare":
		if err := compare(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "plot":
		if err := plot(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "summary":
		if err := summary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validate(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "runs":
		if err := runs(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "elements":
		if err := elements(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("hallucinator version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hallucinator - synthetic spectra generator for pipeline testing

Usage:
  hallucinator <command> [options]

Commands:
  generate     Generate a deterministic batch of hallucinated spectra
  hallucinate  Render a single spectrum for a fixed composition
  compare      Compare spectrum artifacts point by point
  plot         Generate SVG visualization from spectrum artifacts
  summary      Display quick summary of a spectrum artifact
  validate     Validate a parameter file without generating
  runs         List recorded generation runs from a catalog
  elements     List the supported element symbols
  help         Show this help message
  version      Show version information

Examples:
  # Generate three spectra of a vanadium/copper/cobalt mix
  hallucinator generate -seed 50 -element V -element Cu -element Co -num 3 -output run1

  # Replay a previous run from its persisted parameters
  hallucinator generate -config run1/parameters.json -output run2

  # Verify the replay reproduced the batch exactly
  hallucinator compare run1/spectrum_0000.json run2/spectrum_0000.json

  # Plot a spectrum
  hallucinator plot -output spectrum.svg run1/spectrum_0000.json

For command-specific help, run:
  hallucinator <command> --help`)
}
