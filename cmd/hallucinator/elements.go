package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/uvislab/go-hallucinator/element"
)

func elements(args []string) error {
	fs := flag.NewFlagSet("elements", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hallucinator elements

List the element symbols accepted by -element flags and composition
files, with their registry positions.

Examples:
  hallucinator elements
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	symbols := element.Symbols()
	fmt.Printf("=== Element Registry (%d symbols) ===\n\n", len(symbols))
	for i, symbol := range symbols {
		fmt.Printf("%3d %-3s", i+1, symbol)
		if (i+1)%8 == 0 {
			fmt.Println()
		} else {
			fmt.Print("  ")
		}
	}
	if len(symbols)%8 != 0 {
		fmt.Println()
	}

	return nil
}
