package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/uvislab/go-hallucinator/catalog"
	"github.com/uvislab/go-hallucinator/params"
	"github.com/uvislab/go-hallucinator/rng"
	"github.com/uvislab/go-hallucinator/spectra"
	"github.com/uvislab/go-hallucinator/synth"
)

// elementList accepts repeated occurrences and comma-separated values,
// preserving command-line order. It backs both -element and -elements.
type elementList []string

func (e *elementList) String() string {
	return strings.Join(*e, ",")
}

func (e *elementList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*e = append(*e, part)
		}
	}
	return nil
}

// generationFlags are the flags that describe the run itself. A replay
// must reproduce its parameter file exactly, so combining any of these
// with -config is rejected rather than silently ignored.
var generationFlags = []string{
	"seed", "element", "elements", "noise", "peak-width",
	"peaks-per-element", "width-jitter", "num", "min", "max",
	"resolution", "line-spread", "background", "background-level",
	"background-center", "background-width", "max-fraction",
	"min-elements", "max-elements",
}

func generate(args []string) error {
	cfg, err := parseEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var elems elementList
	fs.Var(&elems, "element", "Element symbol to include (repeatable, order-significant)")
	fs.Var(&elems, "elements", "Comma-separated element symbols")
	seed := fs.Int64("seed", 0, "Random seed (omitted: a fresh seed is drawn and recorded)")
	noise := fs.Float64("noise", params.DefaultNoiseLevel, "Standard deviation of additive noise")
	peakWidth := fs.Float64("peak-width", params.DefaultPeakWidth, "Standard deviation of element peaks")
	peaksPer := fs.Int("peaks-per-element", 1, "Number of peaks per element")
	widthJitter := fs.Float64("width-jitter", params.DefaultWidthJitter, "Relative sigma of peak width perturbation")
	num := fs.Int("num", 1, "Number of spectra to generate")
	wavelengthMin := fs.Float64("min", params.DefaultWavelengthMin, "Minimum wavelength")
	wavelengthMax := fs.Float64("max", params.DefaultWavelengthMax, "Maximum wavelength")
	numPoints := fs.Int("resolution", params.DefaultNumPoints, "Number of points per spectrum")
	lineSpread := fs.Float64("line-spread", params.DefaultLineSpread, "Sigma of characteristic line placement")
	background := fs.String("background", params.BackgroundFlat, "Background kind: flat or gaussian")
	backgroundLevel := fs.Float64("background-level", params.DefaultBackground, "Background level")
	backgroundCenter := fs.Float64("background-center", 0, "Center of gaussian background")
	backgroundWidth := fs.Float64("background-width", 0, "Width of gaussian background")
	maxFraction := fs.Float64("max-fraction", 1, "Maximum fraction of any element")
	minElements := fs.Int("min-elements", 0, "Smallest random subset size per spectrum")
	maxElements := fs.Int("max-elements", 0, "Largest random subset size per spectrum")
	output := fs.String("output", cfg.OutputDir, "Output directory (must not already exist)")
	db := fs.String("db", cfg.DB, "Catalog database to record the run in (optional)")
	configFile := fs.String("config", "", "Parameter file to replay (mutually exclusive with generation flags)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hallucinator generate [options]

Generate a batch of hallucinated spectra. The batch is fully determined
by its parameter record: the same record always produces byte-identical
artifacts. The record is written next to the spectra as parameters.json,
and replaying it with -config reproduces the batch exactly.

Without -element flags, compositions are random subsets of the whole
element registry. With -element flags, every listed element appears in
every spectrum unless -min-elements/-max-elements turn subsets back on.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Three spectra of a fixed element set
  hallucinator generate -seed 50 -element V -element Cu -element Co -num 3 -output run1

  # Same, with comma syntax and heavier noise
  hallucinator generate -seed 50 -elements V,Cu,Co -noise 0.5 -output run1

  # Random subsets of the full registry, fresh seed
  hallucinator generate -num 100 -output survey

  # Replay a recorded run
  hallucinator generate -config run1/parameters.json -output run1-replay

  # Record the run in a catalog
  hallucinator generate -seed 50 -elements V,Cu,Co -db runs.db -output run1
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	var record params.Record
	if *configFile != "" {
		for _, name := range generationFlags {
			if setFlags[name] {
				return fmt.Errorf("-config cannot be combined with -%s", name)
			}
		}
		record, err = params.ReadJSON(*configFile)
		if err != nil {
			return err
		}
	} else {
		record = params.Default()
		record.NoiseLevel = *noise
		record.PeakWidth = *peakWidth
		record.PeaksPerElement = *peaksPer
		record.WidthJitter = *widthJitter
		record.NumSpectra = *num
		record.WavelengthMin = *wavelengthMin
		record.WavelengthMax = *wavelengthMax
		record.NumPoints = *numPoints
		record.LineSpread = *lineSpread
		record.Background = params.Background{
			Kind:   *background,
			Level:  *backgroundLevel,
			Center: *backgroundCenter,
			Width:  *backgroundWidth,
		}
		record.MaxFraction = *maxFraction
		if len(elems) > 0 {
			// An explicit element list means every listed element shows
			// up in every spectrum unless subsets are asked for.
			record.Elements = elems
			record.MinElements = 0
			record.MaxElements = 0
		}
		if setFlags["min-elements"] {
			record.MinElements = *minElements
		}
		if setFlags["max-elements"] {
			record.MaxElements = *maxElements
		}
		if setFlags["seed"] {
			record.Seed = *seed
		} else {
			fresh, err := rng.NewSeed()
			if err != nil {
				return fmt.Errorf("draw seed: %w", err)
			}
			record.Seed = fresh
		}
	}

	engine, err := synth.NewEngine(record)
	if err != nil {
		return err
	}

	start := time.Now()
	specs, err := engine.Generate()
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Seconds()

	if err := engine.WriteBatch(specs, *output); err != nil {
		return err
	}

	digest := spectra.Digest(specs)

	if *db != "" {
		store, err := catalog.NewSQLiteStore(*db)
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer store.Close()

		run := catalog.NewRun(engine.Record(), *output, len(specs), digest)
		if err := store.SaveRun(context.Background(), run); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Run %s recorded in %s\n", run.ID, *db)
	}

	// Print summary to stderr so it doesn't interfere with piping
	fmt.Fprintf(os.Stderr, "Generation complete\n")
	fmt.Fprintf(os.Stderr, "  Seed: %d\n", engine.Record().Seed)
	fmt.Fprintf(os.Stderr, "  Spectra: %d\n", len(specs))
	fmt.Fprintf(os.Stderr, "  Digest: %.12s\n", digest)
	fmt.Fprintf(os.Stderr, "  Compute time: %.3fs\n", elapsed)
	fmt.Fprintf(os.Stderr, "  Output: %s\n", *output)

	return nil
}
