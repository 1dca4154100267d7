package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/uvislab/go-hallucinator/catalog"
	"github.com/uvislab/go-hallucinator/params"
)

func runs(args []string) error {
	cfg, err := parseEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	db := fs.String("db", cfg.DB, "Catalog database path")
	runID := fs.String("run", "", "Print the stored parameter record of one run")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hallucinator runs [options]

List generation runs recorded in a catalog. With -run, print one run's
stored parameter record to stdout; piping it to a file gives a config
that replays the run exactly.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # List all recorded runs
  hallucinator runs -db runs.db

  # Replay a recorded run
  hallucinator runs -db runs.db -run 3f1a... > replay.json
  hallucinator generate -config replay.json -output replayed
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *db == "" {
		fs.Usage()
		return fmt.Errorf("catalog database required (set -db or HALLUCINATOR_DB)")
	}

	store, err := catalog.NewSQLiteStore(*db)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	if *runID != "" {
		run, ok, err := store.GetRun(ctx, *runID)
		if err != nil {
			return fmt.Errorf("load run: %w", err)
		}
		if !ok {
			return fmt.Errorf("run %s not found", *runID)
		}
		data, err := params.ToJSON(run.Params)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	recorded, err := store.ListRuns(ctx)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(recorded) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("=== Runs (%d) ===\n\n", len(recorded))
	fmt.Printf("%-36s  %-20s  %7s  %-12s  %-12s  %s\n",
		"ID", "CREATED", "SPECTRA", "SEED", "DIGEST", "OUTPUT")
	for _, run := range recorded {
		fmt.Printf("%-36s  %-20s  %7d  %-12d  %-12.12s  %s\n",
			run.ID,
			run.CreatedAt.UTC().Format(time.RFC3339),
			run.Spectra,
			run.Params.Seed,
			run.Digest,
			run.OutputDir)
	}

	return nil
}
