package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/uvislab/go-hallucinator/params"
)

func testParams(seed int64) params.Record {
	r := params.Default()
	r.Seed = seed
	r.Elements = []string{"V", "Cu", "Co"}
	r.MinElements = 0
	r.MaxElements = 0
	return r
}

func testRun(id string, seed int64, at time.Time) Run {
	return Run{
		ID:        id,
		CreatedAt: at,
		OutputDir: "out/" + id,
		Spectra:   3,
		Digest:    "digest-" + id,
		Params:    testParams(seed),
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()
	testStore(t, store)
}

func TestSQLiteStoreOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	ctx := context.Background()
	run := testRun("persisted", 50, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and make sure the record survived the handle.
	store, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()
	got, ok, err := store.GetRun(ctx, "persisted")
	if err != nil || !ok {
		t.Fatalf("GetRun after reopen: ok=%v err=%v", ok, err)
	}
	if !got.Params.Equal(run.Params) {
		t.Error("Parameters changed across reopen")
	}
}

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Missing run is a miss, not an error.
	if _, ok, err := store.GetRun(ctx, "absent"); err != nil || ok {
		t.Fatalf("Expected clean miss for absent run, got ok=%v err=%v", ok, err)
	}

	first := testRun("run-a", 50, base)
	second := testRun("run-b", 65, base.Add(time.Minute))
	if err := store.SaveRun(ctx, first); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := store.SaveRun(ctx, second); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	got, ok, err := store.GetRun(ctx, "run-a")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected run-a to be found")
	}
	if got.OutputDir != "out/run-a" || got.Spectra != 3 || got.Digest != "digest-run-a" {
		t.Errorf("Run metadata mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(base) {
		t.Errorf("Expected creation time %v, got %v", base, got.CreatedAt)
	}
	if !got.Params.Equal(first.Params) {
		t.Errorf("Parameters changed in storage: %+v", got.Params)
	}

	// Saving the same ID again replaces the record.
	updated := first
	updated.Digest = "digest-after-replay"
	if err := store.SaveRun(ctx, updated); err != nil {
		t.Fatalf("SaveRun update failed: %v", err)
	}
	got, _, err = store.GetRun(ctx, "run-a")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Digest != "digest-after-replay" {
		t.Errorf("Expected updated digest, got %s", got.Digest)
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-a" || runs[1].ID != "run-b" {
		t.Errorf("Expected oldest-first order, got %s then %s", runs[0].ID, runs[1].ID)
	}
}

func TestNewRun(t *testing.T) {
	a := NewRun(testParams(50), "out", 3, "abc")
	b := NewRun(testParams(50), "out", 3, "abc")
	if a.ID == "" || b.ID == "" {
		t.Fatal("Expected generated run IDs")
	}
	if a.ID == b.ID {
		t.Error("Expected unique run IDs")
	}
	if a.CreatedAt.IsZero() {
		t.Error("Expected a creation timestamp")
	}
}
