package synth

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/uvislab/go-hallucinator/composition"
	"github.com/uvislab/go-hallucinator/params"
	"github.com/uvislab/go-hallucinator/spectra"
)

// testRecord is the stress-test workhorse: a pinned seed, a short element
// list, strong noise and broad peaks.
func testRecord() params.Record {
	r := params.Default()
	r.Seed = 50
	r.Elements = []string{"V", "Cu", "Co"}
	r.NoiseLevel = 0.5
	r.PeakWidth = 30
	r.NumSpectra = 1
	r.MinElements = 0
	r.MaxElements = 0
	return r
}

func generateBytes(t *testing.T, record params.Record) [][]byte {
	t.Helper()
	engine, err := NewEngine(record)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	specs, err := engine.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := make([][]byte, len(specs))
	for i, s := range specs {
		data, err := spectra.ToJSON(s)
		if err != nil {
			t.Fatalf("ToJSON failed: %v", err)
		}
		out[i] = data
	}
	return out
}

func TestEngineByteIdenticalReruns(t *testing.T) {
	first := generateBytes(t, testRecord())
	second := generateBytes(t, testRecord())
	for i := range first {
		if !bytes.Equal(first[i], second[i]) {
			t.Errorf("Spectrum %d differs between identical runs", i)
		}
	}
}

func TestEngineReplayFromParameterFile(t *testing.T) {
	record := testRecord()
	path := filepath.Join(t.TempDir(), "parameters.json")
	if err := params.WriteJSON(record, path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	loaded, err := params.ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}

	direct := generateBytes(t, record)
	replayed := generateBytes(t, loaded)
	for i := range direct {
		if !bytes.Equal(direct[i], replayed[i]) {
			t.Errorf("Spectrum %d differs between direct run and file replay", i)
		}
	}
}

func TestEngineSeedSensitivity(t *testing.T) {
	a := testRecord()
	b := testRecord()
	b.Seed = 65

	engineA, err := NewEngine(a)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	engineB, err := NewEngine(b)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	specA, err := engineA.Spectrum(0)
	if err != nil {
		t.Fatalf("Spectrum failed: %v", err)
	}
	specB, err := engineB.Spectrum(0)
	if err != nil {
		t.Fatalf("Spectrum failed: %v", err)
	}

	result := spectra.Compare("seed50", specA, "seed65", specB, 0)
	if result.Verdict != spectra.VerdictDiffer {
		t.Errorf("Expected seeds 50 and 65 to differ, got verdict %s", result.Verdict)
	}
}

func TestEngineSpectrumIndependentOfRunLength(t *testing.T) {
	short := testRecord()
	long := testRecord()
	long.NumSpectra = 5

	shortBytes := generateBytes(t, short)
	longBytes := generateBytes(t, long)

	if !bytes.Equal(shortBytes[0], longBytes[0]) {
		t.Error("Spectrum 0 changed when the run length changed")
	}
}

func TestEngineSpectrumIndexBounds(t *testing.T) {
	engine, err := NewEngine(testRecord())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if _, err := engine.Spectrum(-1); err == nil {
		t.Error("Expected error for negative index")
	}
	if _, err := engine.Spectrum(1); err == nil {
		t.Error("Expected error for index past the run")
	}
}

func TestEngineSpectrumContents(t *testing.T) {
	engine, err := NewEngine(testRecord())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	s, err := engine.Spectrum(0)
	if err != nil {
		t.Fatalf("Spectrum failed: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Generated spectrum invalid: %v", err)
	}
	if s.Seed != 50 || s.Index != 0 || s.Version != spectra.SchemaVersion {
		t.Errorf("Unexpected artifact metadata: %+v", s)
	}
	if len(s.Wavelengths) != params.DefaultNumPoints {
		t.Errorf("Expected %d samples, got %d", params.DefaultNumPoints, len(s.Wavelengths))
	}
	wantOrder := []string{"V", "Cu", "Co"}
	if len(s.Composition) != 3 {
		t.Fatalf("Expected all three elements in the mixture, got %v", s.Composition)
	}
	for i, e := range s.Composition {
		if e.Symbol != wantOrder[i] {
			t.Errorf("Composition entry %d: expected %s, got %s", i, wantOrder[i], e.Symbol)
		}
	}
	for i, v := range s.Intensities {
		if v < 0 {
			t.Fatalf("Negative intensity %v at sample %d", v, i)
		}
	}
}

func TestEngineFromComposition(t *testing.T) {
	engine, err := NewEngine(testRecord())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	comp := composition.Composition{
		{Symbol: "Fe", Fraction: 0.5},
		{Symbol: "Au", Fraction: 0.5},
	}
	a, err := engine.FromComposition(comp)
	if err != nil {
		t.Fatalf("FromComposition failed: %v", err)
	}
	b, err := engine.FromComposition(comp)
	if err != nil {
		t.Fatalf("FromComposition failed: %v", err)
	}
	result := spectra.Compare("a", a, "b", b, 0)
	if result.Verdict != spectra.VerdictIdentical {
		t.Errorf("Expected fixed-composition renders to repeat exactly, got %s", result.Verdict)
	}

	bad := composition.Composition{{Symbol: "Fe", Fraction: 0.4}}
	if _, err := engine.FromComposition(bad); err == nil {
		t.Error("Expected error for composition that does not sum to one")
	}
}

func TestNewEngineRejectsInvalidRecord(t *testing.T) {
	r := testRecord()
	r.NoiseLevel = 2
	if _, err := NewEngine(r); err == nil {
		t.Error("Expected error for out-of-range noise level")
	}
	r = testRecord()
	r.Elements = nil
	if _, err := NewEngine(r); err == nil {
		t.Error("Expected error for empty element list")
	}
}
