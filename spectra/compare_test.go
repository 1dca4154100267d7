package spectra

import (
	"testing"
)

func spectrumWith(intensities []float64) *Spectrum {
	wl := make([]float64, len(intensities))
	for i := range wl {
		wl[i] = 300 + float64(i)*100
	}
	return &Spectrum{
		Version:     SchemaVersion,
		Composition: sampleSpectrum().Composition,
		Wavelengths: wl,
		Intensities: intensities,
	}
}

func TestCompareIdentical(t *testing.T) {
	a := spectrumWith([]float64{1, 2, 3, 4})
	b := spectrumWith([]float64{1, 2, 3, 4})
	result := Compare("a", a, "b", b, 0)
	if result.Verdict != VerdictIdentical {
		t.Errorf("Expected identical verdict, got %s", result.Verdict)
	}
	if result.FirstIndex != -1 {
		t.Errorf("Expected no divergence index, got %d", result.FirstIndex)
	}
	if result.MaxDelta != 0 || result.DiffCount != 0 {
		t.Errorf("Expected zero deltas, got max %v count %d", result.MaxDelta, result.DiffCount)
	}
}

func TestCompareDiffer(t *testing.T) {
	a := spectrumWith([]float64{1, 2, 3, 4})
	b := spectrumWith([]float64{1, 2.5, 3, 5})
	result := Compare("a", a, "b", b, 0)
	if result.Verdict != VerdictDiffer {
		t.Fatalf("Expected differ verdict, got %s", result.Verdict)
	}
	if result.FirstIndex != 1 {
		t.Errorf("Expected first divergence at sample 1, got %d", result.FirstIndex)
	}
	if result.FirstWavelength != 400 {
		t.Errorf("Expected divergence at wavelength 400, got %v", result.FirstWavelength)
	}
	if result.FirstA != 2 || result.FirstB != 2.5 {
		t.Errorf("Expected diverging values 2 and 2.5, got %v and %v", result.FirstA, result.FirstB)
	}
	if result.DiffCount != 2 {
		t.Errorf("Expected 2 differing samples, got %d", result.DiffCount)
	}
	if result.MaxDelta != 1 {
		t.Errorf("Expected max delta 1, got %v", result.MaxDelta)
	}
}

func TestCompareEpsilonAbsorbsSmallDeltas(t *testing.T) {
	a := spectrumWith([]float64{1, 2, 3})
	b := spectrumWith([]float64{1.0001, 2, 3})
	if result := Compare("a", a, "b", b, 0.001); result.Verdict != VerdictIdentical {
		t.Errorf("Expected epsilon 0.001 to absorb the delta, got %s", result.Verdict)
	}
	if result := Compare("a", a, "b", b, 0); result.Verdict != VerdictDiffer {
		t.Errorf("Expected exact comparison to flag the delta, got %s", result.Verdict)
	}
}

func TestCompareIncomparableLengths(t *testing.T) {
	a := spectrumWith([]float64{1, 2, 3, 4})
	b := spectrumWith([]float64{1, 2})
	result := Compare("a", a, "b", b, 0)
	if result.Verdict != VerdictIncomparable {
		t.Errorf("Expected incomparable verdict, got %s", result.Verdict)
	}
	if result.Reason == "" {
		t.Error("Expected a reason for the incomparable verdict")
	}
}

func TestCompareIncomparableGrids(t *testing.T) {
	a := spectrumWith([]float64{1, 2, 3})
	b := spectrumWith([]float64{1, 2, 3})
	b.Wavelengths[1] += 0.5
	result := Compare("a", a, "b", b, 0)
	if result.Verdict != VerdictIncomparable {
		t.Errorf("Expected incomparable verdict for shifted grid, got %s", result.Verdict)
	}
}

func TestCompareSymmetric(t *testing.T) {
	a := spectrumWith([]float64{1, 2, 3})
	b := spectrumWith([]float64{1, 2.5, 3})
	ab := Compare("a", a, "b", b, 0)
	ba := Compare("b", b, "a", a, 0)
	if ab.Verdict != ba.Verdict {
		t.Errorf("Verdict not symmetric: %s vs %s", ab.Verdict, ba.Verdict)
	}
	if ab.MaxDelta != ba.MaxDelta || ab.FirstIndex != ba.FirstIndex {
		t.Errorf("Divergence details not symmetric: %+v vs %+v", ab, ba)
	}
}

func TestCompareAll(t *testing.T) {
	a := spectrumWith([]float64{1, 2, 3})
	b := spectrumWith([]float64{1, 2, 3})
	c := spectrumWith([]float64{1, 2, 4})

	report := CompareAll([]string{"a", "b", "c"}, []*Spectrum{a, b, c}, 0)
	if len(report.Pairs) != 3 {
		t.Fatalf("Expected 3 pairs, got %d", len(report.Pairs))
	}
	if report.AllIdentical() {
		t.Error("Expected AllIdentical to fail with a differing spectrum")
	}

	report = CompareAll([]string{"a", "b"}, []*Spectrum{a, b}, 0)
	if !report.AllIdentical() {
		t.Error("Expected identical pair to report AllIdentical")
	}

	short := spectrumWith([]float64{1, 2})
	report = CompareAll([]string{"a", "short"}, []*Spectrum{a, short}, 0)
	if report.AllIdentical() {
		t.Error("Expected incomparable pair to count against AllIdentical")
	}
}
