package spectra

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/uvislab/go-hallucinator/composition"
)

func sampleSpectrum() *Spectrum {
	return &Spectrum{
		Version: SchemaVersion,
		Seed:    50,
		Index:   0,
		Composition: composition.Composition{
			{Symbol: "V", Fraction: 0.5},
			{Symbol: "Cu", Fraction: 0.5},
		},
		Label:       "${Cu}_{0.50} {V}_{0.50}$",
		Wavelengths: []float64{300, 500, 700, 900, 1100},
		Intensities: []float64{0.01, 0.5, 5.130000000000001, 0.5, 0.01},
	}
}

func TestRoundTripPreservesBits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum_0000.json")
	s := sampleSpectrum()
	if err := WriteJSON(s, path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	loaded, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	for i := range s.Intensities {
		if loaded.Intensities[i] != s.Intensities[i] {
			t.Errorf("Intensity %d changed in round trip: %v vs %v",
				i, loaded.Intensities[i], s.Intensities[i])
		}
	}
	if loaded.Label != s.Label || loaded.Seed != s.Seed {
		t.Errorf("Metadata changed in round trip: %+v", loaded)
	}
}

func TestValidate(t *testing.T) {
	if err := sampleSpectrum().Validate(); err != nil {
		t.Errorf("Expected sample spectrum to validate, got %v", err)
	}

	s := sampleSpectrum()
	s.Intensities = s.Intensities[:3]
	if err := s.Validate(); err == nil {
		t.Error("Expected length mismatch to be rejected")
	}

	s = sampleSpectrum()
	s.Wavelengths = nil
	s.Intensities = nil
	if err := s.Validate(); err == nil {
		t.Error("Expected empty spectrum to be rejected")
	}

	s = sampleSpectrum()
	s.Composition[0].Fraction = 0.9
	if err := s.Validate(); err == nil {
		t.Error("Expected broken composition to be rejected")
	}
}

func TestFromJSONMalformed(t *testing.T) {
	if _, err := FromJSON([]byte("{broken")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := FromJSON([]byte(`{"wavelengths":[1,2],"intensities":[1]}`)); err == nil {
		t.Error("Expected error for inconsistent arrays")
	}
}

func TestComputeStats(t *testing.T) {
	stat := ComputeStats([]float64{0, 1, 2, 3, 4})
	if stat.Min != 0 || stat.Max != 4 {
		t.Errorf("Expected min 0 max 4, got %v %v", stat.Min, stat.Max)
	}
	if stat.Mean != 2 {
		t.Errorf("Expected mean 2, got %v", stat.Mean)
	}
	if stat.Median != 2 {
		t.Errorf("Expected median 2, got %v", stat.Median)
	}
	if math.Abs(stat.Std-math.Sqrt(2)) > 1e-12 {
		t.Errorf("Expected std sqrt(2), got %v", stat.Std)
	}

	even := ComputeStats([]float64{1, 2, 3, 4})
	if even.Median != 2.5 {
		t.Errorf("Expected median 2.5 for even count, got %v", even.Median)
	}

	empty := ComputeStats(nil)
	if empty != (Stat{}) {
		t.Errorf("Expected zero stats for empty input, got %+v", empty)
	}
}

func TestFindPeaks(t *testing.T) {
	s := &Spectrum{
		Wavelengths: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
		Intensities: []float64{0, 0.1, 0, 5, 0, 0.1, 0, 2, 0},
	}
	found := FindPeaks(s, 1)
	if len(found) != 2 {
		t.Fatalf("Expected 2 prominent peaks, got %d: %+v", len(found), found)
	}
	if found[0].Wavelength != 4 || found[0].Intensity != 5 {
		t.Errorf("Expected first peak at wavelength 4 height 5, got %+v", found[0])
	}
	if found[1].Wavelength != 8 || found[1].Intensity != 2 {
		t.Errorf("Expected second peak at wavelength 8 height 2, got %+v", found[1])
	}

	all := FindPeaks(s, 0)
	if len(all) != 4 {
		t.Errorf("Expected 4 local maxima without a prominence floor, got %d", len(all))
	}

	if FindPeaks(&Spectrum{Wavelengths: []float64{1, 2}, Intensities: []float64{1, 2}}, 0) != nil {
		t.Error("Expected no peaks for a two-sample spectrum")
	}
}

func TestDigest(t *testing.T) {
	a := sampleSpectrum()
	b := sampleSpectrum()
	if Digest([]*Spectrum{a}) != Digest([]*Spectrum{b}) {
		t.Error("Expected equal spectra to share a digest")
	}

	b.Intensities[2] += 1e-12
	if Digest([]*Spectrum{a}) == Digest([]*Spectrum{b}) {
		t.Error("Expected a one-bit change to change the digest")
	}

	c := sampleSpectrum()
	if Digest([]*Spectrum{a, c}) == Digest([]*Spectrum{a}) {
		t.Error("Expected batch length to matter")
	}
}
