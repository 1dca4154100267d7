package spectra

import (
	"fmt"
	"math"
)

// Comparison verdicts.
const (
	VerdictIdentical    = "identical"
	VerdictDiffer       = "differ"
	VerdictIncomparable = "incomparable"
)

// PairResult reports how two spectrum artifacts relate. Incomparable
// pairs (mismatched grids) are a verdict, not an error: comparing
// artifacts from unrelated runs is a legitimate question with a
// structured answer.
type PairResult struct {
	A       string  `json:"a"`
	B       string  `json:"b"`
	Verdict string  `json:"verdict"`
	Reason  string  `json:"reason,omitempty"`
	Epsilon float64 `json:"epsilon"`

	// Divergence details, populated when the verdict is "differ".
	FirstIndex      int     `json:"firstIndex"`
	FirstWavelength float64 `json:"firstWavelength,omitempty"`
	FirstA          float64 `json:"firstA,omitempty"`
	FirstB          float64 `json:"firstB,omitempty"`
	DiffCount       int     `json:"diffCount"`
	MaxDelta        float64 `json:"maxDelta"`
}

// Compare checks two spectra point by point. Intensities further apart
// than epsilon count as differing; epsilon zero demands exact equality.
// The verdict is symmetric in a and b.
func Compare(nameA string, a *Spectrum, nameB string, b *Spectrum, epsilon float64) PairResult {
	result := PairResult{
		A:          nameA,
		B:          nameB,
		Epsilon:    epsilon,
		FirstIndex: -1,
	}

	if len(a.Wavelengths) != len(b.Wavelengths) {
		result.Verdict = VerdictIncomparable
		result.Reason = fmt.Sprintf("sample counts differ: %d vs %d",
			len(a.Wavelengths), len(b.Wavelengths))
		return result
	}
	for i := range a.Wavelengths {
		if a.Wavelengths[i] != b.Wavelengths[i] {
			result.Verdict = VerdictIncomparable
			result.Reason = fmt.Sprintf("wavelength grids differ at sample %d: %v vs %v",
				i, a.Wavelengths[i], b.Wavelengths[i])
			return result
		}
	}

	for i := range a.Intensities {
		delta := math.Abs(a.Intensities[i] - b.Intensities[i])
		if delta > result.MaxDelta {
			result.MaxDelta = delta
		}
		if delta > epsilon {
			if result.FirstIndex < 0 {
				result.FirstIndex = i
				result.FirstWavelength = a.Wavelengths[i]
				result.FirstA = a.Intensities[i]
				result.FirstB = b.Intensities[i]
			}
			result.DiffCount++
		}
	}

	if result.DiffCount == 0 {
		result.Verdict = VerdictIdentical
	} else {
		result.Verdict = VerdictDiffer
	}
	return result
}

// Report collects the pairwise comparison of a batch of spectra.
type Report struct {
	Epsilon float64      `json:"epsilon"`
	Pairs   []PairResult `json:"pairs"`
}

// CompareAll compares every unordered pair of the given spectra. Names
// and spectra run in parallel; names are only used for reporting.
func CompareAll(names []string, specs []*Spectrum, epsilon float64) Report {
	report := Report{Epsilon: epsilon}
	for i := 0; i < len(specs); i++ {
		for j := i + 1; j < len(specs); j++ {
			report.Pairs = append(report.Pairs,
				Compare(names[i], specs[i], names[j], specs[j], epsilon))
		}
	}
	return report
}

// AllIdentical reports whether every compared pair came out identical.
// Incomparable pairs count against it.
func (r Report) AllIdentical() bool {
	for _, p := range r.Pairs {
		if p.Verdict != VerdictIdentical {
			return false
		}
	}
	return true
}
