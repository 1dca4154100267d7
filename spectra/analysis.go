package spectra

import (
	"math"
	"sort"
)

// Stat is a statistical summary of an intensity array.
type Stat struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
}

// Peak is a local intensity maximum found in a spectrum.
type Peak struct {
	Wavelength float64 `json:"wavelength"`
	Intensity  float64 `json:"intensity"`
	Prominence float64 `json:"prominence"`
}

// ComputeStats calculates a statistical summary of the intensities.
func ComputeStats(data []float64) Stat {
	if len(data) == 0 {
		return Stat{}
	}

	min := data[0]
	max := data[0]
	sum := 0.0
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	mean := sum / float64(len(data))

	sumSq := 0.0
	for _, v := range data {
		diff := v - mean
		sumSq += diff * diff
	}
	std := math.Sqrt(sumSq / float64(len(data)))

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	return Stat{
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		Std:    std,
	}
}

// FindPeaks detects local maxima with at least the given prominence.
// Prominence is the height above the taller of the two surrounding
// minima, which filters out noise wiggles without needing an absolute
// threshold.
func FindPeaks(s *Spectrum, minProminence float64) []Peak {
	data := s.Intensities
	if len(data) < 3 {
		return nil
	}

	var found []Peak
	for i := 1; i < len(data)-1; i++ {
		if data[i] > data[i-1] && data[i] > data[i+1] {
			leftMin := data[i-1]
			rightMin := data[i+1]
			for j := i - 2; j >= 0; j-- {
				if data[j] < leftMin {
					leftMin = data[j]
				}
				if data[j] > data[i] {
					break
				}
			}
			for j := i + 2; j < len(data); j++ {
				if data[j] < rightMin {
					rightMin = data[j]
				}
				if data[j] > data[i] {
					break
				}
			}
			prominence := data[i] - math.Max(leftMin, rightMin)
			if prominence >= minProminence {
				found = append(found, Peak{
					Wavelength: s.Wavelengths[i],
					Intensity:  data[i],
					Prominence: prominence,
				})
			}
		}
	}
	return found
}
