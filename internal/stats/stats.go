package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrNoSamples indicates that no valid numeric samples were available, so
// no statistics could be computed.
var ErrNoSamples = errors.New("no valid samples")

// Report holds the descriptive statistics computed over one sample set.
// It is immutable once produced.
type Report struct {
	Count    int
	Mean     float64
	Median   float64
	Modes    []float64
	ModeFreq int
	Variance float64
	StdDev   float64
	Skipped  int
}

// UniqueMode reports whether the sample set has at least one repeated
// value. When false every sample ties at frequency one and the mode is
// not meaningful.
func (r Report) UniqueMode() bool {
	return r.ModeFreq > 1 || r.Count == 1
}

// Compute produces a Report over the given samples. skipped is the number
// of malformed tokens dropped during parsing and is carried through to the
// report unchanged. Returns ErrNoSamples for an empty sample set.
func Compute(samples []float64, skipped int) (Report, error) {
	if len(samples) == 0 {
		return Report{Skipped: skipped}, ErrNoSamples
	}

	mean := computeMean(samples)
	variance := computeVariance(samples, mean)
	modes, freq := computeModes(samples)

	return Report{
		Count:    len(samples),
		Mean:     mean,
		Median:   computeMedian(samples),
		Modes:    modes,
		ModeFreq: freq,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Skipped:  skipped,
	}, nil
}

func computeMean(samples []float64) float64 {
	total := 0.0
	for _, x := range samples {
		total += x
	}
	return total / float64(len(samples))
}

func computeMedian(samples []float64) float64 {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// computeModes returns every value tied at the highest observed frequency,
// sorted ascending, together with that frequency.
func computeModes(samples []float64) ([]float64, int) {
	counts := make(map[float64]int, len(samples))
	for _, x := range samples {
		counts[x]++
	}

	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	var modes []float64
	for val, count := range counts {
		if count == maxCount {
			modes = append(modes, val)
		}
	}
	sort.Float64s(modes)

	return modes, maxCount
}

// computeVariance computes the population variance (denominator N).
func computeVariance(samples []float64, mean float64) float64 {
	sumSq := 0.0
	for _, x := range samples {
		d := x - mean
		sumSq += d * d
	}
	return sumSq / float64(len(samples))
}
