package waveform

import (
	"github.com/tphakala/go-pulse-waveform/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Sample is a single (time, amplitude) point.
type Sample struct {
	Time      float64
	Amplitude float64
}

// Series is one sampled period. Time is strictly ascending and both slices
// have the same length.
type Series struct {
	Time      []float64
	Amplitude []float64

	ops *simdops.Ops
}

// Summary holds descriptive statistics of a Series.
type Summary struct {
	// Peak is the largest amplitude.
	Peak float64

	// Min is the smallest amplitude.
	Min float64

	// Mean is the average amplitude over all samples.
	Mean float64

	// Regions counts samples per region.
	Regions map[Region]int
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.Time)
}

// At returns the i-th sample.
func (s *Series) At(i int) Sample {
	return Sample{Time: s.Time[i], Amplitude: s.Amplitude[i]}
}

// Samples returns the series as a slice of pairs.
func (s *Series) Samples() []Sample {
	out := make([]Sample, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

// Summarize computes statistics of the series. Region counts are derived
// from b, which should be the boundaries the series was sampled with.
func (s *Series) Summarize(b Boundaries) Summary {
	sum := Summary{Regions: make(map[Region]int)}
	if s.Len() == 0 {
		return sum
	}

	ops := s.ops
	if ops == nil {
		ops = simdops.Default()
	}

	sum.Peak = floats.Max(s.Amplitude)
	sum.Min = floats.Min(s.Amplitude)
	sum.Mean = ops.Sum(s.Amplitude) / float64(s.Len())

	for _, t := range s.Time {
		sum.Regions[b.RegionAt(t)]++
	}

	return sum
}
