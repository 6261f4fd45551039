// Package simdops exposes the SIMD-accelerated slice operations used by the
// waveform synthesizer.
//
// Calls go through a function-pointer table so tests and benchmarks can compare
// the accelerated path against the scalar reference implementations below.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides slice operations on float64 samples.
type Ops struct {
	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

// Pre-instantiated operation tables.
var (
	accelerated = Ops{
		Sum:   f64.Sum,
		Scale: f64.Scale,
	}

	scalar = Ops{
		Sum:   sumScalar,
		Scale: scaleScalar,
	}
)

// Default returns the SIMD-accelerated operations.
func Default() *Ops {
	return &accelerated
}

// Scalar returns pure Go reference operations.
func Scalar() *Ops {
	return &scalar
}

// Info describes the instruction set the accelerated path dispatches to.
func Info() string {
	return cpu.Info()
}

func sumScalar(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum
}

func scaleScalar(dst, a []float64, s float64) {
	n := min(len(dst), len(a))
	for i := range n {
		dst[i] = a[i] * s
	}
}
