package waveform

import "github.com/tphakala/go-pulse-waveform/internal/simdops"

// Export internal functions for testing.
// This file uses the _test.go suffix so it's only included in test builds.

// ExportedSample wraps sample for testing with hand-built boundaries.
func ExportedSample(b Boundaries, period, amplitude float64, ops *simdops.Ops) (*Series, error) {
	return sample(b, period, amplitude, ops)
}

// ExportedUnitLevel wraps Boundaries.unitLevel for testing.
func ExportedUnitLevel(b Boundaries, t float64) float64 {
	return b.unitLevel(t)
}
