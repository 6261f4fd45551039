// Package testutil provides reusable assertions for sampled waveform tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// TestingT is the subset of *testing.T the helpers need.
type TestingT interface {
	assert.TestingT
	Helper()
}

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-10
	BoundaryTolerance  = 1e-12
	AmplitudeTolerance = 1e-9
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t TestingT, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, fmt.Sprintf("value out of range: s[%d]=%f is outside [%f, %f]",
				i, v, minVal, maxVal), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertNonIncreasing verifies that a slice never increases.
func AssertNonIncreasing(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not non-increasing: s[%d]=%f > s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that every element is larger than the previous one.
func AssertStrictlyIncreasing(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, fmt.Sprintf("not strictly increasing: s[%d]=%f <= s[%d]=%f",
				i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertConstant verifies that all elements equal want within tolerance.
func AssertConstant(t TestingT, s []float64, want, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		// Negated so NaN fails.
		if !(math.Abs(v-want) <= tolerance) {
			return assert.Fail(t, fmt.Sprintf("not constant: s[%d]=%f, want %f within %e",
				i, v, want, tolerance), msgAndArgs...)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if !(relError <= tolerance) {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertLengthEquals verifies that a slice has the expected length.
func AssertLengthEquals(t TestingT, s []float64, expectedLen int, msgAndArgs ...any) bool {
	t.Helper()
	return assert.Len(t, s, expectedLen, msgAndArgs...)
}

// TrapezoidPhases splits amplitudes into the leading ramp, plateau, trailing
// ramp and idle tail by scanning for the first peak and the first zero after it.
// It returns the index where each phase starts.
func TrapezoidPhases(amplitude []float64, peak, tolerance float64) (plateauStart, fallStart, idleStart int) {
	n := len(amplitude)
	plateauStart, fallStart, idleStart = n, n, n

	i := 0
	for i < n && amplitude[i] < peak-tolerance {
		i++
	}
	plateauStart = i
	for i < n && amplitude[i] >= peak-tolerance {
		i++
	}
	fallStart = i
	for i < n && amplitude[i] > tolerance {
		i++
	}
	idleStart = i
	return plateauStart, fallStart, idleStart
}
