package waveform

import (
	"errors"
	"fmt"
	"math"
)

// Parameters holds the timing values of a trapezoidal pulse.
// All four share the same time unit.
type Parameters struct {
	// RiseTime is the 10%-90% duration of the leading edge.
	RiseTime float64

	// FallTime is the 90%-10% duration of the trailing edge.
	FallTime float64

	// PulseWidth is the time between the 50% crossings of both edges.
	PulseWidth float64

	// Period is the length of one cycle and of the sampling window.
	Period float64
}

// Config holds synthesis settings that are not part of the pulse timing.
// It is copied into the Synthesizer at construction.
type Config struct {
	// Amplitude is the plateau level. Zero selects DefaultAmplitude.
	Amplitude float64
}

// Common errors returned by the synthesizer.
var (
	// ErrInvalidParameters indicates a timing value or amplitude that cannot
	// describe a pulse.
	ErrInvalidParameters = errors.New("invalid waveform parameters")

	// ErrOverlappingTransitions indicates a pulse width too narrow to hold
	// both transitions, which would leave no plateau and invert the regions.
	ErrOverlappingTransitions = errors.New("pulse width shorter than combined transitions")

	// ErrSynthesis indicates a fault while computing samples.
	ErrSynthesis = errors.New("failed to generate the waveform")

	// ErrNonFinite indicates a sample evaluated to NaN or Inf.
	ErrNonFinite = errors.New("non-finite sample")
)

// Validate checks that every timing value is strictly positive and finite.
func (p Parameters) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"rise time", p.RiseTime},
		{"fall time", p.FallTime},
		{"pulse width", p.PulseWidth},
		{"period", p.Period},
	}

	for _, f := range fields {
		if !isPositiveFinite(f.value) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParameters, f.name, f.value)
		}
	}

	if p.Period/sampleIntervals < minSampleStep {
		return fmt.Errorf("%w: period %v is too short to hold %d distinct samples",
			ErrInvalidParameters, p.Period, SampleCount)
	}

	return nil
}

// Validate checks the configuration. A zero amplitude is valid and means
// DefaultAmplitude.
func (c Config) Validate() error {
	if c.Amplitude == 0 {
		return nil
	}
	if !isPositiveFinite(c.Amplitude) {
		return fmt.Errorf("%w: amplitude must be positive, got %v", ErrInvalidParameters, c.Amplitude)
	}
	return nil
}

// amplitude returns the effective plateau level.
func (c Config) amplitude() float64 {
	if c.Amplitude == 0 {
		return DefaultAmplitude
	}
	return c.Amplitude
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
