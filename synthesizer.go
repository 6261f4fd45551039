package waveform

import (
	"fmt"
	"math"

	"github.com/tphakala/go-pulse-waveform/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Synthesizer computes sampled trapezoidal pulses for one fixed set of
// parameters. It is immutable after New.
type Synthesizer struct {
	params     Parameters
	amplitude  float64
	boundaries Boundaries
	ops        *simdops.Ops
}

// New validates p and cfg and derives the segment boundaries.
//
// Validation happens here and nowhere else, so every caller gets the same
// behavior. A pulse whose transitions do not fit inside its width returns an
// error matching both ErrInvalidParameters and ErrOverlappingTransitions.
func New(p Parameters, cfg Config) (*Synthesizer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := DeriveBoundaries(p)
	if b.Overlapping() {
		return nil, fmt.Errorf("%w: %w (plateau width %g, rise ends at %g, fall starts at %g)",
			ErrInvalidParameters, ErrOverlappingTransitions, b.PlateauWidth, b.RiseEnd, b.FallStart)
	}

	return &Synthesizer{
		params:     p,
		amplitude:  cfg.amplitude(),
		boundaries: b,
		ops:        simdops.Default(),
	}, nil
}

// Synthesize is a shortcut for New with the default Config followed by
// Synthesizer.Synthesize.
func Synthesize(p Parameters) (*Series, error) {
	s, err := New(p, Config{})
	if err != nil {
		return nil, err
	}
	return s.Synthesize()
}

// Parameters returns the timing values the synthesizer was built with.
func (s *Synthesizer) Parameters() Parameters {
	return s.params
}

// Amplitude returns the effective plateau level.
func (s *Synthesizer) Amplitude() float64 {
	return s.amplitude
}

// Boundaries returns the derived segment edges.
func (s *Synthesizer) Boundaries() Boundaries {
	return s.boundaries
}

// Synthesize samples one period at SampleCount evenly spaced points.
// The result is a fresh Series on every call.
func (s *Synthesizer) Synthesize() (*Series, error) {
	return sample(s.boundaries, s.params.Period, s.amplitude, s.ops)
}

// sample evaluates the pulse over [0, period]. Any panic or non-finite level
// is returned as ErrSynthesis wrapping the cause.
func sample(b Boundaries, period, amplitude float64, ops *simdops.Ops) (series *Series, err error) {
	defer func() {
		if r := recover(); r != nil {
			series = nil
			err = fmt.Errorf("%w: %v", ErrSynthesis, r)
		}
	}()

	times := floats.Span(make([]float64, SampleCount), 0, period)
	// Span accumulates rounding in the step; pin the end point.
	times[sampleIntervals] = period

	levels := make([]float64, SampleCount)
	for i, t := range times {
		v := b.unitLevel(t)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %w at t=%g (%s region)", ErrSynthesis, ErrNonFinite, t, b.RegionAt(t))
		}
		levels[i] = v
	}

	ops.Scale(levels, levels, amplitude)

	return &Series{
		Time:      times,
		Amplitude: levels,
		ops:       ops,
	}, nil
}
