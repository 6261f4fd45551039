// Package waveform synthesizes one period of a trapezoidal pulse.
//
// A pulse is described by four timing values measured the way an
// oscilloscope reports them:
//
//   - rise time: 10% to 90% of the amplitude on the leading edge
//   - fall time: 90% back down to 10% on the trailing edge
//   - pulse width: between the 50% crossings of both edges
//   - period: the length of one cycle, which is also the sampling window
//
// # Quick Start
//
//	series, err := waveform.Synthesize(waveform.Parameters{
//	    RiseTime:   0.1,
//	    FallTime:   0.1,
//	    PulseWidth: 0.5,
//	    Period:     1.0,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For a non-unit amplitude, build a [Synthesizer] with an explicit [Config]:
//
//	s, err := waveform.New(params, waveform.Config{Amplitude: 3.3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	series, err := s.Synthesize()
//
// # Segment Boundaries
//
// Because the supplied rise and fall times only cover 80% of each linear
// ramp, the full ramp durations are rise/0.8 and fall/0.8. The plateau at
// full amplitude is the pulse width minus half of each full ramp. Together
// these give the [Boundaries] that split a period into rise, plateau, fall and
// idle regions (see [Region]).
//
// Every series has exactly [SampleCount] points spaced period/999 apart,
// starting at 0 and ending at the period.
//
// # Errors
//
// Parameters are validated once, in [New]. Non-positive or non-finite values
// return [ErrInvalidParameters]. A pulse narrower than its own transitions
// would invert the region ordering; it is rejected with
// [ErrOverlappingTransitions], which also matches [ErrInvalidParameters].
// Faults inside the sampling loop are reported as [ErrSynthesis] wrapping the
// underlying cause.
//
// # Thread Safety
//
// A [Synthesizer] is immutable after construction and safe for concurrent use.
package waveform
