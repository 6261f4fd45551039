package waveform

// Region identifies the part of a period a sample falls into.
type Region int

const (
	// RegionRise is the linear ramp from zero to the amplitude.
	RegionRise Region = iota

	// RegionPlateau holds the full amplitude.
	RegionPlateau

	// RegionFall is the linear ramp from the amplitude back to zero.
	RegionFall

	// RegionIdle is the zero level after the pulse.
	RegionIdle
)

// String returns the lower-case region name.
func (r Region) String() string {
	switch r {
	case RegionRise:
		return "rise"
	case RegionPlateau:
		return "plateau"
	case RegionFall:
		return "fall"
	case RegionIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Boundaries are the segment edges derived from a set of Parameters.
// All times are measured from the start of the period.
type Boundaries struct {
	// RiseEnd is where the leading ramp reaches full amplitude.
	RiseEnd float64

	// FullFallDuration is the 100%-0% length of the trailing ramp.
	FullFallDuration float64

	// PlateauWidth is the time spent at full amplitude.
	// Negative when the transitions overlap.
	PlateauWidth float64

	// FallStart is where the trailing ramp leaves full amplitude.
	FallStart float64

	// FallEnd is where the trailing ramp reaches zero.
	FallEnd float64
}

// DeriveBoundaries converts 10%-90% transition times and a 50%-crossing
// pulse width into segment edges. It does not validate p.
func DeriveBoundaries(p Parameters) Boundaries {
	riseEnd := p.RiseTime / transitionSpan
	fullFall := p.FallTime / transitionSpan

	plateau := p.PulseWidth -
		halfTransition*(p.RiseTime/transitionSpan) -
		halfTransition*(p.FallTime/transitionSpan)

	fallStart := plateau + riseEnd

	return Boundaries{
		RiseEnd:          riseEnd,
		FullFallDuration: fullFall,
		PlateauWidth:     plateau,
		FallStart:        fallStart,
		FallEnd:          fallStart + fullFall,
	}
}

// Overlapping reports whether the ramps overlap, i.e. FallStart < RiseEnd.
func (b Boundaries) Overlapping() bool {
	return b.PlateauWidth < 0
}

// RegionAt classifies t. Comparisons are strict, so a time exactly on an
// edge belongs to the following region. The first matching region wins.
func (b Boundaries) RegionAt(t float64) Region {
	switch {
	case t < b.RiseEnd:
		return RegionRise
	case t < b.FallStart:
		return RegionPlateau
	case t < b.FallEnd:
		return RegionFall
	default:
		return RegionIdle
	}
}

// unitLevel returns the normalized level (0..1 for well-ordered edges) at t.
func (b Boundaries) unitLevel(t float64) float64 {
	switch b.RegionAt(t) {
	case RegionRise:
		return t / b.RiseEnd
	case RegionPlateau:
		return 1
	case RegionFall:
		return 1 - (t-b.FallStart)/b.FullFallDuration
	default:
		return 0
	}
}
