package waveform

// Sampling resolution
const (
	// SampleCount is the number of samples produced for one period.
	SampleCount = 1000

	// sampleIntervals is the number of steps between SampleCount evenly spaced points.
	sampleIntervals = SampleCount - 1

	// minSampleStep is the smallest normal float64. Smaller steps lose
	// precision or underflow to zero, and the time grid stops ascending.
	minSampleStep = 0x1p-1022
)

// Amplitude defaults
const (
	// DefaultAmplitude is the plateau level used when Config.Amplitude is zero.
	DefaultAmplitude = 1.0
)

// Transition measurement convention
const (
	// transitionSpan is the fraction of a linear ramp covered by the
	// 10%-90% rise or fall time.
	transitionSpan = 0.8

	// halfTransition is the share of a full ramp between the 50% crossing
	// and the plateau.
	halfTransition = 0.5
)
