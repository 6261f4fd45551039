package sink

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	waveform "github.com/tphakala/go-pulse-waveform"
	"gonum.org/v1/gonum/floats"
)

// WAV writes a series as mono PCM audio, one sample per waveform point.
// Series times are interpreted as seconds.
type WAV struct {
	// BitDepth is 16, 24 or 32. Zero selects 16.
	BitDepth int
}

// NewWAV returns a WAV sink with the given bit depth.
func NewWAV(bitDepth int) *WAV {
	return &WAV{BitDepth: bitDepth}
}

// Write stores series as dir/waveform_out.wav.
func (w *WAV) Write(series *waveform.Series, dir string) (string, error) {
	if err := w.Check(series); err != nil {
		return "", err
	}

	bitDepth := w.bitDepth()
	maxVal, err := getMaxValue(bitDepth)
	if err != nil {
		return "", err
	}
	rate, err := SampleRate(series)
	if err != nil {
		return "", err
	}

	data := quantize(series.Amplitude, maxVal)

	return writeAtomic(dir, WAVFileName, func(f *os.File) error {
		enc := wav.NewEncoder(f, rate, bitDepth, monoChannels, wavFormatPCM)
		buf := &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: monoChannels,
				SampleRate:  rate,
			},
			Data:           data,
			SourceBitDepth: bitDepth,
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("failed to write audio data: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to finalize WAV header: %w", err)
		}
		return nil
	})
}

// Check reports whether series can be written with the configured bit depth,
// without touching the file system.
func (w *WAV) Check(series *waveform.Series) error {
	if err := checkSeries(series); err != nil {
		return err
	}
	if err := ValidateBitDepth(w.bitDepth()); err != nil {
		return err
	}
	_, err := SampleRate(series)
	return err
}

func (w *WAV) bitDepth() int {
	if w.BitDepth == 0 {
		return bitsPerSample16
	}
	return w.BitDepth
}

// ValidateBitDepth returns an ErrSink error unless bitDepth is 16, 24 or 32.
func ValidateBitDepth(bitDepth int) error {
	_, err := getMaxValue(bitDepth)
	return err
}

// SampleRate returns the audio rate in Hz that plays series in real time,
// rounded to the nearest integer.
func SampleRate(series *waveform.Series) (int, error) {
	n := series.Len()
	if n < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples for a sample rate", ErrSink)
	}

	span := series.Time[n-1] - series.Time[0]
	rate := int(math.Round(float64(n-1) / span))
	if rate < 1 {
		return 0, fmt.Errorf("%w: period %g s is too long for a WAV sample rate", ErrSink, span)
	}
	return rate, nil
}

// quantize normalizes by the largest magnitude and converts to PCM integers.
func quantize(amplitude []float64, maxVal float64) []int {
	peak := math.Max(math.Abs(floats.Max(amplitude)), math.Abs(floats.Min(amplitude)))
	scale := maxVal
	if peak > 0 {
		scale = maxVal / peak
	}

	out := make([]int, len(amplitude))
	for i, v := range amplitude {
		sample := v * scale
		if sample > maxVal {
			sample = maxVal
		} else if sample < -maxVal {
			sample = -maxVal
		}
		out[i] = int(math.Round(sample))
	}
	return out
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: unsupported bit depth %d", ErrSink, bitDepth)
	}
}
