package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	waveform "github.com/tphakala/go-pulse-waveform"
	"github.com/tphakala/go-pulse-waveform/internal/render"
	"github.com/tphakala/go-pulse-waveform/internal/sink"
	"github.com/tphakala/go-pulse-waveform/internal/testutil"
)

func shortPulseArgs(dir string, extra ...string) []string {
	args := []string{
		"-rise-time", "0.1",
		"-fall-time", "0.1",
		"-pulse-width", "0.5",
		"-period", "1.0",
		"-output-path", dir,
		"-no-prompt",
	}
	return append(args, extra...)
}

func readAmplitudes(t *testing.T, path string) []float64 {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	require.Equal(t, []string{"time", "amplitude"}, records[0])

	out := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		v, err := strconv.ParseFloat(rec[1], 64)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestRun_EndToEnd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "result")
	var stdout bytes.Buffer

	err := run(shortPulseArgs(dir), strings.NewReader(""), &stdout)
	require.NoError(t, err)

	amplitudes := readAmplitudes(t, filepath.Join(dir, sink.CSVFileName))
	require.Len(t, amplitudes, waveform.SampleCount)

	const tol = 1e-9
	testutil.AssertAllInRange(t, amplitudes, -tol, 1+tol)

	plateauStart, fallStart, idleStart := testutil.TrapezoidPhases(amplitudes, 1, tol)
	require.Less(t, plateauStart, fallStart)
	require.Less(t, fallStart, idleStart)
	testutil.AssertMonotonic(t, amplitudes[:plateauStart])
	testutil.AssertConstant(t, amplitudes[plateauStart:fallStart], 1, 0)
	testutil.AssertNonIncreasing(t, amplitudes[fallStart:idleStart])
	testutil.AssertConstant(t, amplitudes[idleStart:], 0, tol)

	assert.Contains(t, stdout.String(), "Generated 1000 samples")
	assert.NotContains(t, stdout.String(), "Plot:")

	_, err = os.Stat(filepath.Join(dir, render.PlotFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_WithPlotAndWAV(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	err := run(shortPulseArgs(dir, "-show-plot", "-wav", "-bit-depth", "24"), strings.NewReader(""), &stdout)
	require.NoError(t, err)

	for _, name := range []string{sink.CSVFileName, sink.WAVFileName, render.PlotFileName} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
	assert.Contains(t, stdout.String(), "Plot: "+filepath.Join(dir, render.PlotFileName))
}

func TestRun_ValidationFailureWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "result")
	args := []string{
		"-rise-time", "0",
		"-fall-time", "0.1",
		"-pulse-width", "0.5",
		"-period", "1",
		"-output-path", dir,
		"-no-prompt",
	}

	err := run(args, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, waveform.ErrInvalidParameters)
	assert.Contains(t, err.Error(), "rise time must be positive")

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_InvalidWAVSettingsWritesNothing(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "unsupported bit depth",
			args:    []string{"-rise-time", "0.1", "-fall-time", "0.1", "-pulse-width", "0.5", "-period", "1", "-wav", "-bit-depth", "12"},
			wantErr: errBadInput,
		},
		{
			name:    "sample rate below 1 Hz",
			args:    []string{"-rise-time", "10", "-fall-time", "10", "-pulse-width", "100", "-period", "5000", "-wav"},
			wantErr: sink.ErrSink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "result")
			args := append(tt.args, "-output-path", dir, "-no-prompt")

			err := run(args, strings.NewReader(""), &bytes.Buffer{})
			require.ErrorIs(t, err, tt.wantErr)

			_, statErr := os.Stat(filepath.Join(dir, sink.CSVFileName))
			assert.True(t, os.IsNotExist(statErr), "CSV must not be written when the WAV cannot be")
		})
	}
}

func TestRun_ZeroAmplitudeRejected(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "result")

	err := run(shortPulseArgs(dir, "-amplitude", "0"), strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, errBadInput)
	assert.Contains(t, err.Error(), "-amplitude must be positive")

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_OverlappingTransitions(t *testing.T) {
	dir := t.TempDir()
	args := []string{
		"-rise-time", "0.8",
		"-fall-time", "0.8",
		"-pulse-width", "0.5",
		"-period", "5",
		"-output-path", dir,
		"-no-prompt",
	}

	err := run(args, strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, waveform.ErrOverlappingTransitions)
}

func TestRun_SinkFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := run(shortPulseArgs(filepath.Join(blocker, "out")), strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, sink.ErrSink)
}

func TestRun_PromptsForMissingValues(t *testing.T) {
	dir := t.TempDir()
	in := strings.NewReader("0.1\n0.1\n1\n0.5\n" + dir + "\nn\n")
	var stdout bytes.Buffer

	err := run([]string{"-v"}, in, &stdout)
	require.NoError(t, err)

	amplitudes := readAmplitudes(t, filepath.Join(dir, sink.CSVFileName))
	assert.Len(t, amplitudes, waveform.SampleCount)
	assert.Contains(t, stdout.String(), promptRiseTime)
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, strings.Join([]string{
		"rise_time: 0.8",
		"fall_time: 0.8",
		"pulse_width: 2.0",
		"period: 5",
		"amplitude: 2",
		"output_path: " + strconv.Quote(dir),
		"show_plot: false",
	}, "\n"))

	var stdout bytes.Buffer
	err := run([]string{"-config", cfg, "-no-prompt"}, strings.NewReader(""), &stdout)
	require.NoError(t, err)

	amplitudes := readAmplitudes(t, filepath.Join(dir, sink.CSVFileName))
	require.Len(t, amplitudes, waveform.SampleCount)
	assert.InDelta(t, 2.0, amplitudes[300], 0)
	assert.Contains(t, stdout.String(), "plateau 200")
}

func TestRun_BadConfigPath(t *testing.T) {
	err := run([]string{"-config", "/nonexistent/pulse.yaml"}, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}
