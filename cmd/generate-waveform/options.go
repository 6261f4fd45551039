package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	waveform "github.com/tphakala/go-pulse-waveform"
	"github.com/tphakala/go-pulse-waveform/internal/sink"
	"gopkg.in/yaml.v3"
)

var (
	errMissingValue = errors.New("missing value")
	errBadInput     = errors.New("invalid input")
)

// fileConfig mirrors the command-line flags in a YAML file.
// Nil fields were not present in the file.
type fileConfig struct {
	RiseTime   *float64 `yaml:"rise_time"`
	FallTime   *float64 `yaml:"fall_time"`
	PulseWidth *float64 `yaml:"pulse_width"`
	Period     *float64 `yaml:"period"`
	Amplitude  *float64 `yaml:"amplitude"`
	OutputPath *string  `yaml:"output_path"`
	ShowPlot   *bool    `yaml:"show_plot"`
	WAV        *bool    `yaml:"wav"`
	BitDepth   *int     `yaml:"bit_depth"`
}

// loadConfigFile reads a YAML config. Unknown keys are rejected.
func loadConfigFile(path string) (*fileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var cfg fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// cliFlags holds parsed flags and which of them were set explicitly.
type cliFlags struct {
	riseTime   float64
	fallTime   float64
	pulseWidth float64
	period     float64
	amplitude  float64
	outputPath string
	showPlot   bool
	wav        bool
	bitDepth   int
	configPath string
	noPrompt   bool
	verbose    bool

	set map[string]bool
}

func parseFlags(args []string, output io.Writer) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("generate-waveform", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Float64Var(&f.riseTime, flagRiseTime, 0, "Duration for the waveform to rise from 10% to 90% of amplitude")
	fs.Float64Var(&f.fallTime, flagFallTime, 0, "Duration for the waveform to fall from 90% back to 10% of amplitude")
	fs.Float64Var(&f.pulseWidth, flagPulseWidth, 0, "Duration between the 50% rising and 50% falling crossings")
	fs.Float64Var(&f.period, flagPeriod, 0, "Total duration of one waveform cycle")
	fs.Float64Var(&f.amplitude, flagAmplitude, defaultAmplitude, "Plateau amplitude")
	fs.StringVar(&f.outputPath, flagOutputPath, defaultOutputPath, "Output directory for waveform_out.csv")
	fs.BoolVar(&f.showPlot, flagShowPlot, false, "Render the waveform to waveform.png")
	fs.BoolVar(&f.wav, flagWAV, false, "Also write the period as waveform_out.wav (times in seconds)")
	fs.IntVar(&f.bitDepth, flagBitDepth, defaultBitDepth, "WAV bit depth: 16, 24 or 32")
	fs.StringVar(&f.configPath, "config", "", "YAML file with default values for the flags above")
	fs.BoolVar(&f.noPrompt, "no-prompt", false, "Fail instead of prompting for missing values")
	fs.BoolVar(&f.verbose, "v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: generate-waveform [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nExamples:\n")
		fmt.Fprintf(fs.Output(), "  generate-waveform -rise-time 0.1 -fall-time 0.1 -pulse-width 0.5 -period 1\n")
		fmt.Fprintf(fs.Output(), "  generate-waveform -config pulse.yaml -show-plot\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", errBadInput, fs.Args())
	}

	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// settings is the fully resolved invocation.
type settings struct {
	params     waveform.Parameters
	config     waveform.Config
	outputPath string
	showPlot   bool
	wav        bool
	bitDepth   int
	verbose    bool
}

// partial holds values collected so far; nil means still missing.
type partial struct {
	riseTime   *float64
	fallTime   *float64
	pulseWidth *float64
	period     *float64
	amplitude  *float64
	outputPath *string
	showPlot   *bool
	wav        *bool
	bitDepth   *int
}

// merge layers explicitly set flags over the config file.
func merge(file *fileConfig, f *cliFlags) partial {
	var p partial
	if file != nil {
		p = partial{
			riseTime:   file.RiseTime,
			fallTime:   file.FallTime,
			pulseWidth: file.PulseWidth,
			period:     file.Period,
			amplitude:  file.Amplitude,
			outputPath: file.OutputPath,
			showPlot:   file.ShowPlot,
			wav:        file.WAV,
			bitDepth:   file.BitDepth,
		}
	}

	if f.set[flagRiseTime] {
		p.riseTime = &f.riseTime
	}
	if f.set[flagFallTime] {
		p.fallTime = &f.fallTime
	}
	if f.set[flagPulseWidth] {
		p.pulseWidth = &f.pulseWidth
	}
	if f.set[flagPeriod] {
		p.period = &f.period
	}
	if f.set[flagAmplitude] || p.amplitude == nil {
		p.amplitude = &f.amplitude
	}
	if f.set[flagOutputPath] {
		p.outputPath = &f.outputPath
	}
	if f.set[flagShowPlot] {
		p.showPlot = &f.showPlot
	}
	if f.set[flagWAV] || p.wav == nil {
		p.wav = &f.wav
	}
	if f.set[flagBitDepth] || p.bitDepth == nil {
		p.bitDepth = &f.bitDepth
	}
	return p
}

// complete fills the remaining gaps by prompting, or fails when prompting is
// disabled. The output path and plot choice fall back to their defaults.
func (p partial) complete(pr *prompter, noPrompt, verbose bool) (*settings, error) {
	// Zero means "default" to the library; an explicit zero here is a typo.
	if *p.amplitude <= 0 {
		return nil, fmt.Errorf("%w: -%s must be positive, got %g", errBadInput, flagAmplitude, *p.amplitude)
	}
	if *p.wav {
		if err := sink.ValidateBitDepth(*p.bitDepth); err != nil {
			return nil, fmt.Errorf("%w: -%s: %w", errBadInput, flagBitDepth, err)
		}
	}

	floats := []struct {
		dst   **float64
		name  string
		label string
	}{
		{&p.riseTime, flagRiseTime, promptRiseTime},
		{&p.fallTime, flagFallTime, promptFallTime},
		{&p.period, flagPeriod, promptPeriod},
		{&p.pulseWidth, flagPulseWidth, promptPulseWidth},
	}

	for _, fl := range floats {
		if *fl.dst != nil {
			continue
		}
		if noPrompt {
			return nil, fmt.Errorf("%w: -%s", errMissingValue, fl.name)
		}
		v, err := pr.float(fl.label)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fl.name, err)
		}
		*fl.dst = &v
	}

	outputPath := defaultOutputPath
	switch {
	case p.outputPath != nil:
		outputPath = *p.outputPath
	case !noPrompt:
		v, err := pr.text(promptOutputPath, defaultOutputPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flagOutputPath, err)
		}
		outputPath = v
	}

	showPlot := false
	switch {
	case p.showPlot != nil:
		showPlot = *p.showPlot
	case !noPrompt:
		v, err := pr.confirm(promptShowPlot, false)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flagShowPlot, err)
		}
		showPlot = v
	}

	return &settings{
		params: waveform.Parameters{
			RiseTime:   *p.riseTime,
			FallTime:   *p.fallTime,
			PulseWidth: *p.pulseWidth,
			Period:     *p.period,
		},
		config:     waveform.Config{Amplitude: *p.amplitude},
		outputPath: outputPath,
		showPlot:   showPlot,
		wav:        *p.wav,
		bitDepth:   *p.bitDepth,
		verbose:    verbose,
	}, nil
}

// prompter asks for values line by line.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints label and reads one trimmed line. io.EOF is returned only when
// nothing was typed.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	s, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (p *prompter) float(label string) (float64, error) {
	for range maxPromptAttempts {
		s, err := p.line(label)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", errMissingValue, err)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, "Error: %q is not a valid number.\n", s)
	}
	return 0, fmt.Errorf("%w: no valid number after %d attempts", errBadInput, maxPromptAttempts)
}

func (p *prompter) text(label, def string) (string, error) {
	s, err := p.line(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

func (p *prompter) confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for range maxPromptAttempts {
		s, err := p.line(fmt.Sprintf("%s [%s]", label, hint))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return def, nil
			}
			return false, err
		}
		if v, ok := parseYesNo(s, def); ok {
			return v, nil
		}
		fmt.Fprintf(p.out, "Error: %q is not a valid boolean.\n", s)
	}
	return false, fmt.Errorf("%w: no valid answer after %d attempts", errBadInput, maxPromptAttempts)
}

func parseYesNo(s string, def bool) (value, ok bool) {
	switch strings.ToLower(s) {
	case "":
		return def, true
	case "y", "yes", "t", "true", "1":
		return true, true
	case "n", "no", "f", "false", "0":
		return false, true
	default:
		return false, false
	}
}
