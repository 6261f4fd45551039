// Command generate-waveform samples one period of a trapezoidal pulse and
// writes it to <output-path>/waveform_out.csv.
//
// Usage:
//
//	generate-waveform -rise-time 0.1 -fall-time 0.1 -pulse-width 0.5 -period 1
//	generate-waveform -rise-time 0.1 -fall-time 0.1 -pulse-width 0.5 -period 1 -show-plot
//	generate-waveform -config pulse.yaml -wav -bit-depth 24
//
// Values that are neither given as flags nor in the -config file are asked for
// interactively, unless -no-prompt is set.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	waveform "github.com/tphakala/go-pulse-waveform"
	"github.com/tphakala/go-pulse-waveform/internal/render"
	"github.com/tphakala/go-pulse-waveform/internal/simdops"
	"github.com/tphakala/go-pulse-waveform/internal/sink"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	var file *fileConfig
	if flags.configPath != "" {
		file, err = loadConfigFile(flags.configPath)
		if err != nil {
			return err
		}
	}

	s, err := merge(file, flags).complete(newPrompter(stdin, stdout), flags.noPrompt, flags.verbose)
	if err != nil {
		return err
	}

	return generate(s, stdout)
}

// generate validates, synthesizes and hands the series to the sinks and the
// renderer, in that order. Nothing is written unless synthesis succeeds.
func generate(s *settings, stdout io.Writer) error {
	synth, err := waveform.New(s.params, s.config)
	if err != nil {
		return err
	}

	b := synth.Boundaries()
	if s.verbose {
		log.Printf("Rise time: %g, fall time: %g, pulse width: %g, period: %g",
			s.params.RiseTime, s.params.FallTime, s.params.PulseWidth, s.params.Period)
		log.Printf("Amplitude: %g", synth.Amplitude())
		log.Printf("Edges: rise end %g, fall start %g, fall end %g (plateau %g)",
			b.RiseEnd, b.FallStart, b.FallEnd, b.PlateauWidth)
		log.Printf("SIMD: %s", simdops.Info())
		if b.FallEnd > s.params.Period {
			log.Printf("Warning: fall ends at %g, after the period %g; the pulse is truncated",
				b.FallEnd, s.params.Period)
		}
	}

	series, err := synth.Synthesize()
	if err != nil {
		return err
	}

	sinks := []sink.Sink{sink.NewCSV()}
	if s.wav {
		wav := sink.NewWAV(s.bitDepth)
		if err := wav.Check(series); err != nil {
			return err
		}
		sinks = append(sinks, wav)
	}

	paths := make([]string, 0, len(sinks))
	for _, out := range sinks {
		path, err := out.Write(series, s.outputPath)
		if err != nil {
			return err
		}
		if s.verbose {
			log.Printf("Wrote %s", path)
		}
		paths = append(paths, path)
	}

	var plotPath string
	if s.showPlot {
		plotPath, err = render.NewPNG(s.outputPath).Show(series)
		if err != nil {
			return err
		}
	}

	summary := series.Summarize(b)
	fmt.Fprintf(stdout, "Generated %d samples over [0, %g]\n", series.Len(), s.params.Period)
	fmt.Fprintf(stdout, "  Peak: %g, mean: %.6g\n", summary.Peak, summary.Mean)
	fmt.Fprintf(stdout, "  Samples per region: rise %d, plateau %d, fall %d, idle %d\n",
		summary.Regions[waveform.RegionRise], summary.Regions[waveform.RegionPlateau],
		summary.Regions[waveform.RegionFall], summary.Regions[waveform.RegionIdle])
	for _, path := range paths {
		fmt.Fprintf(stdout, "  Output: %s\n", path)
	}
	if plotPath != "" {
		fmt.Fprintf(stdout, "  Plot: %s\n", plotPath)
	}

	return nil
}
