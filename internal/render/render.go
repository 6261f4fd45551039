// Package render draws sampled waveforms as time-vs-amplitude charts.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	waveform "github.com/tphakala/go-pulse-waveform"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Chart labels
const (
	Title  = "Waveform"
	XLabel = "Time"
	YLabel = "Amplitude"
)

// Output defaults
const (
	// PlotFileName is the name of the chart inside the output directory.
	PlotFileName = "waveform.png"

	defaultWidth  = 8 * vg.Inch
	defaultHeight = 4 * vg.Inch
	dirPerm       = 0o755
)

// ErrRender indicates the chart could not be drawn or saved.
var ErrRender = errors.New("failed to render waveform")

// Renderer displays a series.
type Renderer interface {
	// Show renders series and returns where the result was placed.
	Show(series *waveform.Series) (string, error)
}

// PNG renders a line chart into a PNG image inside Dir.
type PNG struct {
	Dir    string
	Width  vg.Length
	Height vg.Length
}

// NewPNG returns a PNG renderer with the default canvas size.
func NewPNG(dir string) *PNG {
	return &PNG{
		Dir:    dir,
		Width:  defaultWidth,
		Height: defaultHeight,
	}
}

// Show draws series and saves it as Dir/waveform.png.
func (r *PNG) Show(series *waveform.Series) (string, error) {
	p, err := NewPlot(series)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.Dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: failed to create output directory: %w", ErrRender, err)
	}

	width, height := r.Width, r.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	path := filepath.Join(r.Dir, PlotFileName)
	if err := p.Save(width, height, path); err != nil {
		return "", fmt.Errorf("%w: failed to save chart: %w", ErrRender, err)
	}
	return path, nil
}

// NewPlot builds the chart for series: a single line with a grid, the fixed
// title and axis labels.
func NewPlot(series *waveform.Series) (*plot.Plot, error) {
	if series == nil || series.Len() == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrRender)
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(seriesXY{series})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	p.Add(line)

	return p, nil
}

// seriesXY adapts a Series to plotter.XYer without copying.
type seriesXY struct {
	*waveform.Series
}

func (s seriesXY) XY(i int) (x, y float64) {
	return s.Time[i], s.Amplitude[i]
}
