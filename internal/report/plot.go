package report

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/litescript/ls-starmap/internal/view"
)

var (
	plotBackground = color.RGBA{R: 8, G: 8, B: 24, A: 255}
	plotLine       = color.RGBA{R: 123, G: 44, B: 191, A: 255}
	plotLabel      = color.RGBA{R: 208, G: 200, B: 255, A: 255}
)

// PlotConfig sizes the rendered plot.
type PlotConfig struct {
	Width  vg.Length
	Height vg.Length
	Title  string
}

// DefaultPlotConfig returns a 4:3 plot.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{Width: 10 * vg.Inch, Height: 7.5 * vg.Inch}
}

// NewPlot draws f in frame pixel coordinates, flipped so that y grows
// upward, on a dark background without axes.
func NewPlot(f view.Frame, cfg PlotConfig) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = cfg.Title
	p.BackgroundColor = plotBackground

	flip := func(y float64) float64 {
		return f.Viewport.Height - y
	}

	for _, seg := range f.Lines {
		l, err := plotter.NewLine(plotter.XYs{
			{X: seg.X1, Y: flip(seg.Y1)},
			{X: seg.X2, Y: flip(seg.Y2)},
		})
		if err != nil {
			return nil, fmt.Errorf("constellation %s: %w", seg.Constellation, err)
		}
		l.LineStyle.Width = vg.Points(0.5)
		l.LineStyle.Color = plotLine
		p.Add(l)
	}

	if len(f.Stars) > 0 {
		pts := make(plotter.XYs, len(f.Stars))
		for i, s := range f.Stars {
			pts[i] = plotter.XY{X: s.X, Y: flip(s.Y)}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("stars: %w", err)
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			s := f.Stars[i]
			return draw.GlyphStyle{
				Color:  color.NRGBA{R: 255, G: 255, B: 240, A: alphaByte(s.Alpha)},
				Radius: vg.Points(math.Max(s.Size, 0.5)),
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(sc)
	}

	if len(f.Labels) > 0 {
		xyl := plotter.XYLabels{
			XYs:    make(plotter.XYs, len(f.Labels)),
			Labels: make([]string, len(f.Labels)),
		}
		for i, l := range f.Labels {
			xyl.XYs[i] = plotter.XY{X: l.X, Y: flip(l.Y)}
			xyl.Labels[i] = l.Text
		}
		labels, err := plotter.NewLabels(xyl)
		if err != nil {
			return nil, fmt.Errorf("labels: %w", err)
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Color = plotLabel
		}
		p.Add(labels)
	}

	// Add widens the axes to the data; pin them to the viewport so lines
	// leaving the frame are clipped.
	p.X.Min, p.X.Max = 0, f.Viewport.Width
	p.Y.Min, p.Y.Max = 0, f.Viewport.Height
	p.HideAxes()
	return p, nil
}

// SavePlot renders f to path. The image format follows the extension
// (png, svg, pdf, ...).
func SavePlot(path string, f view.Frame, cfg PlotConfig) error {
	p, err := NewPlot(f, cfg)
	if err != nil {
		return err
	}
	if err := p.Save(cfg.Width, cfg.Height, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}

func alphaByte(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 255:
		return 255
	}
	return uint8(math.Round(a))
}
