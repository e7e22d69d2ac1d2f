package view

import (
	"fmt"
	"math"
	"strconv"

	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/transform"
)

// Viewport is the drawing surface size in pixels. Aspect is the height of
// one pixel divided by its width: 1 for square pixels, about 2 for
// terminal cells.
type Viewport struct {
	Width  float64
	Height float64
	Aspect float64
}

func (v Viewport) aspect() float64 {
	if v.Aspect <= 0 {
		return 1
	}
	return v.Aspect
}

// Config holds the projection and styling parameters of a Pipeline.
type Config struct {
	PixelsPerUnit  float64 // 2D: pixels per projected unit at Scale 1
	FovYDeg        float64
	Near, Far      float64
	CameraDistance float64 // 3D: camera pulled back along +z

	MinSize, MaxSize   float64 // star radius for faintest and brightest
	MinAlpha, MaxAlpha float64 // star opacity 0-255

	LabelOffsetX float64 // star label offset from the star, in pixels
	LabelOffsetY float64
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		PixelsPerUnit:  50,
		FovYDeg:        60,
		Near:           0.1,
		Far:            100,
		CameraDistance: 3,
		MinSize:        0.1,
		MaxSize:        4,
		MinAlpha:       30,
		MaxAlpha:       255,
		LabelOffsetX:   4,
		LabelOffsetY:   -4,
	}
}

// ScreenStar is one visible star in pixel space.
type ScreenStar struct {
	HR         int
	Name       string
	Vmag       float64
	X, Y       float64
	Depth      float64 // NDC z in 3D, 0 in 2D
	Brightness float64 // 0 faintest .. 1 brightest
	Size       float64
	Alpha      float64
}

// Segment is one constellation line in pixel space.
type Segment struct {
	Constellation string
	X1, Y1        float64
	X2, Y2        float64
}

// LabelKind distinguishes star labels from constellation names.
type LabelKind int

const (
	StarLabel LabelKind = iota
	ConstellationLabel
)

// Label is text anchored at a pixel position. Constellation names are
// centred on their anchor.
type Label struct {
	Text string
	X, Y float64
	Kind LabelKind
}

// Frame is everything a drawing surface needs for one frame.
type Frame struct {
	Mode     state.ViewMode
	Ops      []transform.Operation
	Viewport Viewport
	Stars    []ScreenStar
	Lines    []Segment
	Labels   []Label
	Culled   int
}

// Pipeline renders frames. It keeps no per-frame state: every Render
// recomputes the composite from the interaction state.
type Pipeline struct {
	cfg Config
}

// NewPipeline creates a pipeline.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Render builds the operation list for s, composes it, applies it to every
// star of sk and maps the result to vp.
func (p *Pipeline) Render(sk *sky.Sky, s *state.Interaction, vp Viewport) (Frame, error) {
	return p.RenderOps(sk, s, BuildOperations(s), vp)
}

// RenderOps is Render with an explicit operation list. Display toggles and
// the view mode still come from s.
func (p *Pipeline) RenderOps(sk *sky.Sky, s *state.Interaction, ops []transform.Operation, vp Viewport) (Frame, error) {
	frame := Frame{Mode: s.Mode, Ops: ops, Viewport: vp}

	var (
		pos map[*sky.Star]point
		err error
	)
	if s.Mode == state.View3D {
		pos, err = p.project3D(sk, ops, vp)
	} else {
		pos, err = p.project2D(sk, ops, vp)
	}
	if err != nil {
		return Frame{}, err
	}

	style := newStyler(sk, p.cfg)
	for _, st := range sk.Stars {
		pt, ok := pos[st]
		if !ok {
			frame.Culled++
			continue
		}
		if !inside(pt, vp) {
			frame.Culled++
			continue
		}
		b := style.brightness(st.Vmag)
		frame.Stars = append(frame.Stars, ScreenStar{
			HR:         st.HR,
			Name:       st.Name,
			Vmag:       st.Vmag,
			X:          pt.x,
			Y:          pt.y,
			Depth:      pt.depth,
			Brightness: b,
			Size:       style.size(b),
			Alpha:      style.alpha(b),
		})
	}

	if s.ShowConstellations || s.ShowLabels {
		for _, c := range sk.Complete() {
			p.constellation(&frame, c, pos, s)
		}
	}
	return frame, nil
}

type point struct {
	x, y, depth float64
}

func (p *Pipeline) project2D(sk *sky.Sky, ops []transform.Operation, vp Viewport) (map[*sky.Star]point, error) {
	m, err := transform.Compose2D(ops)
	if err != nil {
		return nil, fmt.Errorf("render 2D: %w", err)
	}
	// Base positions are converted to projector-independent units before
	// the user operations run.
	u := sk.Projector.UnitScale()
	sk.Apply2D(m.Mul(transform.Scale2D(u, u)))

	cx, cy := vp.Width/2, vp.Height/2
	ppu := p.cfg.PixelsPerUnit
	yppu := ppu / vp.aspect()

	pos := make(map[*sky.Star]point, len(sk.Stars))
	for _, st := range sk.Stars {
		if !sk.Admits(st) {
			continue
		}
		x, y := st.Current2D.XY()
		px, py := cx-x*ppu, cy-y*yppu
		if !finite(px) || !finite(py) {
			continue
		}
		pos[st] = point{x: px, y: py}
	}
	return pos, nil
}

func (p *Pipeline) project3D(sk *sky.Sky, ops []transform.Operation, vp Viewport) (map[*sky.Star]point, error) {
	m, err := transform.Compose3D(ops)
	if err != nil {
		return nil, fmt.Errorf("render 3D: %w", err)
	}
	sk.Apply3D(m)

	aspect := 1.0
	if vp.Height > 0 {
		aspect = vp.Width / (vp.Height * vp.aspect())
	}
	proj, err := transform.Perspective(p.cfg.FovYDeg, aspect, p.cfg.Near, p.cfg.Far)
	if err != nil {
		return nil, fmt.Errorf("render 3D: %w", err)
	}
	pv := proj.Mul(transform.Translate3D(0, 0, -p.cfg.CameraDistance))

	pos := make(map[*sky.Star]point, len(sk.Stars))
	for _, st := range sk.Stars {
		if !sk.Admits(st) {
			continue
		}
		x, y, z, ok := pv.MulVec(st.Current3D).PerspectiveDivide()
		if !ok || math.Abs(x) > 1 || math.Abs(y) > 1 || math.Abs(z) > 1 {
			continue
		}
		pos[st] = point{
			x:     (x + 1) / 2 * vp.Width,
			y:     (1 - y) / 2 * vp.Height,
			depth: z,
		}
	}
	return pos, nil
}

// constellation adds the segments and labels of one bound constellation.
// A segment is drawn only when both ends were projected.
func (p *Pipeline) constellation(frame *Frame, c *sky.Constellation, pos map[*sky.Star]point, s *state.Interaction) {
	if s.ShowConstellations {
		for _, seg := range c.Segments() {
			a, okA := pos[seg[0]]
			b, okB := pos[seg[1]]
			if !okA || !okB {
				continue
			}
			frame.Lines = append(frame.Lines, Segment{
				Constellation: c.Name,
				X1:            a.x,
				Y1:            a.y,
				X2:            b.x,
				Y2:            b.y,
			})
		}
	}
	if !s.ShowLabels {
		return
	}

	var sx, sy float64
	n := 0
	for _, st := range c.Stars() {
		pt, ok := pos[st]
		if !ok {
			continue
		}
		frame.Labels = append(frame.Labels, Label{
			Text: strconv.Itoa(st.HR),
			X:    pt.x + p.cfg.LabelOffsetX,
			Y:    pt.y + p.cfg.LabelOffsetY,
			Kind: StarLabel,
		})
		sx += pt.x
		sy += pt.y
		n++
	}
	if n == 0 {
		return
	}

	lx, ly := sx/float64(n), sy/float64(n)
	if s.Mode == state.View2D {
		if x, y, ok := c.Centroid2D(); ok {
			lx = frame.Viewport.Width/2 - x*p.cfg.PixelsPerUnit
			ly = frame.Viewport.Height/2 - y*p.cfg.PixelsPerUnit/frame.Viewport.aspect()
		}
	}
	if finite(lx) && finite(ly) {
		frame.Labels = append(frame.Labels, Label{Text: c.Name, X: lx, Y: ly, Kind: ConstellationLabel})
	}
}

func inside(pt point, vp Viewport) bool {
	return pt.x >= 0 && pt.x < vp.Width && pt.y >= 0 && pt.y < vp.Height
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
