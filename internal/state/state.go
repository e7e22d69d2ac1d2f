// Package state holds the typed interaction state of the viewer and the
// per-frame state machine that advances it from normalized input.
package state

import (
	"fmt"
	"strings"
	"time"
)

// ViewMode selects the planar or spatial view.
type ViewMode int

const (
	View2D ViewMode = iota
	View3D
)

func (m ViewMode) String() string {
	switch m {
	case View2D:
		return "2D"
	case View3D:
		return "3D"
	default:
		return "unknown"
	}
}

// ParseViewMode accepts "2d" or "3d" in any case.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2d":
		return View2D, nil
	case "3d":
		return View3D, nil
	}
	return View2D, fmt.Errorf("unknown view mode %q (want 2d or 3d)", s)
}

// PointerMode is the pointer gesture in progress.
type PointerMode int

const (
	Idle PointerMode = iota
	Dragging
	Rotating
)

func (m PointerMode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Rotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// Interaction is everything the user has changed about the view. It is
// owned by the frame loop and passed by pointer into Update.
type Interaction struct {
	// Accumulated transform parameters
	AngleDeg  float64 // rotation in the view plane (about z in 3D)
	AngleXDeg float64 // 3D tilt
	AngleYDeg float64 // 3D yaw
	TX, TY    float64
	TZ        float64 // 3D only
	Scale     float64
	ShearX    float64
	ShearY    float64
	ReflectX  bool
	ReflectY  bool

	// Display toggles, kept across reset
	ShowConstellations bool
	ShowLabels         bool
	Mode               ViewMode

	// Pointer gesture
	Pointer      PointerMode
	LastX, LastY int
}

// NewInteraction returns the initial state for mode.
func NewInteraction(mode ViewMode) Interaction {
	s := Interaction{
		ShowConstellations: true,
		Mode:               mode,
	}
	s.Reset()
	return s
}

// Reset returns every transform accumulator to its default. Display
// toggles and the view mode are kept.
func (s *Interaction) Reset() {
	s.AngleDeg, s.AngleXDeg, s.AngleYDeg = 0, 0, 0
	s.TX, s.TY, s.TZ = 0, 0, 0
	s.Scale = 1
	s.ShearX, s.ShearY = 0, 0
	s.ReflectX, s.ReflectY = false, false
}

// Config holds the interaction rates. Held-key rates are per second of
// frame time.
type Config struct {
	RotateRateDeg    float64 // degrees per second
	PanRate          float64 // view units per second, divided by Scale
	DollyRate        float64 // 3D units per second
	ZoomRate         float64 // scale multiplier per second
	ShearRate        float64 // shear per second
	ScrollZoomStep   float64 // scale multiplier per wheel notch
	DragUnitsPerCell float64 // pan per pointer cell at Scale 1
	DragDegPerCell   float64 // rotation per pointer cell
	MinScale         float64
	MaxScale         float64
}

// DefaultConfig returns the default interaction rates.
func DefaultConfig() Config {
	return Config{
		RotateRateDeg:    90,
		PanRate:          0.5,
		DollyRate:        2,
		ZoomRate:         2,
		ShearRate:        0.5,
		ScrollZoomStep:   1.1,
		DragUnitsPerCell: 0.02,
		DragDegPerCell:   2,
		MinScale:         0.05,
		MaxScale:         50,
	}
}

// frameSeconds converts a frame duration to seconds, treating negative
// durations as zero.
func frameSeconds(dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return dt.Seconds()
}
