package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/canvas"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/view"
)

// cellAspect is the height of a terminal cell over its width.
const cellAspect = 2.0

// SkyViewModel draws the last rendered frame and the status line under it.
type SkyViewModel struct {
	width  int
	height int

	projection string
	frame      view.Frame
	inter      state.Interaction
	hasFrame   bool
}

// NewSkyViewModel creates a sky view labelled with the projection name.
func NewSkyViewModel(projection string) SkyViewModel {
	return SkyViewModel{projection: projection}
}

// SetSize updates the area available to the view, status line included.
func (m SkyViewModel) SetSize(width, height int) SkyViewModel {
	m.width = width
	m.height = height
	return m
}

// Viewport returns the canvas area in cells.
func (m SkyViewModel) Viewport() view.Viewport {
	h := m.height - 1
	if m.width <= 0 || h <= 0 {
		return view.Viewport{}
	}
	return view.Viewport{Width: float64(m.width), Height: float64(h), Aspect: cellAspect}
}

// SetFrame stores a rendered frame and the state it was rendered from.
func (m SkyViewModel) SetFrame(f view.Frame, s state.Interaction) SkyViewModel {
	m.frame = f
	m.inter = s
	m.hasFrame = true
	return m
}

// View renders the sky view.
func (m SkyViewModel) View() string {
	if m.width < 20 || m.height < 5 {
		return "Sky view requires larger terminal"
	}

	c := canvas.New(m.width, m.height-1)
	if m.hasFrame {
		c.DrawFrame(m.frame)
	}

	var b strings.Builder
	b.WriteString(c.String())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m SkyViewModel) renderStatus() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0c8ff"))

	parts := []string{accentStyle.Render(m.projection)}
	parts = append(parts, dimStyle.Render(hudText(m.inter)))
	parts = append(parts, dimStyle.Render(fmt.Sprintf("%d stars, %d culled, %d lines",
		len(m.frame.Stars), m.frame.Culled, len(m.frame.Lines))))
	if m.inter.Pointer != state.Idle {
		parts = append(parts, accentStyle.Render(m.inter.Pointer.String()))
	}
	return " " + strings.Join(parts, dimStyle.Render(" | "))
}

// hudText summarises the transform accumulators of s.
func hudText(s state.Interaction) string {
	var b strings.Builder
	if s.Mode == state.View3D {
		fmt.Fprintf(&b, "roll %.0f° tilt %.0f° yaw %.0f°", s.AngleDeg, s.AngleXDeg, s.AngleYDeg)
		fmt.Fprintf(&b, " pan %.2f,%.2f,%.2f", s.TX, s.TY, s.TZ)
	} else {
		fmt.Fprintf(&b, "rot %.0f°", s.AngleDeg)
		fmt.Fprintf(&b, " pan %.2f,%.2f", s.TX, s.TY)
	}
	fmt.Fprintf(&b, " zoom %.2fx", s.Scale)
	if s.ShearX != 0 || s.ShearY != 0 {
		fmt.Fprintf(&b, " shear %.2f,%.2f", s.ShearX, s.ShearY)
	}
	switch {
	case s.ReflectX && s.ReflectY:
		b.WriteString(" reflect xy")
	case s.ReflectX:
		b.WriteString(" reflect x")
	case s.ReflectY:
		b.WriteString(" reflect y")
	}
	if !s.ShowConstellations {
		b.WriteString(" lines off")
	}
	if s.ShowLabels {
		b.WriteString(" labels on")
	}
	return b.String()
}
