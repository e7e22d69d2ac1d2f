package state

import (
	"math"
	"time"
)

// Update advances s by one frame of input. Pointer gestures and held keys
// change the accumulators; pressed keys toggle flags. It returns false when
// the user asked to quit.
func Update(s *Interaction, in Input, dt time.Duration, cfg Config) bool {
	if in.Quit {
		return false
	}
	for _, k := range in.Pressed {
		if k == KeyQuit || k == KeyInterrupt {
			return false
		}
	}

	updatePointer(s, in, cfg)
	applyHeld(s, in, frameSeconds(dt), cfg)

	if in.Scroll != 0 {
		s.Scale *= math.Pow(cfg.ScrollZoomStep, float64(in.Scroll))
	}

	for _, k := range in.Pressed {
		applyPressed(s, k)
	}

	s.Scale = clamp(s.Scale, cfg.MinScale, cfg.MaxScale)
	s.AngleDeg = wrapDeg(s.AngleDeg)
	s.AngleXDeg = wrapDeg(s.AngleXDeg)
	s.AngleYDeg = wrapDeg(s.AngleYDeg)
	return true
}

// updatePointer runs the Idle/Dragging/Rotating machine. The frame a
// button goes down only records the reference position.
func updatePointer(s *Interaction, in Input, cfg Config) {
	switch s.Pointer {
	case Idle:
		switch {
		case in.Primary:
			s.Pointer = Dragging
		case in.Secondary:
			s.Pointer = Rotating
		default:
			return
		}
		s.LastX, s.LastY = in.PointerX, in.PointerY
		return
	case Dragging:
		if !in.Primary {
			s.Pointer = Idle
			return
		}
	case Rotating:
		if !in.Secondary {
			s.Pointer = Idle
			return
		}
	}

	dx := float64(in.PointerX - s.LastX)
	dy := float64(in.PointerY - s.LastY)
	s.LastX, s.LastY = in.PointerX, in.PointerY
	if dx == 0 && dy == 0 {
		return
	}

	switch s.Pointer {
	case Dragging:
		// Content follows the pointer: screen x grows to the right and
		// screen y downward, both opposite to view x and y. Reflection
		// runs after translation, so a mirrored axis pans the other way.
		if s.ReflectY {
			dx = -dx
		}
		if s.ReflectX {
			dy = -dy
		}
		k := cfg.DragUnitsPerCell / scaleOrOne(s.Scale)
		s.TX -= dx * k
		s.TY -= dy * k
	case Rotating:
		if s.Mode == View3D {
			s.AngleYDeg += dx * cfg.DragDegPerCell
			s.AngleXDeg += dy * cfg.DragDegPerCell
		} else {
			s.AngleDeg += dx * cfg.DragDegPerCell
		}
	}
}

func applyHeld(s *Interaction, in Input, sec float64, cfg Config) {
	if sec == 0 || len(in.Held) == 0 {
		return
	}

	s.AngleDeg += in.axis(KeyRotateLeft, KeyRotateRight) * cfg.RotateRateDeg * sec
	s.AngleXDeg += in.axis(KeyTiltDown, KeyTiltUp) * cfg.RotateRateDeg * sec
	s.AngleYDeg += in.axis(KeyYawLeft, KeyYawRight) * cfg.RotateRateDeg * sec

	pan := cfg.PanRate * sec / scaleOrOne(s.Scale)
	s.TX += in.axis(KeyPanLeft, KeyPanRight) * pan
	s.TY += in.axis(KeyPanDown, KeyPanUp) * pan
	s.TZ += in.axis(KeyDollyOut, KeyDollyIn) * cfg.DollyRate * sec

	zoom := in.axis(KeyZoomOut, KeyZoomIn)
	if zoom == 0 {
		zoom = in.axis(KeyZoomOut, KeyZoomInAlt)
	}
	if zoom != 0 {
		s.Scale *= math.Pow(cfg.ZoomRate, zoom*sec)
	}

	s.ShearX += in.axis(KeyShearXDown, KeyShearXUp) * cfg.ShearRate * sec
	s.ShearY += in.axis(KeyShearYDown, KeyShearYUp) * cfg.ShearRate * sec
}

func applyPressed(s *Interaction, key string) {
	switch key {
	case KeyReflect:
		both := !(s.ReflectX && s.ReflectY)
		s.ReflectX, s.ReflectY = both, both
	case KeyReflectX:
		s.ReflectX = !s.ReflectX
	case KeyReflectY:
		s.ReflectY = !s.ReflectY
	case KeyConstellations:
		s.ShowConstellations = !s.ShowConstellations
	case KeyLabels:
		s.ShowLabels = !s.ShowLabels
	case KeyMode:
		if s.Mode == View2D {
			s.Mode = View3D
		} else {
			s.Mode = View2D
		}
	case KeyReset:
		s.Reset()
	}
}

func scaleOrOne(scale float64) float64 {
	if scale == 0 {
		return 1
	}
	return scale
}

func clamp(v, lo, hi float64) float64 {
	if hi > 0 && v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// wrapDeg keeps an accumulated angle inside (-360, 360).
func wrapDeg(a float64) float64 {
	return math.Mod(a, 360)
}
