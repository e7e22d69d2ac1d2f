// Package view turns the interaction state and the sky into a frame of
// screen-space stars, constellation segments and labels.
package view

import (
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/transform"
)

// BuildOperations lists the transforms for the current state in their
// fixed application order: rotation, translation, scale, then reflection
// and shear when set. The 3D list rotates about x, y and z in that order.
func BuildOperations(s *state.Interaction) []transform.Operation {
	ops := make([]transform.Operation, 0, 7)
	if s.Mode == state.View3D {
		ops = append(ops,
			transform.RotateXOp{Deg: s.AngleXDeg},
			transform.RotateYOp{Deg: s.AngleYDeg},
			transform.RotateZOp{Deg: s.AngleDeg},
			transform.Translate{X: s.TX, Y: s.TY, Z: s.TZ},
		)
	} else {
		ops = append(ops,
			transform.Rotate{Deg: s.AngleDeg},
			transform.Translate{X: s.TX, Y: s.TY},
		)
	}
	ops = append(ops, transform.Uniform(s.Scale))

	if axis, ok := reflectAxis(s.ReflectX, s.ReflectY, s.Mode); ok {
		ops = append(ops, transform.Reflect{Axis: axis})
	}
	if s.ShearX != 0 || s.ShearY != 0 {
		ops = append(ops, transform.Shear{XY: s.ShearX, YX: s.ShearY})
	}
	return ops
}

// reflectAxis maps the mirror flags to an axis. ReflectX negates y and
// ReflectY negates x in both views; 3D axes name the negated coordinate
// while 2D axes name the mirror line.
func reflectAxis(rx, ry bool, mode state.ViewMode) (transform.Axis, bool) {
	switch {
	case rx && ry:
		return transform.AxisBoth, true
	case rx && mode == state.View3D:
		return transform.AxisY, true
	case ry && mode == state.View3D:
		return transform.AxisX, true
	case rx:
		return transform.AxisX, true
	case ry:
		return transform.AxisY, true
	default:
		return "", false
	}
}
