package transform

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names an operation kind in its textual form.
type Kind string

const (
	KindRotate    Kind = "rotate"
	KindRotateX   Kind = "rotate_x"
	KindRotateY   Kind = "rotate_y"
	KindRotateZ   Kind = "rotate_z"
	KindTranslate Kind = "translate"
	KindScale     Kind = "scale"
	KindReflect   Kind = "reflect"
	KindShear     Kind = "shear"
)

// Operation is one elementary transform request. The set of implementations
// is closed: only the types in this package satisfy it.
type Operation interface {
	Kind() Kind
	operation()
}

// Rotate is an in-plane rotation in degrees. In 3D it turns about z.
type Rotate struct{ Deg float64 }

// RotateXOp turns about the x-axis (3D only).
type RotateXOp struct{ Deg float64 }

// RotateYOp turns about the y-axis (3D only).
type RotateYOp struct{ Deg float64 }

// RotateZOp turns about the z-axis; in 2D it equals Rotate.
type RotateZOp struct{ Deg float64 }

// Translate offsets points. Z is ignored in 2D.
type Translate struct{ X, Y, Z float64 }

// Scale multiplies each axis. Z is ignored in 2D.
type Scale struct{ X, Y, Z float64 }

// Reflect mirrors along Axis.
type Reflect struct{ Axis Axis }

func (Rotate) Kind() Kind    { return KindRotate }
func (RotateXOp) Kind() Kind { return KindRotateX }
func (RotateYOp) Kind() Kind { return KindRotateY }
func (RotateZOp) Kind() Kind { return KindRotateZ }
func (Translate) Kind() Kind { return KindTranslate }
func (Scale) Kind() Kind     { return KindScale }
func (Reflect) Kind() Kind   { return KindReflect }
func (Shear) Kind() Kind     { return KindShear }

func (Rotate) operation()    {}
func (RotateXOp) operation() {}
func (RotateYOp) operation() {}
func (RotateZOp) operation() {}
func (Translate) operation() {}
func (Scale) operation()     {}
func (Reflect) operation()   {}
func (Shear) operation()     {}

// Uniform returns a Scale with the same factor on every axis.
func Uniform(s float64) Scale {
	return Scale{X: s, Y: s, Z: s}
}

// ParseOperations parses a comma-separated list such as
// "rotate:30,translate:1:2,reflect:x".
func ParseOperations(s string) ([]Operation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ops := make([]Operation, 0, len(parts))
	for _, p := range parts {
		op, err := ParseOperation(p)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ParseOperation parses one "kind:arg:arg" operation.
//
//	rotate:DEG, rotate_x:DEG, rotate_y:DEG, rotate_z:DEG
//	translate:X:Y[:Z]
//	scale:S | scale:X:Y[:Z]
//	reflect:AXIS
//	shear:SHX:SHY | shear:XY:XZ:YX:YZ:ZX:ZY
func ParseOperation(s string) (Operation, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	kind := Kind(strings.ToLower(strings.TrimSpace(fields[0])))
	args := fields[1:]

	if kind == KindReflect {
		if len(args) != 1 {
			return nil, invalid(string(kind), s, "want reflect:AXIS")
		}
		return Reflect{Axis: Axis(strings.ToLower(strings.TrimSpace(args[0])))}, nil
	}

	nums := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, invalid(string(kind), a, "not a number")
		}
		nums[i] = v
	}

	switch kind {
	case KindRotate, KindRotateX, KindRotateY, KindRotateZ:
		if len(nums) != 1 {
			return nil, invalid(string(kind), s, "want one angle in degrees")
		}
		switch kind {
		case KindRotateX:
			return RotateXOp{Deg: nums[0]}, nil
		case KindRotateY:
			return RotateYOp{Deg: nums[0]}, nil
		case KindRotateZ:
			return RotateZOp{Deg: nums[0]}, nil
		}
		return Rotate{Deg: nums[0]}, nil

	case KindTranslate:
		switch len(nums) {
		case 2:
			return Translate{X: nums[0], Y: nums[1]}, nil
		case 3:
			return Translate{X: nums[0], Y: nums[1], Z: nums[2]}, nil
		}
		return nil, invalid(string(kind), s, "want translate:X:Y[:Z]")

	case KindScale:
		switch len(nums) {
		case 1:
			return Uniform(nums[0]), nil
		case 2:
			return Scale{X: nums[0], Y: nums[1], Z: 1}, nil
		case 3:
			return Scale{X: nums[0], Y: nums[1], Z: nums[2]}, nil
		}
		return nil, invalid(string(kind), s, "want scale:S or scale:X:Y[:Z]")

	case KindShear:
		switch len(nums) {
		case 2:
			return Shear{XY: nums[0], YX: nums[1]}, nil
		case 6:
			return Shear{XY: nums[0], XZ: nums[1], YX: nums[2], YZ: nums[3], ZX: nums[4], ZY: nums[5]}, nil
		}
		return nil, invalid(string(kind), s, "want two or six shear terms")
	}

	return nil, invalid("operation", string(kind), "unknown kind")
}

// String renders op in the form accepted by ParseOperation.
func String(op Operation) string {
	switch o := op.(type) {
	case Rotate:
		return fmt.Sprintf("rotate:%g", o.Deg)
	case RotateXOp:
		return fmt.Sprintf("rotate_x:%g", o.Deg)
	case RotateYOp:
		return fmt.Sprintf("rotate_y:%g", o.Deg)
	case RotateZOp:
		return fmt.Sprintf("rotate_z:%g", o.Deg)
	case Translate:
		return fmt.Sprintf("translate:%g:%g:%g", o.X, o.Y, o.Z)
	case Scale:
		return fmt.Sprintf("scale:%g:%g:%g", o.X, o.Y, o.Z)
	case Reflect:
		return "reflect:" + string(o.Axis)
	case Shear:
		return fmt.Sprintf("shear:%g:%g:%g:%g:%g:%g", o.XY, o.XZ, o.YX, o.YZ, o.ZX, o.ZY)
	}
	return "<nil>"
}
