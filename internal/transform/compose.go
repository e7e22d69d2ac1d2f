package transform

import "fmt"

// Compose2D folds ops into one 3×3 matrix. Each elementary matrix is
// pre-multiplied onto the running composite, so ops apply in list order.
// rotate_x and rotate_y have no 2D meaning and are rejected.
func Compose2D(ops []Operation) (Mat3, error) {
	composite := Identity3()
	for i, op := range ops {
		m, err := elementary2D(op)
		if err != nil {
			return Mat3{}, fmt.Errorf("compose 2D op %d: %w", i, err)
		}
		composite = m.Mul(composite)
	}
	return composite, nil
}

// Compose3D folds ops into one 4×4 matrix, in list order.
func Compose3D(ops []Operation) (Mat4, error) {
	composite := Identity4()
	for i, op := range ops {
		m, err := elementary3D(op)
		if err != nil {
			return Mat4{}, fmt.Errorf("compose 3D op %d: %w", i, err)
		}
		composite = m.Mul(composite)
	}
	return composite, nil
}

func elementary2D(op Operation) (Mat3, error) {
	switch o := op.(type) {
	case Rotate:
		return Rotate2D(o.Deg), nil
	case RotateZOp:
		return Rotate2D(o.Deg), nil
	case Translate:
		return Translate2D(o.X, o.Y), nil
	case Scale:
		return Scale2D(o.X, o.Y), nil
	case Reflect:
		return Reflect2D(o.Axis)
	case Shear:
		return Shear2D(o.XY, o.YX), nil
	case nil:
		return Mat3{}, invalid("compose", "<nil>", "nil operation")
	}
	return Mat3{}, invalid("compose", string(op.Kind()), "unknown operation kind in 2D")
}

func elementary3D(op Operation) (Mat4, error) {
	switch o := op.(type) {
	case Rotate:
		return RotateZ(o.Deg), nil
	case RotateXOp:
		return RotateX(o.Deg), nil
	case RotateYOp:
		return RotateY(o.Deg), nil
	case RotateZOp:
		return RotateZ(o.Deg), nil
	case Translate:
		return Translate3D(o.X, o.Y, o.Z), nil
	case Scale:
		return Scale3D(o.X, o.Y, o.Z), nil
	case Reflect:
		return Reflect3D(o.Axis)
	case Shear:
		return Shear3D(o), nil
	case nil:
		return Mat4{}, invalid("compose", "<nil>", "nil operation")
	}
	return Mat4{}, invalid("compose", string(op.Kind()), "unknown operation kind in 3D")
}
