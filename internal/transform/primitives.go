package transform

import (
	"fmt"
	"math"
)

// Axis names a reflection. In 2D "x" mirrors across the x-axis (y is
// negated), "y" mirrors across the y-axis and "both" negates both. In 3D a
// single axis mirrors across the plane orthogonal to it, a pair negates both
// named coordinates ("both" is "xy"), and "xyz" reflects through the origin.
type Axis string

const (
	AxisX    Axis = "x"
	AxisY    Axis = "y"
	AxisZ    Axis = "z"
	AxisBoth Axis = "both"
	AxisXY   Axis = "xy"
	AxisXZ   Axis = "xz"
	AxisYZ   Axis = "yz"
	AxisXYZ  Axis = "xyz"
)

// Rotate2D rotates counter-clockwise about the origin by deg degrees.
func Rotate2D(deg float64) Mat3 {
	c, s := math.Cos(degToRad(deg)), math.Sin(degToRad(deg))
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// Translate2D moves points by (tx, ty).
func Translate2D(tx, ty float64) Mat3 {
	return Mat3{
		{1, 0, tx},
		{0, 1, ty},
		{0, 0, 1},
	}
}

// Scale2D scales each axis independently. Zero and negative factors are
// accepted as given.
func Scale2D(sx, sy float64) Mat3 {
	return Mat3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// Reflect2D mirrors across the named axis.
func Reflect2D(axis Axis) (Mat3, error) {
	m := Identity3()
	switch axis {
	case AxisX:
		m[1][1] = -1
	case AxisY:
		m[0][0] = -1
	case AxisBoth:
		m[0][0], m[1][1] = -1, -1
	default:
		return Mat3{}, invalid("reflect", string(axis), "want x, y or both")
	}
	return m, nil
}

// Shear2D couples x with y (shx) and y with x (shy).
func Shear2D(shx, shy float64) Mat3 {
	return Mat3{
		{1, shx, 0},
		{shy, 1, 0},
		{0, 0, 1},
	}
}

// RotateX rotates counter-clockwise about the x-axis (y toward z).
func RotateX(deg float64) Mat4 {
	c, s := math.Cos(degToRad(deg)), math.Sin(degToRad(deg))
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY rotates counter-clockwise about the y-axis (z toward x).
func RotateY(deg float64) Mat4 {
	c, s := math.Cos(degToRad(deg)), math.Sin(degToRad(deg))
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ rotates counter-clockwise about the z-axis (x toward y).
func RotateZ(deg float64) Mat4 {
	c, s := math.Cos(degToRad(deg)), math.Sin(degToRad(deg))
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate3D moves points by (tx, ty, tz).
func Translate3D(tx, ty, tz float64) Mat4 {
	return Mat4{
		{1, 0, 0, tx},
		{0, 1, 0, ty},
		{0, 0, 1, tz},
		{0, 0, 0, 1},
	}
}

// Scale3D scales each axis independently.
func Scale3D(sx, sy, sz float64) Mat4 {
	return Mat4{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// Reflect3D negates the coordinates named by axis.
func Reflect3D(axis Axis) (Mat4, error) {
	m := Identity4()
	var flip string
	switch axis {
	case AxisX, AxisY, AxisZ, AxisXY, AxisXZ, AxisYZ, AxisXYZ:
		flip = string(axis)
	case AxisBoth:
		flip = string(AxisXY)
	default:
		return Mat4{}, invalid("reflect", string(axis), "want x, y, z, xy, xz, yz, xyz or both")
	}
	for _, c := range flip {
		i := int(c - 'x')
		m[i][i] = -1
	}
	return m, nil
}

// Shear holds the six 3D coupling terms. XY is the amount of y added to x,
// ZX the amount of x added to z, and so on.
type Shear struct {
	XY, XZ float64
	YX, YZ float64
	ZX, ZY float64
}

// IsZero reports whether every term is zero.
func (s Shear) IsZero() bool {
	return s == Shear{}
}

// Shear3D builds the matrix for s.
func Shear3D(s Shear) Mat4 {
	return Mat4{
		{1, s.XY, s.XZ, 0},
		{s.YX, 1, s.YZ, 0},
		{s.ZX, s.ZY, 1, 0},
		{0, 0, 0, 1},
	}
}

// Perspective builds the standard right-handed view-to-clip matrix for a
// vertical field of view in degrees. Points in front of the eye have
// negative z in view space and end up with w = -z > 0.
func Perspective(fovYDeg, aspect, near, far float64) (Mat4, error) {
	if !(near > 0) || !(far > near) {
		return Mat4{}, invalid("perspective", fmt.Sprintf("near=%g far=%g", near, far), "want 0 < near < far")
	}
	if !(fovYDeg > 0 && fovYDeg < 180) {
		return Mat4{}, invalid("perspective", fmt.Sprintf("fov=%g", fovYDeg), "want 0 < fov < 180")
	}
	if !(aspect > 0) {
		return Mat4{}, invalid("perspective", fmt.Sprintf("aspect=%g", aspect), "want aspect > 0")
	}

	f := 1 / math.Tan(degToRad(fovYDeg)/2)
	nf := near - far
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / nf, 2 * far * near / nf},
		{0, 0, -1, 0},
	}, nil
}
