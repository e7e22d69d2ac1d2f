// Package transform provides homogeneous-coordinate matrices, the elementary
// transforms built on them, and composition of ordered operation lists.
//
// Conventions: points are column vectors, matrices are row-major, and a
// composite is accumulated by pre-multiplication, so for a list [A, B] the
// composite is B×A and A is applied to a point first.
package transform

import "math"

// Vec3 is a homogeneous 2D point [x y w].
type Vec3 [3]float64

// Vec4 is a homogeneous 3D point [x y z w].
type Vec4 [4]float64

// Mat3 is a 3×3 homogeneous matrix for 2D work.
type Mat3 [3][3]float64

// Mat4 is a 4×4 homogeneous matrix for 3D work.
type Mat4 [4][4]float64

// Point2 returns the homogeneous vector [x y 1].
func Point2(x, y float64) Vec3 {
	return Vec3{x, y, 1}
}

// Point3 returns the homogeneous vector [x y z 1].
func Point3(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// XY returns the Cartesian components, dividing by w when w is neither 0 nor 1.
func (v Vec3) XY() (float64, float64) {
	if v[2] == 0 || v[2] == 1 {
		return v[0], v[1]
	}
	return v[0] / v[2], v[1] / v[2]
}

// PerspectiveDivide maps a clip-space vector to normalized device coordinates.
// ok is false when w is not strictly positive (the point is behind the eye).
func (v Vec4) PerspectiveDivide() (x, y, z float64, ok bool) {
	w := v[3]
	if w <= 0 {
		return 0, 0, 0, false
	}
	return v[0] / w, v[1] / w, v[2] / w, true
}

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Identity4 returns the 4×4 identity.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns a×b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulVec returns a×v.
func (a Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		a[0][0]*v[0] + a[0][1]*v[1] + a[0][2]*v[2],
		a[1][0]*v[0] + a[1][1]*v[1] + a[1][2]*v[2],
		a[2][0]*v[0] + a[2][1]*v[1] + a[2][2]*v[2],
	}
}

// Transpose returns the transpose of a.
func (a Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = a[j][i]
		}
	}
	return r
}

// ApproxEqual reports whether every element of a and b differs by at most tol.
func (a Mat3) ApproxEqual(b Mat3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// Mul returns a×b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[i][k] * b[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulVec returns a×v.
func (a Mat4) MulVec(v Vec4) Vec4 {
	var r Vec4
	for i := 0; i < 4; i++ {
		r[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2] + a[i][3]*v[3]
	}
	return r
}

// Transpose returns the transpose of a.
func (a Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = a[j][i]
		}
	}
	return r
}

// ApproxEqual reports whether every element of a and b differs by at most tol.
func (a Mat4) ApproxEqual(b Mat4, tol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
