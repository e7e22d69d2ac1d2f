// Package astro projects catalog positions on the celestial sphere onto
// planar and spatial Cartesian coordinates.
package astro

import "math"

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeRA wraps an angle to [0, 360).
func NormalizeRA(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// clampUnit keeps an inverse-cosine argument inside [-1, 1].
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// greatCircleCos returns the cosine of the angle between two sky positions,
// clamped to [-1, 1]. All inputs are radians.
func greatCircleCos(ra1, dec1, ra2, dec2 float64) float64 {
	return clampUnit(math.Sin(dec1)*math.Sin(dec2) + math.Cos(dec1)*math.Cos(dec2)*math.Cos(ra1-ra2))
}

// AngularSeparation returns the great-circle angle between two sky
// positions using the spherical law of cosines. Inputs and result are in
// degrees.
func AngularSeparation(ra1, dec1, ra2, dec2 float64) float64 {
	cosC := greatCircleCos(degToRad(ra1), degToRad(dec1), degToRad(ra2), degToRad(dec2))
	return radToDeg(math.Acos(cosC))
}

// SphericalToCartesian places (ra, dec) at distance dist from the origin:
//
//	x = d·cos(dec)·cos(ra), y = d·cos(dec)·sin(ra), z = d·sin(dec)
//
// A non-positive dist means the star's distance is unknown and the unit
// sphere is used.
func SphericalToCartesian(raDeg, decDeg, dist float64) (x, y, z float64) {
	if dist <= 0 {
		dist = 1
	}
	ra, dec := degToRad(raDeg), degToRad(decDeg)
	x = dist * math.Cos(dec) * math.Cos(ra)
	y = dist * math.Cos(dec) * math.Sin(ra)
	z = dist * math.Sin(dec)
	return x, y, z
}
