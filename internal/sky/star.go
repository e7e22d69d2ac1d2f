// Package sky holds the renderable entities: stars with immutable base
// positions and constellations bound to them by catalog key.
package sky

import (
	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/catalog"
	"github.com/litescript/ls-starmap/internal/transform"
)

// Star is a catalog record with its projected base positions. Planar and
// Spatial are fixed at construction. Current2D and Current3D are
// recomputed from them on every frame.
type Star struct {
	catalog.StarRecord

	Planar  transform.Vec3 // [x y 1] from the planar projection
	Spatial transform.Vec4 // [x y z 1] on the celestial sphere

	Current2D transform.Vec3
	Current3D transform.Vec4
}

// NewStar projects rec with p.
func NewStar(rec catalog.StarRecord, p astro.Projector) *Star {
	s := &Star{
		StarRecord: rec,
		Planar:     p.Planar(rec),
		Spatial:    p.Spatial(rec),
	}
	s.Current2D = s.Planar
	s.Current3D = s.Spatial
	return s
}

// Apply2D sets Current2D to m × Planar.
func (s *Star) Apply2D(m transform.Mat3) {
	s.Current2D = m.MulVec(s.Planar)
}

// Apply3D sets Current3D to m × Spatial.
func (s *Star) Apply3D(m transform.Mat4) {
	s.Current3D = m.MulVec(s.Spatial)
}

// Label is the text drawn next to the star: its name when known, else its
// catalog number.
func (s *Star) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return hrLabel(s.HR)
}
