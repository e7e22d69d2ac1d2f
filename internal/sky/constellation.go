package sky

import (
	"strconv"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/catalog"
)

// Filter limits binding to stars within MaxSepDeg of a sky position.
type Filter struct {
	RA0, Dec0 float64
	MaxSepDeg float64
}

// Admits reports whether s lies within the cutoff. A nil filter admits
// everything.
func (f *Filter) Admits(s *Star) bool {
	if f == nil {
		return true
	}
	return astro.AngularSeparation(s.RAdeg, s.DecDeg, f.RA0, f.Dec0) <= f.MaxSepDeg
}

// Constellation is a named polyline over catalog keys. Its bound star list
// is either as long as Keys or empty, never partial.
type Constellation struct {
	Name string
	Keys []int

	stars []*Star
}

// NewConstellation creates an unbound constellation from def.
func NewConstellation(def catalog.ConstellationDef) *Constellation {
	return &Constellation{
		Name: def.Name,
		Keys: append([]int(nil), def.Keys...),
	}
}

// Bind resolves every key through lookup, dropping stars the filter does
// not admit. If any key fails to resolve the bound list is cleared. It
// reports whether the constellation is drawable.
func (c *Constellation) Bind(lookup map[int]*Star, filter *Filter) bool {
	bound := make([]*Star, 0, len(c.Keys))
	for _, k := range c.Keys {
		s, ok := lookup[k]
		if !ok || !filter.Admits(s) {
			continue
		}
		bound = append(bound, s)
	}
	if len(bound) != len(c.Keys) {
		bound = nil
	}
	c.stars = bound
	return c.Complete()
}

// Complete reports whether every key is bound.
func (c *Constellation) Complete() bool {
	return len(c.Keys) > 0 && len(c.stars) == len(c.Keys)
}

// Stars returns the bound stars in key order.
func (c *Constellation) Stars() []*Star {
	return c.stars
}

// Segments returns consecutive pairs of bound stars.
func (c *Constellation) Segments() [][2]*Star {
	if len(c.stars) < 2 {
		return nil
	}
	segs := make([][2]*Star, 0, len(c.stars)-1)
	for i := 1; i < len(c.stars); i++ {
		segs = append(segs, [2]*Star{c.stars[i-1], c.stars[i]})
	}
	return segs
}

// Centroid2D returns the mean current planar position of the bound stars,
// where the name label goes.
func (c *Constellation) Centroid2D() (x, y float64, ok bool) {
	if len(c.stars) == 0 {
		return 0, 0, false
	}
	for _, s := range c.stars {
		sx, sy := s.Current2D.XY()
		x += sx
		y += sy
	}
	n := float64(len(c.stars))
	return x / n, y / n, true
}

func hrLabel(hr int) string {
	return "HR " + strconv.Itoa(hr)
}
