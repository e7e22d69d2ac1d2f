package astro

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/litescript/ls-starmap/internal/catalog"
	"github.com/litescript/ls-starmap/internal/transform"
)

// ProjectionKind selects the planar projection.
type ProjectionKind int

const (
	Stereographic ProjectionKind = iota
	Equirectangular
)

func (k ProjectionKind) String() string {
	switch k {
	case Stereographic:
		return "stereographic"
	case Equirectangular:
		return "equirectangular"
	default:
		return "unknown"
	}
}

// ParseProjectionKind parses a projection name.
func ParseProjectionKind(s string) (ProjectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stereographic", "stereo":
		return Stereographic, nil
	case "equirectangular", "equirect":
		return Equirectangular, nil
	default:
		return 0, &transform.ArgumentError{Op: "projection", Value: s, Reason: "want stereographic or equirectangular"}
	}
}

// ProjectionCenter returns the mean RA and Dec of records, in degrees.
// An empty catalog is centred on (0, 0).
func ProjectionCenter(records []catalog.StarRecord) (ra0, dec0 float64) {
	if len(records) == 0 {
		return 0, 0
	}
	ras := make([]float64, len(records))
	decs := make([]float64, len(records))
	for i, r := range records {
		ras[i] = r.RAdeg
		decs[i] = r.DecDeg
	}
	return stat.Mean(ras, nil), stat.Mean(decs, nil)
}

// ProjectEquirectangular maps (ra, dec) to planar degrees around the centre:
// x = (ra-ra0)·cos(dec0), y = dec-dec0.
func ProjectEquirectangular(ra, dec, ra0, dec0 float64) (x, y float64) {
	return (ra - ra0) * math.Cos(degToRad(dec0)), dec - dec0
}

// ProjectStereographic maps (ra, dec) onto the plane tangent at (ra0, dec0).
// The centre maps to the origin. The antipode of the centre is singular and
// yields very large or non-finite values that callers cull.
func ProjectStereographic(ra, dec, ra0, dec0 float64) (x, y float64) {
	ra, dec = degToRad(ra), degToRad(dec)
	ra0, dec0 = degToRad(ra0), degToRad(dec0)

	cosC := greatCircleCos(ra, dec, ra0, dec0)
	if math.Acos(cosC) == 0 {
		return 0, 0
	}

	k := 2 / (1 + cosC)
	dRA := ra - ra0
	x = k * math.Cos(dec) * math.Sin(dRA)
	y = k * (math.Cos(dec0)*math.Sin(dec) - math.Sin(dec0)*math.Cos(dec)*math.Cos(dRA))
	return x, y
}

// Declutter spreads crowded points near the projection centre. A point at
// radius r < RMax moves outward along its own direction by the factor
// 1 + Strength·(1 - r/RMax). Points at or beyond RMax are unchanged.
type Declutter struct {
	RMax     float64
	Strength float64
}

// Enabled reports whether Apply changes anything.
func (d Declutter) Enabled() bool {
	return d.RMax > 0 && d.Strength != 0
}

// Apply returns the decluttered position of (x, y).
func (d Declutter) Apply(x, y float64) (float64, float64) {
	if !d.Enabled() {
		return x, y
	}
	r := math.Hypot(x, y)
	if r == 0 || r >= d.RMax {
		return x, y
	}
	f := 1 + d.Strength*(1-r/d.RMax)
	return x * f, y * f
}

// Projector turns catalog records into the homogeneous base positions of
// the planar and spatial views.
type Projector struct {
	Kind      ProjectionKind
	RA0       float64 // centre RA in degrees
	Dec0      float64 // centre Dec in degrees
	Declutter Declutter

	// UseDistance places stars at their catalog distance in the spatial
	// view, divided by MaxDistPc so that the farthest star lands on the unit
	// sphere. Otherwise every star sits on the unit sphere.
	UseDistance bool
	MaxDistPc   float64
}

// NewProjector creates a projector centred on the mean position of records.
func NewProjector(kind ProjectionKind, records []catalog.StarRecord) Projector {
	ra0, dec0 := ProjectionCenter(records)
	return Projector{Kind: kind, RA0: ra0, Dec0: dec0, MaxDistPc: MaxDistance(records)}
}

// MaxDistance returns the largest catalog distance of records in parsecs,
// or 0 when no record has one.
func MaxDistance(records []catalog.StarRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	d := make([]float64, len(records))
	for i, r := range records {
		d[i] = r.DistPc
	}
	return math.Max(floats.Max(d), 0)
}

// UnitScale converts Planar output to stereographic units. Equirectangular
// output is in degrees and scales to radians, which matches the
// stereographic radius near the centre.
func (p Projector) UnitScale() float64 {
	if p.Kind == Equirectangular {
		return math.Pi / 180
	}
	return 1
}

// Planar returns the planar position [x y 1].
func (p Projector) Planar(rec catalog.StarRecord) transform.Vec3 {
	var x, y float64
	switch p.Kind {
	case Equirectangular:
		x, y = ProjectEquirectangular(rec.RAdeg, rec.DecDeg, p.RA0, p.Dec0)
	default:
		x, y = ProjectStereographic(rec.RAdeg, rec.DecDeg, p.RA0, p.Dec0)
		x, y = p.Declutter.Apply(x, y)
	}
	return transform.Point2(x, y)
}

// Spatial returns the Cartesian position [x y z 1].
func (p Projector) Spatial(rec catalog.StarRecord) transform.Vec4 {
	dist := 1.0
	if p.UseDistance && rec.DistPc > 0 {
		dist = rec.DistPc / math.Max(p.MaxDistPc, rec.DistPc)
	}
	return transform.Point3(SphericalToCartesian(rec.RAdeg, rec.DecDeg, dist))
}

// String describes the projector for logs and reports.
func (p Projector) String() string {
	s := fmt.Sprintf("%s centred on RA %.3f° Dec %+.3f°", p.Kind, p.RA0, p.Dec0)
	if p.Kind == Stereographic && p.Declutter.Enabled() {
		s += fmt.Sprintf(" (declutter r<%.2f x%.2f)", p.Declutter.RMax, p.Declutter.Strength)
	}
	return s
}
