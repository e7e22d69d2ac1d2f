package astro

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/litescript/ls-starmap/internal/catalog"
	"github.com/litescript/ls-starmap/internal/transform"
)

const tol = 1e-9

func TestProjectionCenter(t *testing.T) {
	ra0, dec0 := ProjectionCenter(nil)
	assert.Zero(t, ra0)
	assert.Zero(t, dec0)

	ra0, dec0 = ProjectionCenter([]catalog.StarRecord{
		{HR: 1, RAdeg: 10, DecDeg: -20},
		{HR: 2, RAdeg: 30, DecDeg: 40},
		{HR: 3, RAdeg: 50, DecDeg: 10},
	})
	assert.True(t, scalar.EqualWithinAbs(ra0, 30, tol), "ra0 = %v", ra0)
	assert.True(t, scalar.EqualWithinAbs(dec0, 10, tol), "dec0 = %v", dec0)
}

func TestEquirectangular_TwoStarsAtCentre(t *testing.T) {
	records := []catalog.StarRecord{
		{HR: 1, RAdeg: 10, DecDeg: 0},
		{HR: 2, RAdeg: 10, DecDeg: 0},
	}
	p := NewProjector(Equirectangular, records)
	require.Equal(t, 10.0, p.RA0)
	require.Equal(t, 0.0, p.Dec0)

	for _, r := range records {
		assert.Equal(t, transform.Vec3{0, 0, 1}, p.Planar(r), "HR %d", r.HR)
	}
}

func TestProjectEquirectangular(t *testing.T) {
	x, y := ProjectEquirectangular(40, 70, 10, 60)
	assert.True(t, scalar.EqualWithinAbs(x, 30*0.5, tol), "x = %v", x)
	assert.True(t, scalar.EqualWithinAbs(y, 10, tol), "y = %v", y)
}

func TestProjectStereographic_CentreIsOrigin(t *testing.T) {
	centres := [][2]float64{{0, 0}, {83.8, -5.4}, {279.2, 38.8}, {200, -89.9}, {12, 89.9}}
	for _, c := range centres {
		x, y := ProjectStereographic(c[0], c[1], c[0], c[1])
		assert.Equal(t, 0.0, x, "centre %v", c)
		assert.Equal(t, 0.0, y, "centre %v", c)
	}
}

func TestProjectStereographic_RadiusMatchesSeparation(t *testing.T) {
	// On the tangent plane r = 2·tan(c/2), c the angular distance.
	ra0, dec0 := 83.8, -5.4
	for _, p := range [][2]float64{{88.8, 7.4}, {78.6, -8.2}, {101.3, -16.7}, {60, 30}} {
		x, y := ProjectStereographic(p[0], p[1], ra0, dec0)
		c := degToRad(AngularSeparation(p[0], p[1], ra0, dec0))
		assert.True(t, scalar.EqualWithinAbs(math.Hypot(x, y), 2*math.Tan(c/2), 1e-9), "point %v", p)
	}
}

func TestProjectStereographic_Orientation(t *testing.T) {
	// North of the centre is +y, larger RA is +x.
	_, y := ProjectStereographic(0, 10, 0, 0)
	assert.Greater(t, y, 0.0)
	x, _ := ProjectStereographic(10, 0, 0, 0)
	assert.Greater(t, x, 0.0)
}

func TestDeclutter(t *testing.T) {
	d := Declutter{RMax: 2, Strength: 1}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"origin unchanged", 0, 0, 0, 0},
		{"half radius", 1, 0, 1.5, 0},
		{"quarter radius", 0, -0.5, 0, -0.5 * 1.75},
		{"at rmax", 2, 0, 2, 0},
		{"beyond rmax", 3, 4, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := d.Apply(tt.x, tt.y)
			assert.True(t, scalar.EqualWithinAbs(x, tt.wantX, tol), "x = %v", x)
			assert.True(t, scalar.EqualWithinAbs(y, tt.wantY, tol), "y = %v", y)
		})
	}
}

func TestDeclutter_PreservesDirection(t *testing.T) {
	d := Declutter{RMax: 1, Strength: 3}
	for _, p := range [][2]float64{{0.1, 0.2}, {-0.3, 0.05}, {0.4, -0.4}} {
		x, y := d.Apply(p[0], p[1])
		assert.True(t, scalar.EqualWithinAbs(math.Atan2(y, x), math.Atan2(p[1], p[0]), tol))
		assert.Greater(t, math.Hypot(x, y), math.Hypot(p[0], p[1]))
	}
}

func TestDeclutter_Disabled(t *testing.T) {
	for _, d := range []Declutter{{}, {RMax: 1}, {Strength: 2}} {
		x, y := d.Apply(0.1, 0.2)
		assert.Equal(t, 0.1, x)
		assert.Equal(t, 0.2, y)
	}
}

func TestProjector_Planar(t *testing.T) {
	rec := catalog.StarRecord{HR: 7, RAdeg: 20, DecDeg: 5}
	p := Projector{Kind: Stereographic, RA0: 10, Dec0: 0}

	v := p.Planar(rec)
	x, y := ProjectStereographic(20, 5, 10, 0)
	assert.Equal(t, transform.Vec3{x, y, 1}, v)

	p.Declutter = Declutter{RMax: 10, Strength: 1}
	dx, dy := p.Declutter.Apply(x, y)
	assert.Equal(t, transform.Vec3{dx, dy, 1}, p.Planar(rec))

	// Declutter only applies to the stereographic view.
	p.Kind = Equirectangular
	ex, ey := ProjectEquirectangular(20, 5, 10, 0)
	assert.Equal(t, transform.Vec3{ex, ey, 1}, p.Planar(rec))
}

func TestProjector_Spatial(t *testing.T) {
	rec := catalog.StarRecord{HR: 1, RAdeg: 0, DecDeg: 0, DistPc: 8}

	v := Projector{}.Spatial(rec)
	assert.Equal(t, transform.Vec4{1, 0, 0, 1}, v)

	v = Projector{UseDistance: true, MaxDistPc: 32}.Spatial(rec)
	assert.Equal(t, transform.Vec4{0.25, 0, 0, 1}, v)

	// Without a known extent the star stays inside the unit sphere.
	v = Projector{UseDistance: true}.Spatial(rec)
	assert.Equal(t, transform.Vec4{1, 0, 0, 1}, v)

	rec.DistPc = 0
	v = Projector{UseDistance: true, MaxDistPc: 32}.Spatial(rec)
	assert.Equal(t, transform.Vec4{1, 0, 0, 1}, v)
}

func TestProjector_DistanceFitsUnitSphere(t *testing.T) {
	records := []catalog.StarRecord{
		{HR: 1, RAdeg: 0, DecDeg: 0, DistPc: 2.6},
		{HR: 2, RAdeg: 90, DecDeg: 10, DistPc: 250},
		{HR: 3, RAdeg: 180, DecDeg: -20},
	}
	p := NewProjector(Stereographic, records)
	p.UseDistance = true
	assert.Equal(t, 250.0, p.MaxDistPc)

	for _, rec := range records {
		v := p.Spatial(rec)
		r := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
		assert.LessOrEqual(t, r, 1+tol, "HR %d", rec.HR)
	}
	v := p.Spatial(records[0])
	assert.True(t, scalar.EqualWithinAbs(v[0], 2.6/250, tol), "x = %v", v[0])

	assert.Zero(t, MaxDistance(nil))
	assert.Zero(t, MaxDistance([]catalog.StarRecord{{HR: 1}}))
}

func TestProjector_UnitScale(t *testing.T) {
	// One degree from the centre is about the same distance in both
	// projections once scaled.
	rec := catalog.StarRecord{HR: 1, RAdeg: 11, DecDeg: 0}
	stereo := Projector{Kind: Stereographic, RA0: 10}
	equi := Projector{Kind: Equirectangular, RA0: 10}

	sx := stereo.Planar(rec)[0] * stereo.UnitScale()
	ex := equi.Planar(rec)[0] * equi.UnitScale()
	assert.InEpsilon(t, sx, ex, 1e-4)
	assert.Equal(t, 1.0, stereo.UnitScale())
}

func TestParseProjectionKind(t *testing.T) {
	tests := []struct {
		in   string
		want ProjectionKind
	}{
		{"stereographic", Stereographic},
		{"stereo", Stereographic},
		{"Equirectangular", Equirectangular},
		{" equirect ", Equirectangular},
	}
	for _, tt := range tests {
		got, err := ParseProjectionKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseProjectionKind("mercator")
	require.Error(t, err)
	assert.True(t, errors.Is(err, transform.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "mercator")
}

func TestProjector_String(t *testing.T) {
	p := Projector{Kind: Stereographic, RA0: 83.8, Dec0: -5.4, Declutter: Declutter{RMax: 0.5, Strength: 2}}
	assert.Contains(t, p.String(), "stereographic")
	assert.Contains(t, p.String(), "declutter")
	p.Kind = Equirectangular
	assert.NotContains(t, p.String(), "declutter")
}
