package view

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/catalog"
	"github.com/litescript/ls-starmap/internal/sky"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/transform"
)

const tol = 1e-9

var vp = Viewport{Width: 200, Height: 100, Aspect: 1}

// testSky centres an equirectangular projection on (RA 10, Dec 0) so that
// planar coordinates are plain degree offsets from the centre.
func testSky(recs []catalog.StarRecord, defs []catalog.ConstellationDef, opts ...sky.Option) *sky.Sky {
	p := astro.Projector{Kind: astro.Equirectangular, RA0: 10, Dec0: 0}
	return sky.NewSky(recs, defs, p, opts...)
}

// degreeConfig draws one degree of the equirectangular test sky as 50
// pixels.
func degreeConfig() Config {
	cfg := DefaultConfig()
	cfg.PixelsPerUnit = 50 * 180 / math.Pi
	return cfg
}

func findStar(t *testing.T, f Frame, hr int) ScreenStar {
	t.Helper()
	for _, s := range f.Stars {
		if s.HR == hr {
			return s
		}
	}
	t.Fatalf("HR %d not in frame", hr)
	return ScreenStar{}
}

func TestRender2D_CentreAndOffsets(t *testing.T) {
	sk := testSky([]catalog.StarRecord{
		{HR: 1, RAdeg: 10, DecDeg: 0, Vmag: 1},
		{HR: 2, RAdeg: 11, DecDeg: 0.5, Vmag: 2},
	}, nil)
	s := state.NewInteraction(state.View2D)

	f, err := NewPipeline(degreeConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	require.Len(t, f.Stars, 2)

	c := findStar(t, f, 1)
	assert.True(t, scalar.EqualWithinAbs(c.X, 100, tol), "x = %v", c.X)
	assert.True(t, scalar.EqualWithinAbs(c.Y, 50, tol), "y = %v", c.Y)

	// Larger RA is drawn to the left, larger Dec upward.
	o := findStar(t, f, 2)
	assert.True(t, scalar.EqualWithinAbs(o.X, 100-50, tol), "x = %v", o.X)
	assert.True(t, scalar.EqualWithinAbs(o.Y, 50-25, tol), "y = %v", o.Y)
}

func TestRender2D_TransformsApplyInOrder(t *testing.T) {
	sk := testSky([]catalog.StarRecord{{HR: 1, RAdeg: 10, DecDeg: 0}}, nil)
	s := state.NewInteraction(state.View2D)
	s.TX = 0.5 * math.Pi / 180
	s.Scale = 2

	f, err := NewPipeline(degreeConfig()).Render(sk, &s, vp)
	require.NoError(t, err)

	// Translation happens before scale, so it is scaled too.
	st := findStar(t, f, 1)
	assert.True(t, scalar.EqualWithinAbs(st.X, 100-0.5*2*50, tol), "x = %v", st.X)
}

func TestRender2D_TerminalAspect(t *testing.T) {
	sk := testSky([]catalog.StarRecord{{HR: 1, RAdeg: 10, DecDeg: 0.5}}, nil)
	s := state.NewInteraction(state.View2D)

	f, err := NewPipeline(degreeConfig()).Render(sk, &s, Viewport{Width: 200, Height: 100, Aspect: 2})
	require.NoError(t, err)
	st := findStar(t, f, 1)
	assert.True(t, scalar.EqualWithinAbs(st.Y, 50-12.5, tol), "y = %v", st.Y)
}

func TestRender_OffscreenCulled(t *testing.T) {
	sk := testSky([]catalog.StarRecord{
		{HR: 1, RAdeg: 10, DecDeg: 0},
		{HR: 2, RAdeg: 40, DecDeg: 0},
	}, nil)
	s := state.NewInteraction(state.View2D)

	f, err := NewPipeline(degreeConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	assert.Len(t, f.Stars, 1)
	assert.Equal(t, 1, f.Culled)
}

func TestRender_CutoffFilter(t *testing.T) {
	sk := testSky([]catalog.StarRecord{
		{HR: 1, RAdeg: 10, DecDeg: 0},
		{HR: 2, RAdeg: 10.5, DecDeg: 0},
	}, nil, sky.WithFilter(&sky.Filter{RA0: 10, MaxSepDeg: 0.25}))
	s := state.NewInteraction(state.View2D)

	f, err := NewPipeline(degreeConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	require.Len(t, f.Stars, 1)
	assert.Equal(t, 1, f.Stars[0].HR)
}

func TestRender_Styling(t *testing.T) {
	sk := testSky([]catalog.StarRecord{
		{HR: 1, RAdeg: 10, DecDeg: 0, Vmag: -1},
		{HR: 2, RAdeg: 10.2, DecDeg: 0, Vmag: 1},
		{HR: 3, RAdeg: 10.4, DecDeg: 0, Vmag: 3},
	}, nil)
	s := state.NewInteraction(state.View2D)
	cfg := degreeConfig()

	f, err := NewPipeline(cfg).Render(sk, &s, vp)
	require.NoError(t, err)

	bright, mid, faint := findStar(t, f, 1), findStar(t, f, 2), findStar(t, f, 3)
	assert.Equal(t, 1.0, bright.Brightness)
	assert.InDelta(t, cfg.MaxSize, bright.Size, tol)
	assert.Equal(t, cfg.MaxAlpha, bright.Alpha)
	assert.Equal(t, 0.5, mid.Brightness)
	assert.Equal(t, 0.0, faint.Brightness)
	assert.Equal(t, cfg.MinSize, faint.Size)
	assert.Equal(t, cfg.MinAlpha, faint.Alpha)
}

func TestRender_SingleMagnitude(t *testing.T) {
	sk := testSky([]catalog.StarRecord{{HR: 1, RAdeg: 10, Vmag: 2}, {HR: 2, RAdeg: 10.1, Vmag: 2}}, nil)
	s := state.NewInteraction(state.View2D)
	f, err := NewPipeline(degreeConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	for _, st := range f.Stars {
		assert.False(t, math.IsNaN(st.Brightness))
	}
}

func TestRender_ConstellationLinesAndLabels(t *testing.T) {
	recs := []catalog.StarRecord{
		{HR: 1, RAdeg: 10, DecDeg: 0},
		{HR: 2, RAdeg: 10.4, DecDeg: 0},
		{HR: 3, RAdeg: 10.4, DecDeg: 0.4},
	}
	defs := []catalog.ConstellationDef{
		{Name: "Tri", Keys: []int{1, 2, 3}},
		{Name: "Ori", Keys: []int{1, 2, 99}},
	}
	sk := testSky(recs, defs)
	s := state.NewInteraction(state.View2D)
	p := NewPipeline(degreeConfig())

	f, err := p.Render(sk, &s, vp)
	require.NoError(t, err)
	require.Len(t, f.Lines, 2)
	assert.Equal(t, Segment{Constellation: "Tri", X1: 100, Y1: 50, X2: 80, Y2: 50}, roundSeg(f.Lines[0]))
	assert.Empty(t, f.Labels, "labels are off by default")

	s.ShowLabels = true
	f, err = p.Render(sk, &s, vp)
	require.NoError(t, err)
	require.Len(t, f.Labels, 4)
	assert.Equal(t, "1", f.Labels[0].Text)
	assert.Equal(t, StarLabel, f.Labels[0].Kind)
	assert.True(t, scalar.EqualWithinAbs(f.Labels[0].X, 104, tol))
	assert.True(t, scalar.EqualWithinAbs(f.Labels[0].Y, 46, tol))

	name := f.Labels[3]
	assert.Equal(t, "Tri", name.Text)
	assert.Equal(t, ConstellationLabel, name.Kind)
	assert.True(t, scalar.EqualWithinAbs(name.X, (100+80+80)/3.0, 1e-6), "x = %v", name.X)
	assert.True(t, scalar.EqualWithinAbs(name.Y, (50+50+30)/3.0, 1e-6), "y = %v", name.Y)

	s.ShowConstellations = false
	f, err = p.Render(sk, &s, vp)
	require.NoError(t, err)
	assert.Empty(t, f.Lines)
	assert.Len(t, f.Labels, 4)
}

func roundSeg(s Segment) Segment {
	r := func(v float64) float64 { return math.Round(v*1e6) / 1e6 }
	return Segment{Constellation: s.Constellation, X1: r(s.X1), Y1: r(s.Y1), X2: r(s.X2), Y2: r(s.Y2)}
}

func TestRender_Stateless(t *testing.T) {
	sk := testSky(catalog.BuiltinStars(), catalog.BuiltinConstellations())
	s := state.NewInteraction(state.View2D)
	s.AngleDeg, s.Scale, s.ShearX = 25, 0.02, 0.1
	s.ShowLabels = true
	p := NewPipeline(DefaultConfig())

	first, err := p.Render(sk, &s, vp)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := p.Render(sk, &s, vp)
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("frame %d differs (-first +again):\n%s", i, diff)
		}
	}
}

func TestRender3D_ProjectsThroughCamera(t *testing.T) {
	sk := testSky([]catalog.StarRecord{
		{HR: 1, RAdeg: 0, DecDeg: 90},
		{HR: 2, RAdeg: 0, DecDeg: 0},
	}, nil)
	s := state.NewInteraction(state.View3D)
	cfg := DefaultConfig()

	f, err := NewPipeline(cfg).Render(sk, &s, vp)
	require.NoError(t, err)
	require.Len(t, f.Stars, 2)

	pole := findStar(t, f, 1)
	assert.True(t, scalar.EqualWithinAbs(pole.X, 100, 1e-6), "x = %v", pole.X)
	assert.True(t, scalar.EqualWithinAbs(pole.Y, 50, 1e-6), "y = %v", pole.Y)

	// (1, 0, 0) sits 3 units in front of the camera.
	f1 := 1 / math.Tan(cfg.FovYDeg/2*math.Pi/180)
	ndcX := f1 / (vp.Width / vp.Height) / cfg.CameraDistance
	eq := findStar(t, f, 2)
	assert.True(t, scalar.EqualWithinAbs(eq.X, (ndcX+1)/2*vp.Width, 1e-6), "x = %v", eq.X)
	assert.True(t, scalar.EqualWithinAbs(eq.Y, 50, 1e-6), "y = %v", eq.Y)
	assert.Greater(t, eq.Depth, pole.Depth, "pole is nearer the camera")
}

func TestRender3D_BehindCameraCulled(t *testing.T) {
	sk := testSky([]catalog.StarRecord{{HR: 1, RAdeg: 0, DecDeg: 90}}, nil)
	s := state.NewInteraction(state.View3D)
	s.TZ = 5

	f, err := NewPipeline(DefaultConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	assert.Empty(t, f.Stars)
	assert.Equal(t, 1, f.Culled)
}

func TestRender3D_SegmentNeedsBothEnds(t *testing.T) {
	recs := []catalog.StarRecord{
		{HR: 1, RAdeg: 0, DecDeg: 90},
		{HR: 2, RAdeg: 0, DecDeg: 80},
		{HR: 3, RAdeg: 0, DecDeg: -90},
	}
	defs := []catalog.ConstellationDef{{Name: "Line", Keys: []int{1, 2, 3}}}
	sk := testSky(recs, defs)
	s := state.NewInteraction(state.View3D)
	s.TZ = 2.5 // the two northern stars end up behind the camera

	f, err := NewPipeline(DefaultConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	require.Len(t, f.Stars, 1)
	assert.Equal(t, 3, f.Stars[0].HR)
	assert.Empty(t, f.Lines)

	s.TZ = 0
	f, err = NewPipeline(DefaultConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	assert.Len(t, f.Lines, 2)
}

func TestRenderOps_InvalidOperation(t *testing.T) {
	sk := testSky([]catalog.StarRecord{{HR: 1, RAdeg: 10}}, nil)
	s := state.NewInteraction(state.View2D)

	_, err := NewPipeline(DefaultConfig()).RenderOps(sk, &s, []transform.Operation{transform.RotateXOp{Deg: 10}}, vp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, transform.ErrInvalidArgument))
}

func TestRender3D_InvalidPerspective(t *testing.T) {
	sk := testSky([]catalog.StarRecord{{HR: 1, RAdeg: 10}}, nil)
	s := state.NewInteraction(state.View3D)
	cfg := DefaultConfig()
	cfg.Near, cfg.Far = 1, 0

	_, err := NewPipeline(cfg).Render(sk, &s, vp)
	assert.ErrorIs(t, err, transform.ErrInvalidArgument)
}

func TestRender2D_DefaultFrameNotEmpty(t *testing.T) {
	recs := catalog.BuiltinStars()
	cells := Viewport{Width: 100, Height: 30, Aspect: 2}
	cfg := DefaultConfig()
	cfg.PixelsPerUnit = 20

	visible := make(map[astro.ProjectionKind]int)
	for _, kind := range []astro.ProjectionKind{astro.Stereographic, astro.Equirectangular} {
		sk := sky.NewSky(recs, catalog.BuiltinConstellations(), astro.NewProjector(kind, recs))
		s := state.NewInteraction(state.View2D)

		f, err := NewPipeline(cfg).Render(sk, &s, cells)
		require.NoError(t, err, kind.String())
		assert.NotEmpty(t, f.Stars, kind.String())
		assert.NotEmpty(t, f.Lines, kind.String())
		visible[kind] = len(f.Stars)
	}
	// Both projections show a comparable part of the sky.
	assert.Greater(t, visible[astro.Equirectangular], visible[astro.Stereographic]/2)
}

func TestRender3D_CatalogDistanceVisible(t *testing.T) {
	recs := []catalog.StarRecord{
		{HR: 1, RAdeg: 0, DecDeg: 0, DistPc: 2.6},
		{HR: 2, RAdeg: 90, DecDeg: 0, DistPc: 25},
		{HR: 3, RAdeg: 90, DecDeg: 0, DistPc: 250},
		{HR: 4, RAdeg: 180, DecDeg: 45, DistPc: 120},
		{HR: 5, RAdeg: 270, DecDeg: -30},
	}
	p := astro.NewProjector(astro.Stereographic, recs)
	p.UseDistance = true
	sk := sky.NewSky(recs, nil, p)
	s := state.NewInteraction(state.View3D)

	f, err := NewPipeline(DefaultConfig()).Render(sk, &s, vp)
	require.NoError(t, err)
	assert.Len(t, f.Stars, len(recs))
	assert.Zero(t, f.Culled)

	// Same direction, the nearer star sits closer to the screen centre.
	near, far := findStar(t, f, 2), findStar(t, f, 3)
	assert.Less(t, math.Abs(near.Y-vp.Height/2), math.Abs(far.Y-vp.Height/2))
}
