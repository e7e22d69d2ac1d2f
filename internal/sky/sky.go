package sky

import (
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/litescript/ls-starmap/internal/astro"
	"github.com/litescript/ls-starmap/internal/catalog"
	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/transform"
)

// minChunk is the smallest per-worker slice worth a goroutine.
const minChunk = 256

// Sky owns every star and constellation of a loaded catalog.
type Sky struct {
	Stars          []*Star
	Constellations []*Constellation
	Projector      astro.Projector

	lookup     map[int]*Star
	filter     *Filter
	workers    int
	duplicates int
	minV, maxV float64
	logger     *logging.Logger
}

// Option configures a Sky.
type Option func(*Sky)

// WithWorkers spreads per-star work over n goroutines. n <= 1 keeps it on
// the calling goroutine.
func WithWorkers(n int) Option {
	return func(s *Sky) {
		s.workers = n
	}
}

// WithFilter applies a separation cutoff to drawing and binding.
func WithFilter(f *Filter) Option {
	return func(s *Sky) {
		s.filter = f
	}
}

// WithLogger sets the logger for duplicate keys and binding results.
func WithLogger(l *logging.Logger) Option {
	return func(s *Sky) {
		s.logger = l
	}
}

// NewSky projects records, builds the key lookup and binds defs. The first
// record wins when a key repeats.
func NewSky(records []catalog.StarRecord, defs []catalog.ConstellationDef, p astro.Projector, opts ...Option) *Sky {
	s := &Sky{
		Projector: p,
		Stars:     make([]*Star, 0, len(records)),
		lookup:    make(map[int]*Star, len(records)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}

	for _, rec := range records {
		if _, dup := s.lookup[rec.HR]; dup {
			s.duplicates++
			s.logger.Debug("duplicate HR %d ignored", rec.HR)
			continue
		}
		star := NewStar(rec, p)
		s.Stars = append(s.Stars, star)
		s.lookup[rec.HR] = star
	}

	if len(s.Stars) > 0 {
		mags := make([]float64, len(s.Stars))
		for i, star := range s.Stars {
			mags[i] = star.Vmag
		}
		s.minV, s.maxV = floats.Min(mags), floats.Max(mags)
	}

	s.Constellations = make([]*Constellation, 0, len(defs))
	for _, d := range defs {
		s.Constellations = append(s.Constellations, NewConstellation(d))
	}
	s.Rebind(s.filter)
	return s
}

// MagRange returns the brightest and faintest magnitudes loaded.
func (s *Sky) MagRange() (minV, maxV float64) {
	return s.minV, s.maxV
}

// Lookup returns the star with catalog key hr.
func (s *Sky) Lookup(hr int) (*Star, bool) {
	star, ok := s.lookup[hr]
	return star, ok
}

// Filter returns the active cutoff, or nil.
func (s *Sky) Filter() *Filter {
	return s.filter
}

// Admits reports whether star passes the active cutoff.
func (s *Sky) Admits(star *Star) bool {
	return s.filter.Admits(star)
}

// Rebind sets the cutoff and rebuilds every constellation binding.
func (s *Sky) Rebind(f *Filter) {
	s.filter = f
	bound := 0
	for _, c := range s.Constellations {
		if c.Bind(s.lookup, f) {
			bound++
		} else if len(c.Keys) > 0 {
			s.logger.Debug("constellation %s not drawable: keys unresolved or outside cutoff", c.Name)
		}
	}
	s.logger.Debug("bound %d of %d constellations", bound, len(s.Constellations))
}

// Complete returns the constellations that are fully bound.
func (s *Sky) Complete() []*Constellation {
	var out []*Constellation
	for _, c := range s.Constellations {
		if c.Complete() {
			out = append(out, c)
		}
	}
	return out
}

// Apply2D recomputes every star's planar position from m.
func (s *Sky) Apply2D(m transform.Mat3) {
	s.each(func(st *Star) { st.Apply2D(m) })
}

// Apply3D recomputes every star's spatial position from m.
func (s *Sky) Apply3D(m transform.Mat4) {
	s.each(func(st *Star) { st.Apply3D(m) })
}

// each runs fn on every star and returns once all calls have finished.
func (s *Sky) each(fn func(*Star)) {
	n := len(s.Stars)
	workers := s.workers
	if limit := n / minChunk; workers > limit {
		workers = limit
	}
	if workers <= 1 {
		for _, st := range s.Stars {
			fn(st)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(part []*Star) {
			defer wg.Done()
			for _, st := range part {
				fn(st)
			}
		}(s.Stars[lo:hi])
	}
	wg.Wait()
}

// Stats summarises a sky for reports.
type Stats struct {
	Stars          int
	Constellations int
	Bound          int
	Duplicates     int
	MinVmag        float64
	MaxVmag        float64
}

// Stats returns counts and the magnitude range of the loaded stars.
func (s *Sky) Stats() Stats {
	return Stats{
		Stars:          len(s.Stars),
		Constellations: len(s.Constellations),
		Bound:          len(s.Complete()),
		Duplicates:     s.duplicates,
		MinVmag:        s.minV,
		MaxVmag:        s.maxV,
	}
}
