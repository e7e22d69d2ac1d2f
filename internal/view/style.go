package view

import "github.com/litescript/ls-starmap/internal/sky"

// styler maps magnitudes to size and opacity. The brightest loaded star
// gets MaxSize and MaxAlpha, the faintest MinSize and MinAlpha.
type styler struct {
	maxV, dv float64
	cfg      Config
}

func newStyler(sk *sky.Sky, cfg Config) styler {
	minV, maxV := sk.MagRange()
	dv := maxV - minV
	if dv <= 0 {
		dv = 1
	}
	return styler{maxV: maxV, dv: dv, cfg: cfg}
}

// brightness returns (maxV - v) / (maxV - minV), clamped to [0, 1].
func (s styler) brightness(vmag float64) float64 {
	b := (s.maxV - vmag) / s.dv
	switch {
	case b < 0:
		return 0
	case b > 1:
		return 1
	}
	return b
}

func (s styler) size(b float64) float64 {
	return s.cfg.MinSize + b*(s.cfg.MaxSize-s.cfg.MinSize)
}

func (s styler) alpha(b float64) float64 {
	return s.cfg.MinAlpha + b*(s.cfg.MaxAlpha-s.cfg.MinAlpha)
}
