package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-starmap/internal/canvas"
	"github.com/litescript/ls-starmap/internal/view"
)

// MiniSkyConfig sizes the ASCII sky.
type MiniSkyConfig struct {
	Width  int
	Height int
}

// DefaultMiniSkyConfig returns a sky that fits an 80×24 terminal with its
// border and footer.
func DefaultMiniSkyConfig() MiniSkyConfig {
	return MiniSkyConfig{Width: 78, Height: 20}
}

// Viewport returns the frame viewport matching the mini sky cells.
func (c MiniSkyConfig) Viewport() view.Viewport {
	return view.Viewport{Width: float64(c.Width), Height: float64(c.Height), Aspect: 2}
}

// WriteMiniSky draws f, which must have been rendered for cfg.Viewport(),
// inside a frame of box-drawing characters.
func WriteMiniSky(w io.Writer, f view.Frame, cfg MiniSkyConfig) {
	c := canvas.New(cfg.Width, cfg.Height)
	c.DrawFrame(f)

	fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", cfg.Width))
	for _, line := range strings.Split(c.Plain(), "\n") {
		pad := cfg.Width - len([]rune(line))
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(w, "│%s%s│\n", line, strings.Repeat(" ", pad))
	}
	fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", cfg.Width))
	fmt.Fprintf(w, "%s view, %d stars shown, %d culled, %d lines\n",
		f.Mode, len(f.Stars), f.Culled, len(f.Lines))
}
