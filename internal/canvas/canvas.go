// Package canvas rasterizes frames onto a grid of terminal cells.
package canvas

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/view"
)

const (
	// Star glyphs by brightness
	glyphStarBright  = '✶' // top quarter
	glyphStarMedium  = '✸'
	glyphStarDim     = '•'
	glyphStarVeryDim = '·'

	// Colors
	colorBackground    = "234"
	colorLine          = "60"  // muted purple
	colorStarLabel     = "244" // dim gray
	colorConstellation = "229" // pale gold
)

// Canvas is a width×height grid of runes with a foreground color per cell.
type Canvas struct {
	width  int
	height int
	cells  [][]rune
	colors [][]lipgloss.Color
}

// New creates a blank canvas.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([][]rune, height),
		colors: make([][]lipgloss.Color, height),
	}
	for y := 0; y < height; y++ {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.cells[y][x] = ' '
			c.colors[y][x] = colorBackground
		}
	}
	return c
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// At returns the rune at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) rune {
	if !c.inside(x, y) {
		return 0
	}
	return c.cells[y][x]
}

// Set writes r at (x, y). Cells outside the canvas are ignored.
func (c *Canvas) Set(x, y int, r rune, color lipgloss.Color) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

// Text writes s starting at (x, y), clipped to the canvas.
func (c *Canvas) Text(x, y int, s string, color lipgloss.Color) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, color)
	}
}

// Line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm. Only
// blank cells are written so that stars drawn earlier stay visible.
func (c *Canvas) Line(x0, y0, x1, y1 int, color lipgloss.Color) {
	glyph := lineGlyph(x1-x0, y1-y0)
	x0, y0, x1, y1, ok := c.clip(x0, y0, x1, y1)
	if !ok {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		if c.inside(x0, y0) && c.cells[y0][x0] == ' ' {
			c.cells[y0][x0] = glyph
			c.colors[y0][x0] = color
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func (c *Canvas) outcode(x, y float64) int {
	code := 0
	switch {
	case x < 0:
		code |= outLeft
	case x > float64(c.width-1):
		code |= outRight
	}
	switch {
	case y < 0:
		code |= outTop
	case y > float64(c.height-1):
		code |= outBottom
	}
	return code
}

// clip trims a segment to the canvas with Cohen-Sutherland so that Line
// only steps over visible cells. ok is false when nothing is visible.
func (c *Canvas) clip(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0, 0, 0, false
	}
	xmax, ymax := float64(c.width-1), float64(c.height-1)
	fx0, fy0, fx1, fy1 := float64(x0), float64(y0), float64(x1), float64(y1)
	code0, code1 := c.outcode(fx0, fy0), c.outcode(fx1, fy1)

	for {
		if code0|code1 == 0 {
			return int(math.Round(fx0)), int(math.Round(fy0)), int(math.Round(fx1)), int(math.Round(fy1)), true
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}

		code := code0
		if code == 0 {
			code = code1
		}
		var x, y float64
		switch {
		case code&outBottom != 0:
			x, y = fx0+(fx1-fx0)*(ymax-fy0)/(fy1-fy0), ymax
		case code&outTop != 0:
			x, y = fx0+(fx1-fx0)*(0-fy0)/(fy1-fy0), 0
		case code&outRight != 0:
			x, y = xmax, fy0+(fy1-fy0)*(xmax-fx0)/(fx1-fx0)
		default:
			x, y = 0, fy0+(fy1-fy0)*(0-fx0)/(fx1-fx0)
		}

		if code == code0 {
			fx0, fy0 = x, y
			code0 = c.outcode(fx0, fy0)
		} else {
			fx1, fy1 = x, y
			code1 = c.outcode(fx1, fy1)
		}
	}
}

// lineGlyph picks a rune that follows the slope. Screen y grows downward.
func lineGlyph(dx, dy int) rune {
	if dx == 0 && dy == 0 {
		return '·'
	}
	slope := math.Abs(float64(dy)) / math.Max(math.Abs(float64(dx)), 1e-9)
	switch {
	case slope < 0.4:
		return '─'
	case slope > 2.5:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// String renders the canvas with colors, one line per row.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		// Group runs of one color into a single styled span.
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.colors[y][x] == c.colors[y][start] {
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.colors[y][start])
			b.WriteString(style.Render(string(c.cells[y][start:x])))
			start = x
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Plain renders the canvas without colors, trimming trailing blanks.
func (c *Canvas) Plain() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		lines[y] = strings.TrimRight(string(c.cells[y]), " ")
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawFrame rasterizes f. The frame viewport must be measured in cells.
// Lines go first, stars on top of them, labels last.
func (c *Canvas) DrawFrame(f view.Frame) {
	for _, l := range f.Lines {
		x0, y0, ok0 := cell(l.X1, l.Y1)
		x1, y1, ok1 := cell(l.X2, l.Y2)
		if ok0 && ok1 {
			c.Line(x0, y0, x1, y1, colorLine)
		}
	}

	for _, s := range f.Stars {
		x, y, ok := cell(s.X, s.Y)
		if !ok {
			continue
		}
		glyph, color := StarGlyph(s.Brightness)
		// Keep the brighter star when two share a cell.
		if cur := c.At(x, y); cur != ' ' && cur != 0 && glyphRank(cur) > glyphRank(glyph) {
			continue
		}
		c.Set(x, y, glyph, color)
	}

	for _, l := range f.Labels {
		x, y, ok := cell(l.X, l.Y)
		if !ok {
			continue
		}
		switch l.Kind {
		case view.ConstellationLabel:
			c.Text(x-len([]rune(l.Text))/2, y, l.Text, colorConstellation)
		default:
			c.Text(x, y, l.Text, colorStarLabel)
		}
	}
}

// StarGlyph returns the glyph and color for a normalized brightness.
func StarGlyph(b float64) (rune, lipgloss.Color) {
	switch {
	case b >= 0.75:
		return glyphStarBright, "255"
	case b >= 0.5:
		return glyphStarMedium, "252"
	case b >= 0.25:
		return glyphStarDim, "248"
	default:
		return glyphStarVeryDim, "242"
	}
}

func glyphRank(r rune) int {
	switch r {
	case glyphStarBright:
		return 4
	case glyphStarMedium:
		return 3
	case glyphStarDim:
		return 2
	case glyphStarVeryDim:
		return 1
	default:
		return 0
	}
}

// cell converts a pixel position to integer cell coordinates.
func cell(x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x) > 1e6 || math.Abs(y) > 1e6 {
		return 0, 0, false
	}
	return int(math.Floor(x)), int(math.Floor(y)), true
}
