package canvas

import (
	"strings"
	"testing"

	"github.com/litescript/ls-starmap/internal/view"
)

func TestCanvas_SetAndBounds(t *testing.T) {
	c := New(4, 3)
	c.Set(1, 2, '*', "255")
	c.Set(-1, 0, 'x', "255")
	c.Set(4, 0, 'x', "255")
	c.Set(0, 3, 'x', "255")

	if got := c.At(1, 2); got != '*' {
		t.Errorf("At(1,2) = %q, want '*'", got)
	}
	if got := c.At(9, 9); got != 0 {
		t.Errorf("At outside = %q, want 0", got)
	}
	if strings.ContainsRune(c.Plain(), 'x') {
		t.Error("out of bounds writes reached the canvas")
	}
}

func TestCanvas_NegativeSize(t *testing.T) {
	c := New(-1, -5)
	w, h := c.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size = %d×%d, want 0×0", w, h)
	}
	if c.Plain() != "" || c.String() != "" {
		t.Error("empty canvas should render empty")
	}
}

func TestCanvas_LineHorizontal(t *testing.T) {
	c := New(10, 1)
	c.Line(2, 0, 6, 0, "60")
	if got := c.Plain(); got != "  ─────" {
		t.Errorf("Plain = %q", got)
	}
}

func TestCanvas_LineDiagonalBothDirections(t *testing.T) {
	down := New(4, 4)
	down.Line(0, 0, 3, 3, "60")
	up := New(4, 4)
	up.Line(3, 3, 0, 0, "60")

	for i := 0; i < 4; i++ {
		if down.At(i, i) != '╲' {
			t.Errorf("down.At(%d,%d) = %q", i, i, down.At(i, i))
		}
	}
	if down.Plain() != up.Plain() {
		t.Errorf("line differs by direction:\n%s\nvs\n%s", down.Plain(), up.Plain())
	}

	anti := New(4, 4)
	anti.Line(0, 3, 3, 0, "60")
	if anti.At(0, 3) != '╱' || anti.At(3, 0) != '╱' {
		t.Errorf("anti-diagonal glyphs wrong:\n%s", anti.Plain())
	}
}

func TestCanvas_LineKeepsExistingCells(t *testing.T) {
	c := New(5, 1)
	c.Set(2, 0, '✶', "255")
	c.Line(0, 0, 4, 0, "60")
	if c.At(2, 0) != '✶' {
		t.Errorf("line overwrote a star: %q", c.Plain())
	}
}

func TestCanvas_LineOffscreen(t *testing.T) {
	c := New(5, 5)
	c.Line(-100, -3, 100, -3, "60")
	c.Line(-10, 2, 10, 2, "60")
	if got := c.Plain(); got != "\n\n─────\n\n" {
		t.Errorf("Plain = %q", got)
	}
}

func TestCanvas_LineClippedToCanvas(t *testing.T) {
	c := New(5, 5)
	x0, y0, x1, y1, ok := c.clip(-1000000, 2, 1000000, 2)
	if !ok || x0 != 0 || x1 != 4 || y0 != 2 || y1 != 2 {
		t.Errorf("clip = (%d,%d)-(%d,%d) %v, want (0,2)-(4,2)", x0, y0, x1, y1, ok)
	}

	// A diagonal from far outside keeps its slope inside the canvas.
	c.Line(-1000000, -1000000, 1000000, 1000000, "60")
	for i := 0; i < 5; i++ {
		if c.At(i, i) != '╲' {
			t.Errorf("At(%d,%d) = %q\n%s", i, i, c.At(i, i), c.Plain())
		}
	}

	// Both ends outside on different sides but the segment misses the canvas.
	if _, _, _, _, ok := c.clip(-10, 3, 3, -10); ok {
		t.Error("segment past the top-left corner reported visible")
	}
	if _, _, _, _, ok := New(0, 0).clip(0, 0, 1, 1); ok {
		t.Error("empty canvas reported visible")
	}
}

func TestLineGlyph(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 0, '·'},
		{5, 0, '─'},
		{-5, 1, '─'},
		{0, 4, '│'},
		{1, -9, '│'},
		{3, 3, '╲'},
		{-3, -3, '╲'},
		{3, -3, '╱'},
		{-3, 3, '╱'},
	}
	for _, tt := range tests {
		if got := lineGlyph(tt.dx, tt.dy); got != tt.want {
			t.Errorf("lineGlyph(%d,%d) = %q, want %q", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestStarGlyph(t *testing.T) {
	tests := []struct {
		b    float64
		want rune
	}{
		{1, glyphStarBright},
		{0.75, glyphStarBright},
		{0.6, glyphStarMedium},
		{0.3, glyphStarDim},
		{0, glyphStarVeryDim},
	}
	for _, tt := range tests {
		if got, _ := StarGlyph(tt.b); got != tt.want {
			t.Errorf("StarGlyph(%v) = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestDrawFrame(t *testing.T) {
	f := view.Frame{
		Viewport: view.Viewport{Width: 20, Height: 5},
		Lines:    []view.Segment{{Constellation: "X", X1: 1.2, Y1: 2.5, X2: 8.9, Y2: 2.1}},
		Stars: []view.ScreenStar{
			{HR: 1, X: 1.2, Y: 2.5, Brightness: 1},
			{HR: 2, X: 8.9, Y: 2.1, Brightness: 0.1},
			{HR: 3, X: 8.5, Y: 2.9, Brightness: 0.9},
		},
		Labels: []view.Label{
			{Text: "Ori", X: 10, Y: 0, Kind: view.ConstellationLabel},
			{Text: "7", X: 15, Y: 4, Kind: view.StarLabel},
		},
	}

	c := New(20, 5)
	c.DrawFrame(f)

	if c.At(1, 2) != glyphStarBright {
		t.Errorf("bright star glyph = %q", c.At(1, 2))
	}
	// HR 2 and 3 share cell (8,2); the brighter one stays.
	if c.At(8, 2) != glyphStarBright {
		t.Errorf("shared cell = %q, want the brighter glyph", c.At(8, 2))
	}
	if c.At(4, 2) != '─' {
		t.Errorf("line cell = %q", c.At(4, 2))
	}
	lines := strings.Split(c.Plain(), "\n")
	if !strings.Contains(lines[0], "Ori") || strings.Index(lines[0], "Ori") != 9 {
		t.Errorf("constellation label not centred: %q", lines[0])
	}
	if !strings.HasSuffix(lines[4], "7") {
		t.Errorf("star label missing: %q", lines[4])
	}
	if !strings.Contains(c.String(), "Ori") {
		t.Error("styled render lost the label text")
	}
}
