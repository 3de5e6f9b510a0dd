package draw

import (
	"image"
	"testing"

	"github.com/tradeflow/tradeflow/pkg/cellgrid"
)

func TestBresenhamEndpoints(t *testing.T) {
	pts := Bresenham(0, 0, 5, 3)
	if len(pts) == 0 {
		t.Fatal("no points")
	}
	if pts[0] != image.Pt(0, 0) {
		t.Errorf("first point: got %v", pts[0])
	}
	if pts[len(pts)-1] != image.Pt(5, 3) {
		t.Errorf("last point: got %v", pts[len(pts)-1])
	}
}

func TestBresenhamSinglePoint(t *testing.T) {
	pts := Bresenham(2, 2, 2, 2)
	if len(pts) != 1 || pts[0] != image.Pt(2, 2) {
		t.Errorf("degenerate line: got %v", pts)
	}
}

func TestBresenhamReverseDirection(t *testing.T) {
	pts := Bresenham(5, 0, 0, 0)
	if pts[0] != image.Pt(5, 0) || pts[len(pts)-1] != image.Pt(0, 0) {
		t.Errorf("right-to-left line wrong: %v", pts)
	}
}

func TestLineChars(t *testing.T) {
	cases := []struct {
		dx, dy int
		want   rune
	}{
		{0, 1, '│'},
		{1, 0, '─'},
		{1, 1, '\\'},
		{1, -1, '/'},
	}
	for _, c := range cases {
		if got := LineChar(c.dx, c.dy); got != c.want {
			t.Errorf("LineChar(%d,%d): got %q want %q", c.dx, c.dy, got, c.want)
		}
	}
}

func TestArrowChars(t *testing.T) {
	if ArrowChar(5, 1) != '►' || ArrowChar(-5, 1) != '◄' {
		t.Error("horizontal arrowheads wrong")
	}
	if ArrowChar(1, 5) != '▼' || ArrowChar(1, -5) != '▲' {
		t.Error("vertical arrowheads wrong")
	}
}

func TestRightAnchor(t *testing.T) {
	// 22x3 node at (10, 5): source anchor at (32, 6)
	b := image.Rect(10, 5, 32, 8)
	if got := RightAnchor(b); got != image.Pt(32, 6) {
		t.Errorf("RightAnchor: got %v want (32,6)", got)
	}
}

func TestLeftAnchor(t *testing.T) {
	b := image.Rect(10, 5, 32, 8)
	if got := LeftAnchor(b); got != image.Pt(10, 6) {
		t.Errorf("LeftAnchor: got %v want (10,6)", got)
	}
}

func TestArrowLineDrawsHead(t *testing.T) {
	g := cellgrid.New(10, 3, 0)
	ArrowLine(g, 0, 1, 8, 1, 1, 2)
	if g.At(8, 1) != '►' {
		t.Errorf("expected arrowhead at end, got %q", g.At(8, 1))
	}
	if g.At(4, 1) != '─' {
		t.Errorf("expected horizontal line char, got %q", g.At(4, 1))
	}
	if g.TagAt(8, 1) != 2 {
		t.Errorf("arrowhead should use head tag, got %d", g.TagAt(8, 1))
	}
}

func TestDashedLineSkipsPoints(t *testing.T) {
	g := cellgrid.New(12, 1, 0)
	DashedLine(g, 0, 0, 11, 0, 1)
	blanks := 0
	for x := 0; x < 12; x++ {
		if g.At(x, 0) == ' ' {
			blanks++
		}
	}
	if blanks == 0 {
		t.Error("dashed line should leave gaps")
	}
}

func TestDotGridSpacing(t *testing.T) {
	g := cellgrid.New(10, 6, 0)
	DotGrid(g, 0, 0, 5, 3, 1)
	if g.At(0, 0) != '·' || g.At(5, 3) != '·' {
		t.Error("expected dots on spacing multiples")
	}
	if g.At(1, 0) != ' ' {
		t.Error("expected no dot off the spacing grid")
	}
}

func TestDotGridNegativeCamera(t *testing.T) {
	g := cellgrid.New(10, 6, 0)
	DotGrid(g, -5, -3, 5, 3, 1)
	// world (0,0) appears at screen (5,3)
	if g.At(5, 3) != '·' {
		t.Error("camera offset not applied with negative values")
	}
}
