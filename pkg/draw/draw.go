package draw

import (
	"image"

	"github.com/tradeflow/tradeflow/pkg/cellgrid"
)

// segChar returns the line character for point i of a traversal, looking
// at the following point (or the previous one for the final point).
func segChar(pts []image.Point, i int) rune {
	var dx, dy int
	switch {
	case i < len(pts)-1:
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	case i > 0:
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// Line draws a Bresenham line with per-point characters. Coordinates are
// grid-local.
func Line(g *cellgrid.Grid, x0, y0, x1, y1 int, tag cellgrid.Tag) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		g.Set(p.X, p.Y, segChar(pts, i), tag)
	}
}

// ArrowLine draws a line ending in an arrowhead at (x1, y1).
func ArrowLine(g *cellgrid.Grid, x0, y0, x1, y1 int, lineTag, headTag cellgrid.Tag) {
	pts := Bresenham(x0, y0, x1, y1)
	if len(pts) == 0 {
		return
	}
	for i, p := range pts[:len(pts)-1] {
		g.Set(p.X, p.Y, segChar(pts, i), lineTag)
	}
	last := pts[len(pts)-1]
	var dx, dy int
	if len(pts) >= 2 {
		dx = last.X - pts[len(pts)-2].X
		dy = last.Y - pts[len(pts)-2].Y
	}
	g.Set(last.X, last.Y, ArrowChar(dx, dy), headTag)
}

// DashedLine draws a line with every third point skipped. Used for the
// in-progress connection preview.
func DashedLine(g *cellgrid.Grid, x0, y0, x1, y1 int, tag cellgrid.Tag) {
	pts := Bresenham(x0, y0, x1, y1)
	for i, p := range pts {
		if i%3 == 2 {
			continue
		}
		g.Set(p.X, p.Y, segChar(pts, i), tag)
	}
}
