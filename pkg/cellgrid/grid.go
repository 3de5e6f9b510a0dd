// Package cellgrid provides a 2D character grid with per-cell style tags
// and run-merged Lipgloss rendering.
//
// Cells carry a Tag (a small int enum) instead of a concrete style so the
// grid stays decoupled from any color scheme; the caller supplies the
// Tag → style mapping at render time. All runes are assumed single-width.
package cellgrid

// Tag identifies a visual style. The zero Tag is the background.
type Tag uint8

// Grid is a fixed-size grid of tagged runes, stored row-major in flat
// slices to keep the per-frame rebuild cheap.
type Grid struct {
	W, H  int
	runes []rune
	tags  []Tag
}

// New creates a Grid filled with spaces in the given default tag.
// Non-positive dimensions yield an empty grid.
func New(w, h int, def Tag) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{
		W:     w,
		H:     h,
		runes: make([]rune, w*h),
		tags:  make([]Tag, w*h),
	}
	for i := range g.runes {
		g.runes[i] = ' '
		g.tags[i] = def
	}
	return g
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Set writes one rune. Out-of-bounds writes are silently dropped.
func (g *Grid) Set(x, y int, ch rune, tag Tag) {
	if !g.InBounds(x, y) {
		return
	}
	i := y*g.W + x
	g.runes[i] = ch
	g.tags[i] = tag
}

// At returns the rune at (x, y), or space when out of bounds.
func (g *Grid) At(x, y int) rune {
	if !g.InBounds(x, y) {
		return ' '
	}
	return g.runes[y*g.W+x]
}

// TagAt returns the tag at (x, y), or the zero Tag when out of bounds.
func (g *Grid) TagAt(x, y int) Tag {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.tags[y*g.W+x]
}

// SetString writes a string left-to-right starting at (x, y). Runes that
// fall outside the grid are skipped.
func (g *Grid) SetString(x, y int, s string, tag Tag) {
	col := x
	for _, ch := range s {
		g.Set(col, y, ch, tag)
		col++
	}
}
