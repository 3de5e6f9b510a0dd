// Package layout computes named rectangular regions of the terminal and
// builds common chrome layers for Bubbletea v2 + Lipgloss v2 apps.
package layout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the computed regions for one terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Builder accumulates fixed edge regions and computes the remainder.
// Horizontal strips (top/bottom) span the full width; vertical strips
// (left/right) span the rows left between top and bottom strips.
type Builder struct {
	termW, termH int
	top, bottom  int
	left, right  int
	regions      []Region
}

// NewBuilder creates a builder for the given terminal size.
func NewBuilder(termW, termH int) *Builder {
	return &Builder{termW: termW, termH: termH}
}

// TopFixed reserves rows from the top.
func (b *Builder) TopFixed(name string, height int) *Builder {
	y := b.top
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: image.Rect(0, y, b.termW, y+height),
	})
	b.top += height
	return b
}

// BottomFixed reserves rows from the bottom.
func (b *Builder) BottomFixed(name string, height int) *Builder {
	y := b.termH - b.bottom - height
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: image.Rect(0, y, b.termW, y+height),
	})
	b.bottom += height
	return b
}

// LeftFixed reserves columns from the left.
func (b *Builder) LeftFixed(name string, width int) *Builder {
	x := b.left
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: image.Rect(x, b.top, x+width, b.termH-b.bottom),
	})
	b.left += width
	return b
}

// RightFixed reserves columns from the right.
func (b *Builder) RightFixed(name string, width int) *Builder {
	x := b.termW - b.right - width
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: image.Rect(x, b.top, x+width, b.termH-b.bottom),
	})
	b.right += width
	return b
}

// Remaining assigns whatever rectangle is left after fixed allocations;
// a degenerate remainder becomes the empty rectangle.
func (b *Builder) Remaining(name string) *Builder {
	x0 := b.left
	x1 := b.termW - b.right
	y1 := b.termH - b.bottom
	var rect image.Rectangle
	if x1 > x0 && y1 > b.top {
		rect = image.Rect(x0, b.top, x1, y1)
	}
	b.regions = append(b.regions, Region{Name: name, Rect: rect})
	return b
}

// Build computes the final Layout, clamping degenerate regions to empty.
func (b *Builder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}
