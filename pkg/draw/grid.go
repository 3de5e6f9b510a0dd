package draw

import "github.com/tradeflow/tradeflow/pkg/cellgrid"

// DotGrid fills the grid with alignment dots at regular world intervals,
// offset by the camera position.
func DotGrid(g *cellgrid.Grid, camX, camY, spacingX, spacingY int, tag cellgrid.Tag) {
	for r := 0; r < g.H; r++ {
		if mod(r+camY, spacingY) != 0 {
			continue
		}
		for c := 0; c < g.W; c++ {
			if mod(c+camX, spacingX) == 0 {
				g.Set(c, r, '·', tag)
			}
		}
	}
}

// mod is a non-negative modulus; Go's % is negative for negative operands.
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
