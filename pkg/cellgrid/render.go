package cellgrid

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the grid into a styled string, one line per row joined
// with "\n". Consecutive cells sharing a Tag are flushed as a single
// Style.Render call; per-cell rendering is an order of magnitude slower.
// Tags missing from styles render unstyled. An empty grid returns "".
func (g *Grid) Render(styles map[Tag]lipgloss.Style) string {
	if g.W == 0 || g.H == 0 {
		return ""
	}

	lines := make([]string, g.H)
	for y := 0; y < g.H; y++ {
		var sb strings.Builder
		row := y * g.W

		start := 0
		cur := g.tags[row]
		flush := func(end int) {
			chunk := string(g.runes[row+start : row+end])
			if s, ok := styles[cur]; ok {
				sb.WriteString(s.Render(chunk))
			} else {
				sb.WriteString(chunk)
			}
		}
		for x := 1; x < g.W; x++ {
			if t := g.tags[row+x]; t != cur {
				flush(x)
				start = x
				cur = t
			}
		}
		flush(g.W)

		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
