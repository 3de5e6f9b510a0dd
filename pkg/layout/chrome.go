package layout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// BarLayer creates a full-width single-row layer at the given y, for
// toolbars and footers.
func BarLayer(content string, width, y int, style lipgloss.Style, id string) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(0).ID(id)
}

// FillLayer creates a layer of styled spaces covering a region. Used as a
// background beneath text layers.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w := r.Rect.Dx()
	h := r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// VSeparator creates a vertical line of │ characters.
func VSeparator(x, y, height int, style lipgloss.Style, id string) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID(id)
}
