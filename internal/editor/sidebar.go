package editor

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// rowKind classifies a sidebar line for click handling.
type rowKind int

const (
	rowText rowKind = iota
	rowCanvas
	rowNewCanvas
	rowPalette
)

type sidebarRow struct {
	text string
	kind rowKind
	id   string // canvas id for rowCanvas, node type for rowPalette
}

// sidebarRows builds the sidebar line list. Rendering and click handling
// both consume this, so the two cannot drift apart. Collapsed mode keeps
// a thin strip with no interactive rows.
func (m Model) sidebarRows() []sidebarRow {
	if m.sidebarCollapsed {
		return []sidebarRow{{text: "»", kind: rowText}}
	}

	rows := []sidebarRow{
		{text: "WORKSPACES", kind: rowText},
		{text: "", kind: rowText},
	}
	for i, c := range m.store.Canvases() {
		marker := "  "
		if c.ID == m.store.ActiveCanvasID {
			marker = "▸ "
		}
		rows = append(rows, sidebarRow{
			text: fmt.Sprintf("%s%d %s", marker, i+1, c.Name),
			kind: rowCanvas,
			id:   c.ID,
		})
	}
	rows = append(rows,
		sidebarRow{text: "  + new canvas", kind: rowNewCanvas},
		sidebarRow{text: "", kind: rowText},
		sidebarRow{text: "PALETTE", kind: rowText},
		sidebarRow{text: "", kind: rowText},
	)
	for i, t := range paletteOrder() {
		marker := "  "
		if m.armed == t {
			marker = "▸ "
		}
		rows = append(rows, sidebarRow{
			text: fmt.Sprintf("%s%d %s", marker, i+1, Spec(t).Title),
			kind: rowPalette,
			id:   string(t),
		})
	}
	return rows
}

// sidebarClick dispatches a click on the given sidebar-local row.
func (m Model) sidebarClick(row int) Model {
	rows := m.sidebarRows()
	if row < 0 || row >= len(rows) {
		return m
	}
	switch r := rows[row]; r.kind {
	case rowCanvas:
		m.store.SetActiveCanvas(r.id)
		m.gest = gesture{}
	case rowNewCanvas:
		c := m.store.AddCanvas("")
		m.status = fmt.Sprintf("created %s", c.Name)
	case rowPalette:
		if m.gest.kind == gestureIdle {
			m.armed = nodeTypeFromID(r.id)
			m.status = fmt.Sprintf("click canvas to place %s", Spec(m.armed).Title)
		}
	}
	return m
}

// buildSidebarLayer renders the sidebar into a single layer.
func (m Model) buildSidebarLayer(x, y, width, height int) *lipgloss.Layer {
	rows := m.sidebarRows()
	lines := make([]string, 0, height)
	for i := 0; i < height; i++ {
		if i >= len(rows) {
			lines = append(lines, padSidebar("", width))
			continue
		}
		r := rows[i]
		var styled string
		switch {
		case r.kind == rowText && r.text != "" && r.text != "»":
			styled = panelTitleStyle.Render(r.text)
		case r.kind == rowCanvas && r.id == m.store.ActiveCanvasID:
			styled = panelActiveStyle.Render(r.text)
		case r.kind == rowPalette && m.armed != "" && r.id == string(m.armed):
			styled = panelActiveStyle.Render(r.text)
		case r.kind == rowNewCanvas:
			styled = panelKeyStyle.Render(r.text)
		default:
			styled = panelTextStyle.Render(r.text)
		}
		lines = append(lines, padSidebar(styled, width))
	}
	content := strings.Join(lines, "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("sidebar")
}

// padSidebar right-pads a styled line to the full sidebar width so the
// panel background stays solid.
func padSidebar(s string, width int) string {
	vis := lipgloss.Width(s)
	if pad := width - vis; pad > 0 {
		s += panelBGStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}
