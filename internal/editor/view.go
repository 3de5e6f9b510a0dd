package editor

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/tradeflow/tradeflow/pkg/layout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	lay := m.screenLayout()
	canvasRegion := lay.Get("canvas")
	sidebarRegion := lay.Get("sidebar")
	configRegion := lay.Get("config")

	var layers []*lipgloss.Layer

	// Backgrounds.
	layers = append(layers,
		layout.FillLayer(lay.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		layout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		layout.FillLayer(sidebarRegion, panelBGStyle, "sidebar-bg", 0),
		layout.FillLayer(configRegion, panelBGStyle, "config-bg", 0),
		layout.FillLayer(lay.Get("footer"), ftStyle, "footer-bg", 0),
	)

	// Toolbar.
	mode := "SELECT"
	switch {
	case m.gest.kind == gestureDrag:
		mode = "MOVE"
	case m.gest.kind == gestureConnect:
		mode = "CONNECT"
	case m.armed != "":
		mode = fmt.Sprintf("PLACE [%s]", Spec(m.armed).Title)
	}
	tb := fmt.Sprintf(
		" TRADEFLOW  │  %s  │  [1-5] palette  [e]dit  [d]elete  [n]ew canvas  [b]ar  [ctrl+s] save  [q]uit",
		mode,
	)
	layers = append(layers, layout.BarLayer(tb, m.Width, 0, tbStyle, "toolbar"))

	// Footer: pointer, camera, selection, price tick, status.
	ft := fmt.Sprintf(" (%d,%d)  cam (%d,%d)  sel: %s",
		m.MouseX, m.MouseY, m.CamX, m.CamY, nodeTitle(m.store.SelectedNode()))
	if m.lastTick.Symbol != "" {
		ft += fmt.Sprintf("  │  %s %.2f", m.lastTick.Symbol, m.lastTick.Price)
	}
	layers = append(layers, layout.BarLayer(ft, m.Width, m.Height-1, ftStyle, "footer"))
	if m.status != "" {
		st := statusStyle.Render(" " + m.status + " ")
		layers = append(layers, lipgloss.NewLayer(st).
			X(max(m.Width-lipgloss.Width(st), 0)).Y(m.Height-1).Z(1).ID("status"))
	}

	// Canvas: edges below, nodes above.
	layers = append(layers, m.buildEdgeLayer(canvasRegion.Rect))
	layers = append(layers, m.buildNodeLayers(canvasRegion.Rect)...)

	// Side panels.
	sr := sidebarRegion.Rect
	if sr.Dx() > 0 {
		layers = append(layers, m.buildSidebarLayer(sr.Min.X, sr.Min.Y, sr.Dx(), sr.Dy()))
		layers = append(layers, layout.VSeparator(sr.Max.X-1, sr.Min.Y, sr.Dy(), sepStyle, "sidebar-sep"))
	}
	cr := configRegion.Rect
	if cr.Dx() > 0 {
		layers = append(layers, layout.VSeparator(cr.Min.X, cr.Min.Y, cr.Dy(), sepStyle, "config-sep"))
		layers = append(layers, m.buildConfigPanelLayer(cr.Min.X+1, cr.Min.Y, cr.Dx()-1, cr.Dy()))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
