package editor

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/tradeflow/tradeflow/internal/pricefeed"
	"github.com/tradeflow/tradeflow/internal/wire"
	"github.com/tradeflow/tradeflow/pkg/layout"
	"go.uber.org/zap"
)

const (
	toolbarHeight    = 1
	footerHeight     = 1
	sidebarWidth     = 24
	sidebarSlimWidth = 4
	configWidth      = 32
	panStep          = 3
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		m.lastTick = pricefeed.Tick(msg)
		return m, m.waitTick()
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up":
		m.CamY -= panStep
	case "down":
		m.CamY += panStep
	case "left":
		m.CamX -= panStep
	case "right":
		m.CamX += panStep

	case "1", "2", "3", "4", "5":
		if m.gest.kind == gestureIdle {
			m.armed = paletteKeys[key]
			m.status = fmt.Sprintf("click canvas to place %s", Spec(m.armed).Title)
		}

	case "n":
		c := m.store.AddCanvas("")
		m.status = fmt.Sprintf("created %s", c.Name)

	case "tab", "shift+tab":
		m.cycleCanvas(key == "tab")

	case "b":
		m.sidebarCollapsed = !m.sidebarCollapsed

	case "e":
		return m.beginEdit()

	case "d", "delete", "backspace":
		if id := m.store.SelectedNodeID; id != "" {
			m.store.RemoveNode(id)
		}

	case "ctrl+s":
		m.saveActive()

	case "esc", "escape":
		m.gest = gesture{}
		m.armed = ""
		m.store.SelectNode("")
		m.status = ""
	}

	return m, nil
}

// cycleCanvas activates the next (or previous) canvas in creation order.
func (m *Model) cycleCanvas(forward bool) {
	cs := m.store.Canvases()
	if len(cs) < 2 {
		return
	}
	cur := 0
	for i, c := range cs {
		if c.ID == m.store.ActiveCanvasID {
			cur = i
			break
		}
	}
	next := (cur + 1) % len(cs)
	if !forward {
		next = (cur - 1 + len(cs)) % len(cs)
	}
	m.store.SetActiveCanvas(cs[next].ID)
	m.gest = gesture{}
}

// saveActive exports the active canvas through the workflow repository.
func (m *Model) saveActive() {
	c := m.store.Active()
	if c == nil || m.repo == nil {
		return
	}
	wf := wire.Export(c, "")
	if err := m.repo.Save(wf); err != nil {
		m.log.Error("save failed", zap.Error(err))
		m.status = "save failed (see log)"
		return
	}
	m.status = fmt.Sprintf("saved %q (%d nodes, %d connections)",
		wf.Name, len(wf.Nodes), len(wf.Connections))
}

// sidebarW is the sidebar's current width, honoring the collapse toggle.
func (m Model) sidebarW() int {
	if m.sidebarCollapsed {
		return sidebarSlimWidth
	}
	return sidebarWidth
}

// screenLayout computes the chrome regions for the current terminal size.
func (m Model) screenLayout() layout.Layout {
	return layout.NewBuilder(m.Width, m.Height).
		TopFixed("toolbar", toolbarHeight).
		BottomFixed("footer", footerHeight).
		LeftFixed("sidebar", m.sidebarW()).
		RightFixed("config", configWidth).
		Remaining("canvas").
		Build()
}

// canvasRect is the canvas surface's screen rectangle; its Min is the
// origin every canvas-local coordinate is measured from.
func (m Model) canvasRect() image.Rectangle {
	return m.screenLayout().Get("canvas").Rect
}
