package editor

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
)

// handleMouse translates pointer events into the gesture state machine.
// All graph mutations go through store operations; the gesture value
// itself never touches persisted state.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	lay := m.screenLayout()
	canvasRect := lay.Get("canvas").Rect
	origin := canvasRect.Min

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return m, nil
		}
		pt := image.Pt(mouse.X, mouse.Y)
		if pt.In(lay.Get("sidebar").Rect) {
			m = m.sidebarClick(mouse.Y - lay.Get("sidebar").Rect.Min.Y)
			return m, nil
		}
		if pt.In(canvasRect) {
			shift := mouse.Mod&tea.ModShift != 0
			m = m.pressCanvas(mouse.X-origin.X+m.CamX, mouse.Y-origin.Y+m.CamY, shift)
		}

	case tea.MouseMotionMsg:
		// Dragging keeps tracking even when the pointer strays off the
		// surface; the canvas is unbounded.
		if m.gest.kind == gestureDrag {
			wx := mouse.X - origin.X + m.CamX
			wy := mouse.Y - origin.Y + m.CamY
			m.store.MoveNode(m.gest.nodeID, wx-m.gest.offX, wy-m.gest.offY)
		}

	case tea.MouseReleaseMsg:
		m = m.releaseCanvas(mouse.X-origin.X+m.CamX, mouse.Y-origin.Y+m.CamY)
	}

	return m, nil
}

// pressCanvas handles a left press at world coordinates. A press while a
// gesture is live is dropped so two interactions can never overlap.
func (m Model) pressCanvas(wx, wy int, shift bool) Model {
	if m.gest.kind != gestureIdle {
		return m
	}

	if m.armed != "" {
		n := m.store.AddNode(m.armed, wx, wy, "")
		if n != nil {
			m.store.SelectNode(n.ID)
			m.status = fmt.Sprintf("placed %s", Spec(n.Type).Title)
		}
		m.armed = ""
		return m
	}

	hit := hitTest(m.store.Active(), image.Pt(wx, wy))
	if hit == nil {
		m.store.SelectNode("")
		return m
	}

	if shift {
		m.gest = gesture{kind: gestureConnect, nodeID: hit.ID}
		m.status = fmt.Sprintf("connecting from %s — release on target", hit.Label)
		return m
	}

	m.store.SelectNode(hit.ID)
	m.gest = gesture{
		kind:   gestureDrag,
		nodeID: hit.ID,
		offX:   wx - hit.X,
		offY:   wy - hit.Y,
	}
	return m
}

// releaseCanvas resolves the live gesture. A drag release is a pure state
// reset, positions were committed during motion. A connect release over
// a different node commits the edge; over the source or empty space the
// gesture is discarded.
func (m Model) releaseCanvas(wx, wy int) Model {
	switch m.gest.kind {
	case gestureDrag:
		m.gest = gesture{}

	case gestureConnect:
		src := m.gest.nodeID
		m.gest = gesture{}
		m.status = ""
		hit := hitTest(m.store.Active(), image.Pt(wx, wy))
		if hit != nil && hit.ID != src {
			if e := m.store.ConnectNodes(src, hit.ID); e != nil {
				m.status = fmt.Sprintf("connected → %s", hit.Label)
			}
		}
	}
	return m
}
