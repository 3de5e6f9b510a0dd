package editor

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"
	"github.com/tradeflow/tradeflow/internal/flowgraph"
	"github.com/tradeflow/tradeflow/pkg/cellgrid"
	"github.com/tradeflow/tradeflow/pkg/draw"
)

// cellgrid tags for the edge/background layer.
const (
	tagBG cellgrid.Tag = iota
	tagGrid
	tagEdge
	tagPreview
)

var gridStyles = map[cellgrid.Tag]lipgloss.Style{
	tagBG:      lipgloss.NewStyle().Foreground(c("#1d2433")).Background(colorBG),
	tagGrid:    lipgloss.NewStyle().Foreground(c("#161c29")).Background(colorBG),
	tagEdge:    lipgloss.NewStyle().Foreground(c("#39b8d8")).Background(colorBG),
	tagPreview: lipgloss.NewStyle().Foreground(c("#e0a63c")).Background(colorBG).Bold(true),
}

// buildEdgeLayer renders the dot grid plus every edge of the canvas into
// one background layer. Geometry is recomputed from node positions on
// every call; nothing is cached, so a stale line can never survive a
// node move.
func (m Model) buildEdgeLayer(viewport image.Rectangle) *lipgloss.Layer {
	w, h := viewport.Dx(), viewport.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(viewport.Min.X).Y(viewport.Min.Y).Z(0).ID("edge-canvas")
	}

	g := cellgrid.New(w, h, tagBG)
	draw.DotGrid(g, m.CamX, m.CamY, 6, 3, tagGrid)

	canvas := m.store.Active()
	if canvas != nil {
		for _, e := range canvas.Edges {
			src := canvas.Node(e.SourceID)
			dst := canvas.Node(e.TargetID)
			if src == nil || dst == nil {
				continue
			}
			p1 := draw.RightAnchor(nodeBounds(src))
			p2 := draw.LeftAnchor(nodeBounds(dst))
			draw.ArrowLine(g,
				p1.X-m.CamX, p1.Y-m.CamY,
				p2.X-m.CamX, p2.Y-m.CamY,
				tagEdge, tagEdge)
		}

		// Connect-in-progress preview from the pending source to the pointer.
		if m.gest.kind == gestureConnect {
			if src := canvas.Node(m.gest.nodeID); src != nil {
				p1 := draw.RightAnchor(nodeBounds(src))
				draw.DashedLine(g,
					p1.X-m.CamX, p1.Y-m.CamY,
					m.MouseX-viewport.Min.X, m.MouseY-viewport.Min.Y,
					tagPreview)
			}
		}
	}

	return lipgloss.NewLayer(g.Render(gridStyles)).
		X(viewport.Min.X).Y(viewport.Min.Y).Z(0).ID("edge-canvas")
}

// buildNodeLayers creates one layer per visible node, above the edges.
func (m Model) buildNodeLayers(viewport image.Rectangle) []*lipgloss.Layer {
	canvas := m.store.Active()
	if canvas == nil {
		return nil
	}

	var layers []*lipgloss.Layer
	for _, node := range canvas.Nodes {
		spec := Spec(node.Type)
		sx := node.X - m.CamX + viewport.Min.X
		sy := node.Y - m.CamY + viewport.Min.Y

		if !image.Rect(sx, sy, sx+spec.W, sy+spec.H).Overlaps(viewport) {
			continue
		}

		bc, tc, bg := nodeColors[node.Type].border, nodeColors[node.Type].text, colorBG
		if node.ID == m.store.SelectedNodeID {
			bc, tc, bg = selBorder, selText, selBG
		}
		if m.gest.kind == gestureConnect && node.ID == m.gest.nodeID {
			bc = c("#e0a63c")
		}

		label := node.Label
		if maxLen := spec.W - 4; len(label) > maxLen {
			label = label[:maxLen]
		}

		box := lipgloss.NewStyle().
			Border(borderForType(node.Type)).
			BorderForeground(bc).
			Background(bg).
			Width(spec.W - 2).
			AlignHorizontal(lipgloss.Center).
			Render(lipgloss.NewStyle().Foreground(tc).Background(bg).Bold(true).Render(label))

		layers = append(layers, lipgloss.NewLayer(box).
			X(sx).Y(sy).Z(2).ID("node-"+node.ID))

		if spec.Tag != "" {
			tag := lipgloss.NewStyle().Foreground(bc).Background(bg).
				Render(fmt.Sprintf("[%s]", spec.Tag))
			layers = append(layers, lipgloss.NewLayer(tag).
				X(sx+2).Y(sy).Z(3).ID("tag-"+node.ID))
		}
	}
	return layers
}

// nodeTitle is a short display name used by the toolbar and footer.
func nodeTitle(n *flowgraph.Node) string {
	if n == nil {
		return "none"
	}
	return fmt.Sprintf("%s (%s)", n.Label, Spec(n.Type).Tag)
}
