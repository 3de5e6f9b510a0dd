package editor

import (
	"image"

	"github.com/tradeflow/tradeflow/internal/flowgraph"
)

// NodeSpec is the fixed on-screen geometry and display metadata for a
// node type. Edge anchors and hit testing both derive from W/H, so a
// node's rendered box and its interactive bounds can never disagree.
type NodeSpec struct {
	Title string // palette label, e.g. "Market Data"
	Tag   string // short tag shown on the node border
	W, H  int    // size in terminal cells
}

var nodeSpecs = map[flowgraph.NodeType]NodeSpec{
	flowgraph.NodeMarketData: {Title: "Market Data", Tag: "MD", W: 22, H: 3},
	flowgraph.NodeIndicator:  {Title: "Indicator", Tag: "IN", W: 22, H: 3},
	flowgraph.NodeOrder:      {Title: "Order", Tag: "OR", W: 22, H: 3},
	flowgraph.NodeRisk:       {Title: "Risk", Tag: "RK", W: 22, H: 3},
	flowgraph.NodeAI:         {Title: "AI Agent", Tag: "AI", W: 22, H: 3},
}

// Spec returns the display spec for a node type.
func Spec(t flowgraph.NodeType) NodeSpec {
	return nodeSpecs[t]
}

// paletteKeys maps number keys to the palette entry they arm.
var paletteKeys = map[string]flowgraph.NodeType{
	"1": flowgraph.NodeMarketData,
	"2": flowgraph.NodeIndicator,
	"3": flowgraph.NodeOrder,
	"4": flowgraph.NodeRisk,
	"5": flowgraph.NodeAI,
}

// paletteOrder lists the node types in palette display order.
func paletteOrder() []flowgraph.NodeType {
	return flowgraph.NodeTypes
}

// nodeTypeFromID converts a sidebar row id back into a node type.
func nodeTypeFromID(id string) flowgraph.NodeType {
	return flowgraph.NodeType(id)
}

// nodeBounds returns a node's world-space rectangle.
func nodeBounds(n *flowgraph.Node) image.Rectangle {
	s := Spec(n.Type)
	return image.Rect(n.X, n.Y, n.X+s.W, n.Y+s.H)
}

// hitTest returns the topmost (last-inserted) node of the canvas under
// the world point, or nil.
func hitTest(c *flowgraph.Canvas, pt image.Point) *flowgraph.Node {
	if c == nil {
		return nil
	}
	for i := len(c.Nodes) - 1; i >= 0; i-- {
		if pt.In(nodeBounds(c.Nodes[i])) {
			return c.Nodes[i]
		}
	}
	return nil
}
