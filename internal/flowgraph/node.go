// Package flowgraph holds the canonical editor state: a set of isolated
// canvases, each containing a directed graph of typed trading nodes, plus
// the global selection and active-canvas markers.
//
// Every mutation goes through Store. Operations are total: unknown ids and
// missing canvases are silent no-ops, never errors. There is exactly one
// writer (the UI event loop), so no locking is done here.
package flowgraph

// NodeType identifies one of the trading building blocks.
type NodeType string

const (
	NodeMarketData NodeType = "market_data"
	NodeIndicator  NodeType = "indicator"
	NodeOrder      NodeType = "order"
	NodeRisk       NodeType = "risk"
	NodeAI         NodeType = "ai"
)

// NodeTypes lists all node types in palette order.
var NodeTypes = []NodeType{NodeMarketData, NodeIndicator, NodeOrder, NodeRisk, NodeAI}

// Valid reports whether t is a known node type.
func (t NodeType) Valid() bool {
	switch t {
	case NodeMarketData, NodeIndicator, NodeOrder, NodeRisk, NodeAI:
		return true
	}
	return false
}

// Node is a positioned, configurable unit in a workflow graph. X and Y are
// canvas-local coordinates, top-left anchored; the canvas is unbounded so
// they are never clamped.
type Node struct {
	ID     string
	Type   NodeType
	X, Y   int
	Label  string
	Config NodeConfig
}

// Edge is a directed reference between two nodes of the same canvas.
// Duplicate (source, target) pairs are permitted; self-loops are not.
type Edge struct {
	ID       string
	SourceID string
	TargetID string
}

// Canvas is one isolated workspace. Nodes and edges never span canvases.
type Canvas struct {
	ID          string
	Name        string
	TriggerType string
	Nodes       []*Node
	Edges       []Edge
}

// Node returns the node with the given id, or nil.
func (c *Canvas) Node(id string) *Node {
	for _, n := range c.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// HasNode reports whether the canvas contains a node with the given id.
func (c *Canvas) HasNode(id string) bool {
	return c.Node(id) != nil
}
