// Package wire implements the serialization contract shared with the
// workflow backend: {name, description, nodes, connections, trigger_type}.
// The editor round-trips this shape losslessly: importing an exported
// workflow yields a structurally identical canvas.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/tradeflow/tradeflow/internal/flowgraph"
)

// Position is a node's canvas-local coordinate pair. Floats on the wire
// because the web frontend works in fractional pixels; the terminal editor
// snaps to whole cells.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is the wire form of a workflow node.
type Node struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Data     map[string]any `json:"data"`
	Position Position       `json:"position"`
}

// Connection is the wire form of a directed edge.
type Connection struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Workflow is the top-level save/create payload.
type Workflow struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
	TriggerType string       `json:"trigger_type"`
}

// Export transforms a canvas into the wire shape.
func Export(c *flowgraph.Canvas, description string) Workflow {
	wf := Workflow{
		Name:        c.Name,
		Description: description,
		Nodes:       make([]Node, 0, len(c.Nodes)),
		Connections: make([]Connection, 0, len(c.Edges)),
		TriggerType: c.TriggerType,
	}
	if wf.TriggerType == "" {
		wf.TriggerType = "manual"
	}
	for _, n := range c.Nodes {
		data := n.Config.Data()
		data["label"] = n.Label
		wf.Nodes = append(wf.Nodes, Node{
			ID:       n.ID,
			Type:     string(n.Type),
			Data:     data,
			Position: Position{X: float64(n.X), Y: float64(n.Y)},
		})
	}
	for _, e := range c.Edges {
		wf.Connections = append(wf.Connections, Connection{
			ID:     e.ID,
			Source: e.SourceID,
			Target: e.TargetID,
		})
	}
	return wf
}

// Import populates a fresh canvas in the store from a wire workflow,
// preserving node/edge ids, positions, and configs. Nodes with an unknown
// type and connections referencing missing nodes are rejected.
func Import(s *flowgraph.Store, wf Workflow) (*flowgraph.Canvas, error) {
	nodes := make([]*flowgraph.Node, 0, len(wf.Nodes))
	byID := make(map[string]bool, len(wf.Nodes))
	for _, wn := range wf.Nodes {
		t := flowgraph.NodeType(wn.Type)
		if !t.Valid() {
			return nil, fmt.Errorf("import %q: unknown node type %q", wf.Name, wn.Type)
		}
		if byID[wn.ID] {
			return nil, fmt.Errorf("import %q: duplicate node id %q", wf.Name, wn.ID)
		}
		byID[wn.ID] = true
		label := ""
		if l, ok := wn.Data["label"].(string); ok {
			label = l
		}
		if label == "" {
			label = wn.Type
		}
		nodes = append(nodes, &flowgraph.Node{
			ID:     wn.ID,
			Type:   t,
			X:      int(wn.Position.X),
			Y:      int(wn.Position.Y),
			Label:  label,
			Config: flowgraph.ConfigFromData(t, wn.Data),
		})
	}
	edges := make([]flowgraph.Edge, 0, len(wf.Connections))
	for _, wc := range wf.Connections {
		if !byID[wc.Source] || !byID[wc.Target] {
			return nil, fmt.Errorf("import %q: connection %s references a missing node", wf.Name, wc.ID)
		}
		edges = append(edges, flowgraph.Edge{
			ID:       wc.ID,
			SourceID: wc.Source,
			TargetID: wc.Target,
		})
	}
	return s.ImportCanvas(wf.Name, wf.TriggerType, nodes, edges), nil
}

// Decode parses a JSON workflow payload.
func Decode(data []byte) (Workflow, error) {
	var wf Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		return Workflow{}, fmt.Errorf("decode workflow: %w", err)
	}
	return wf, nil
}

// Encode renders a workflow as indented JSON.
func Encode(wf Workflow) ([]byte, error) {
	data, err := json.MarshalIndent(wf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode workflow %q: %w", wf.Name, err)
	}
	return data, nil
}
