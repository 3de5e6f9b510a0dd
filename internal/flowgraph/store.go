package flowgraph

import (
	"fmt"

	"github.com/google/uuid"
)

// Store owns every canvas plus the ephemeral selection/active markers.
// ActiveCanvasID is empty exactly when the store holds no canvases.
type Store struct {
	canvases       []*Canvas
	ActiveCanvasID string
	SelectedNodeID string

	canvasSeq int // for "Canvas N" default names
}

// NewStore creates an empty store with no canvases.
func NewStore() *Store {
	return &Store{}
}

// Canvases returns all canvases in creation order.
func (s *Store) Canvases() []*Canvas {
	return s.canvases
}

// Canvas returns the canvas with the given id, or nil.
func (s *Store) Canvas(id string) *Canvas {
	for _, c := range s.canvases {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Active returns the active canvas, or nil if the store is empty.
func (s *Store) Active() *Canvas {
	return s.Canvas(s.ActiveCanvasID)
}

// AddCanvas creates a canvas and makes it active. An empty name gets a
// sequential "Canvas N" default. Never fails.
func (s *Store) AddCanvas(name string) *Canvas {
	s.canvasSeq++
	if name == "" {
		name = fmt.Sprintf("Canvas %d", s.canvasSeq)
	}
	c := &Canvas{
		ID:          uuid.NewString(),
		Name:        name,
		TriggerType: "manual",
	}
	s.canvases = append(s.canvases, c)
	s.ActiveCanvasID = c.ID
	s.SelectedNodeID = ""
	return c
}

// SetActiveCanvas switches the active canvas. Unknown ids are ignored.
// Selection never survives a canvas switch, so the config panel cannot
// end up editing a node of a non-visible canvas.
func (s *Store) SetActiveCanvas(id string) {
	if s.Canvas(id) == nil {
		return
	}
	s.ActiveCanvasID = id
	s.SelectedNodeID = ""
}

// RemoveCanvas deletes a canvas and everything in it. If the active canvas
// is removed, the first remaining canvas (if any) becomes active.
func (s *Store) RemoveCanvas(id string) {
	for i, c := range s.canvases {
		if c.ID != id {
			continue
		}
		s.canvases = append(s.canvases[:i], s.canvases[i+1:]...)
		if s.ActiveCanvasID == id {
			s.ActiveCanvasID = ""
			s.SelectedNodeID = ""
			if len(s.canvases) > 0 {
				s.ActiveCanvasID = s.canvases[0].ID
			}
		}
		return
	}
}

// AddNode appends a node to the active canvas and returns it. When the
// store holds no canvas at all, a first one is created implicitly. An
// empty label defaults to the type name.
func (s *Store) AddNode(t NodeType, x, y int, label string) *Node {
	c := s.Active()
	if c == nil {
		if len(s.canvases) > 0 {
			return nil
		}
		c = s.AddCanvas("")
	}
	if label == "" {
		label = string(t)
	}
	n := &Node{
		ID:     uuid.NewString(),
		Type:   t,
		X:      x,
		Y:      y,
		Label:  label,
		Config: DefaultConfig(t),
	}
	c.Nodes = append(c.Nodes, n)
	return n
}

// MoveNode overwrites a node's position. Coordinates are absolute, not
// deltas, so repeated moves cannot accumulate drift. No bounds clamping.
func (s *Store) MoveNode(id string, x, y int) {
	c := s.Active()
	if c == nil {
		return
	}
	if n := c.Node(id); n != nil {
		n.X = x
		n.Y = y
	}
}

// SelectNode sets the selection without validating existence; a stale id
// resolves to nil through SelectedNode. Pass "" to clear.
func (s *Store) SelectNode(id string) {
	s.SelectedNodeID = id
}

// SelectedNode resolves the current selection against the active canvas.
// Returns nil for no selection, a stale id, or a node in another canvas.
func (s *Store) SelectedNode() *Node {
	if s.SelectedNodeID == "" {
		return nil
	}
	c := s.Active()
	if c == nil {
		return nil
	}
	return c.Node(s.SelectedNodeID)
}

// RemoveNode deletes a node from the active canvas, cascades to every edge
// referencing it, and clears the selection if it pointed at the node.
func (s *Store) RemoveNode(id string) {
	c := s.Active()
	if c == nil {
		return
	}
	found := false
	for i, n := range c.Nodes {
		if n.ID == id {
			c.Nodes = append(c.Nodes[:i], c.Nodes[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}
	kept := c.Edges[:0]
	for _, e := range c.Edges {
		if e.SourceID != id && e.TargetID != id {
			kept = append(kept, e)
		}
	}
	c.Edges = kept
	if s.SelectedNodeID == id {
		s.SelectedNodeID = ""
	}
}

// ConnectNodes appends a directed edge in the active canvas. Self-loops
// are rejected, and both endpoints must exist: a dangling edge could
// never be rendered, so it is never stored. Duplicate pairs are allowed
// on purpose: rapid connect gestures must not silently drop.
func (s *Store) ConnectNodes(sourceID, targetID string) *Edge {
	c := s.Active()
	if c == nil {
		return nil
	}
	if sourceID == targetID {
		return nil
	}
	if !c.HasNode(sourceID) || !c.HasNode(targetID) {
		return nil
	}
	e := Edge{ID: uuid.NewString(), SourceID: sourceID, TargetID: targetID}
	c.Edges = append(c.Edges, e)
	return &c.Edges[len(c.Edges)-1]
}

// UpdateNodeConfig merges a partial patch into the node's typed config.
// Fields absent from the patch are preserved.
func (s *Store) UpdateNodeConfig(id string, patch ConfigPatch) {
	c := s.Active()
	if c == nil {
		return
	}
	if n := c.Node(id); n != nil && n.Config != nil {
		n.Config.Apply(patch)
	}
}

// ImportCanvas installs a fully-built canvas (ids preserved) and makes it
// active. Used by the wire layer when loading a serialized workflow.
func (s *Store) ImportCanvas(name, triggerType string, nodes []*Node, edges []Edge) *Canvas {
	s.canvasSeq++
	if name == "" {
		name = fmt.Sprintf("Canvas %d", s.canvasSeq)
	}
	if triggerType == "" {
		triggerType = "manual"
	}
	c := &Canvas{
		ID:          uuid.NewString(),
		Name:        name,
		TriggerType: triggerType,
		Nodes:       nodes,
		Edges:       edges,
	}
	s.canvases = append(s.canvases, c)
	s.ActiveCanvasID = c.ID
	s.SelectedNodeID = ""
	return c
}
