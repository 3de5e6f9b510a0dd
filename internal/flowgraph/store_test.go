package flowgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCanvasSequentialNames(t *testing.T) {
	s := NewStore()
	c1 := s.AddCanvas("")
	c2 := s.AddCanvas("")
	assert.Equal(t, "Canvas 1", c1.Name)
	assert.Equal(t, "Canvas 2", c2.Name)
	assert.Equal(t, c2.ID, s.ActiveCanvasID, "newest canvas becomes active")
}

func TestAddCanvasExplicitName(t *testing.T) {
	s := NewStore()
	c := s.AddCanvas("momentum")
	assert.Equal(t, "momentum", c.Name)
	assert.Equal(t, "manual", c.TriggerType)
}

func TestAddNodeImplicitFirstCanvas(t *testing.T) {
	s := NewStore()
	n := s.AddNode(NodeMarketData, 10, 20, "")
	require.NotNil(t, n)
	require.NotNil(t, s.Active(), "first node placement creates a canvas")
	assert.Equal(t, "market_data", n.Label, "label defaults to type")
	assert.Equal(t, 10, n.X)
	assert.Equal(t, 20, n.Y)
}

func TestAddNodeCountMatchesCalls(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	for i := 0; i < 25; i++ {
		require.NotNil(t, s.AddNode(NodeIndicator, i, i, ""))
	}
	assert.Len(t, s.Active().Nodes, 25)
}

func TestAddNodeUniqueIDs(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := s.AddNode(NodeOrder, 0, 0, "")
		assert.False(t, seen[n.ID], "duplicate node id %s", n.ID)
		seen[n.ID] = true
	}
}

func TestMoveNodeOverwritesExactly(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	n := s.AddNode(NodeRisk, 5, 5, "")
	s.MoveNode(n.ID, 100, 200)
	s.MoveNode(n.ID, -7, 3)
	assert.Equal(t, -7, n.X, "negative coordinates allowed, no clamping")
	assert.Equal(t, 3, n.Y)
}

func TestMoveUnknownNodeIsNoop(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	n := s.AddNode(NodeAI, 1, 2, "")
	s.MoveNode("nope", 9, 9)
	assert.Equal(t, 1, n.X)
	assert.Equal(t, 2, n.Y)
}

func TestRemoveNodeCascadesEdges(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	a := s.AddNode(NodeMarketData, 0, 0, "")
	b := s.AddNode(NodeIndicator, 30, 0, "")
	c := s.AddNode(NodeOrder, 60, 0, "")
	require.NotNil(t, s.ConnectNodes(a.ID, b.ID))
	require.NotNil(t, s.ConnectNodes(b.ID, c.ID))
	require.NotNil(t, s.ConnectNodes(a.ID, c.ID))

	s.RemoveNode(b.ID)

	cv := s.Active()
	require.Len(t, cv.Edges, 1)
	assert.Equal(t, a.ID, cv.Edges[0].SourceID)
	assert.Equal(t, c.ID, cv.Edges[0].TargetID)
	for _, e := range cv.Edges {
		assert.NotEqual(t, b.ID, e.SourceID)
		assert.NotEqual(t, b.ID, e.TargetID)
	}
}

func TestRemoveNodeClearsSelection(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	n := s.AddNode(NodeAI, 0, 0, "")
	s.SelectNode(n.ID)
	s.RemoveNode(n.ID)
	assert.Empty(t, s.SelectedNodeID)
}

func TestRemoveNodeKeepsUnrelatedSelection(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	a := s.AddNode(NodeAI, 0, 0, "")
	b := s.AddNode(NodeRisk, 30, 0, "")
	s.SelectNode(a.ID)
	s.RemoveNode(b.ID)
	assert.Equal(t, a.ID, s.SelectedNodeID)
}

func TestConnectSelfLoopRejected(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	a := s.AddNode(NodeMarketData, 0, 0, "")
	for i := 0; i < 3; i++ {
		assert.Nil(t, s.ConnectNodes(a.ID, a.ID))
	}
	assert.Empty(t, s.Active().Edges)
}

func TestConnectValidatesEndpoints(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	a := s.AddNode(NodeMarketData, 0, 0, "")
	assert.Nil(t, s.ConnectNodes(a.ID, "missing"))
	assert.Nil(t, s.ConnectNodes("missing", a.ID))
	assert.Empty(t, s.Active().Edges)
}

func TestConnectAllowsDuplicates(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	a := s.AddNode(NodeMarketData, 0, 0, "")
	b := s.AddNode(NodeOrder, 30, 0, "")
	require.NotNil(t, s.ConnectNodes(a.ID, b.ID))
	require.NotNil(t, s.ConnectNodes(a.ID, b.ID))
	assert.Len(t, s.Active().Edges, 2, "duplicate pairs are kept, not deduplicated")
}

func TestConnectDoesNotCrossCanvases(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	a := s.AddNode(NodeMarketData, 0, 0, "")
	c2 := s.AddCanvas("")
	b := s.AddNode(NodeOrder, 0, 0, "")
	// a lives in canvas 1, b in canvas 2 (active)
	assert.Nil(t, s.ConnectNodes(a.ID, b.ID))
	assert.Empty(t, c2.Edges)
}

func TestSetActiveCanvasClearsSelection(t *testing.T) {
	s := NewStore()
	c1 := s.AddCanvas("")
	n := s.AddNode(NodeIndicator, 0, 0, "")
	c2 := s.AddCanvas("")
	s.SetActiveCanvas(c1.ID)
	s.SelectNode(n.ID)
	s.SetActiveCanvas(c2.ID)
	assert.Empty(t, s.SelectedNodeID)
}

func TestSetActiveCanvasUnknownIsNoop(t *testing.T) {
	s := NewStore()
	c := s.AddCanvas("")
	s.SetActiveCanvas("bogus")
	assert.Equal(t, c.ID, s.ActiveCanvasID)
}

func TestSelectedNodeToleratesStaleID(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	s.SelectNode("long-gone")
	assert.Nil(t, s.SelectedNode())
}

func TestCanvasIsolation(t *testing.T) {
	s := NewStore()
	c1 := s.AddCanvas("")
	s.AddNode(NodeMarketData, 0, 0, "")
	s.AddCanvas("")
	s.AddNode(NodeOrder, 0, 0, "")
	s.AddNode(NodeRisk, 0, 0, "")

	assert.Len(t, c1.Nodes, 1)
	assert.Len(t, s.Active().Nodes, 2)
}

func TestRemoveCanvasPromotesFirstRemaining(t *testing.T) {
	s := NewStore()
	c1 := s.AddCanvas("")
	c2 := s.AddCanvas("")
	s.RemoveCanvas(c2.ID)
	assert.Equal(t, c1.ID, s.ActiveCanvasID)
	s.RemoveCanvas(c1.ID)
	assert.Empty(t, s.ActiveCanvasID)
	assert.Empty(t, s.Canvases())
}

func TestUpdateNodeConfigPreservesOtherFields(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	n := s.AddNode(NodeOrder, 0, 0, "")
	s.UpdateNodeConfig(n.ID, ConfigPatch{"orderType": "limit"})
	s.UpdateNodeConfig(n.ID, ConfigPatch{"price": "42000"})

	cfg := n.Config.(*OrderConfig)
	assert.Equal(t, "limit", cfg.OrderType, "earlier patch preserved")
	assert.Equal(t, "42000", cfg.Price)
	assert.Equal(t, DefaultQuantity, cfg.Quantity, "untouched field keeps default")
}

func TestUpdateNodeConfigUnknownNodeIsNoop(t *testing.T) {
	s := NewStore()
	s.AddCanvas("")
	s.UpdateNodeConfig("ghost", ConfigPatch{"symbol": "BTCUSD"}) // must not panic
}
