package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeflow/tradeflow/internal/flowgraph"
)

// Every node type must dispatch to a field set; a missing case in
// configFields shows up here.
func TestConfigFieldsCoverAllNodeTypes(t *testing.T) {
	for _, nt := range flowgraph.NodeTypes {
		assert.NotEmpty(t, configFields(nt), "no config fields for %s", nt)
	}
}

func TestConfigFieldKeysMatchWireData(t *testing.T) {
	for _, nt := range flowgraph.NodeTypes {
		data := flowgraph.DefaultConfig(nt).Data()
		for _, f := range configFields(nt) {
			_, ok := data[f.Key]
			assert.True(t, ok, "%s field %q has no wire data key", nt, f.Key)
		}
	}
}

func TestConfigFieldSets(t *testing.T) {
	keys := func(nt flowgraph.NodeType) []string {
		var out []string
		for _, f := range configFields(nt) {
			out = append(out, f.Key)
		}
		return out
	}
	assert.Equal(t, []string{"symbol"}, keys(flowgraph.NodeMarketData))
	assert.Equal(t, []string{"period"}, keys(flowgraph.NodeIndicator))
	assert.Equal(t, []string{"orderType", "quantity", "price"}, keys(flowgraph.NodeOrder))
	assert.Equal(t, []string{"stopLoss", "takeProfit"}, keys(flowgraph.NodeRisk))
	assert.Equal(t, []string{"model", "threshold"}, keys(flowgraph.NodeAI))
}

func TestBeginEditSeedsInputsFromConfig(t *testing.T) {
	m := newTestModel()
	n := m.Store().AddNode(flowgraph.NodeIndicator, 5, 5, "")
	m.Store().SelectNode(n.ID)

	next, _ := m.beginEdit()
	m = next.(Model)

	require.True(t, m.editing)
	require.Equal(t, []string{"period"}, m.editKeys)
	require.Len(t, m.editInputs, 1)
	assert.Equal(t, "14", m.editInputs[0].Value(), "input seeded from current config")
	assert.Equal(t, n.ID, m.editNodeID)
}

func TestBeginEditWithoutSelectionNoop(t *testing.T) {
	m := newTestModel()
	m.Store().AddNode(flowgraph.NodeOrder, 5, 5, "")

	next, _ := m.beginEdit()
	m = next.(Model)

	assert.False(t, m.editing)
	assert.Empty(t, m.editInputs)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "market", formatValue("market"))
	assert.Equal(t, "14", formatValue(14))
	assert.Equal(t, "0.5", formatValue(0.5))
	assert.Equal(t, "1", formatValue(1.0))
}
