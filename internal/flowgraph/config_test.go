package flowgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorPeriodCoercion(t *testing.T) {
	cfg := &IndicatorConfig{Period: 20}
	cfg.Apply(ConfigPatch{"period": "abc"})
	assert.Equal(t, DefaultPeriod, cfg.Period, "unparseable period falls back to default")

	cfg.Apply(ConfigPatch{"period": "30"})
	assert.Equal(t, 30, cfg.Period)

	cfg.Apply(ConfigPatch{"period": float64(9)}) // JSON numbers decode as float64
	assert.Equal(t, 9, cfg.Period)
}

func TestOrderQuantityCoercion(t *testing.T) {
	cfg := &OrderConfig{}
	cfg.Apply(ConfigPatch{"quantity": "not a number"})
	assert.Equal(t, DefaultQuantity, cfg.Quantity)

	cfg.Apply(ConfigPatch{"quantity": "2.5"})
	assert.Equal(t, 2.5, cfg.Quantity)
}

func TestAIThresholdCoercion(t *testing.T) {
	cfg := &AIConfig{}
	cfg.Apply(ConfigPatch{"threshold": ""})
	assert.Equal(t, DefaultThreshold, cfg.Threshold)

	cfg.Apply(ConfigPatch{"threshold": "0.85", "model": "gpt-4"})
	assert.Equal(t, 0.85, cfg.Threshold)
	assert.Equal(t, "gpt-4", cfg.Model)
}

func TestApplyIgnoresUnknownKeys(t *testing.T) {
	cfg := &MarketDataConfig{Symbol: "ETHUSD"}
	cfg.Apply(ConfigPatch{"bogus": 1, "period": 99})
	assert.Equal(t, "ETHUSD", cfg.Symbol)
}

func TestDefaultConfigKinds(t *testing.T) {
	for _, nt := range NodeTypes {
		cfg := DefaultConfig(nt)
		require.NotNil(t, cfg)
		assert.Equal(t, nt, cfg.Kind())
	}
}

func TestConfigFromDataRoundTrip(t *testing.T) {
	orig := &OrderConfig{OrderType: "limit", Quantity: 3, Price: "101.5"}
	rebuilt := ConfigFromData(NodeOrder, orig.Data())
	assert.Equal(t, orig, rebuilt)
}

func TestCloneIsIndependent(t *testing.T) {
	a := &RiskConfig{StopLoss: "2%"}
	b := a.Clone().(*RiskConfig)
	b.StopLoss = "5%"
	assert.Equal(t, "2%", a.StopLoss)
}
