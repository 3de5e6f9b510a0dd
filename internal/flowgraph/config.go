package flowgraph

import (
	"fmt"
	"strconv"
)

// Coercion defaults applied when a patch value fails to parse.
const (
	DefaultPeriod    = 14
	DefaultQuantity  = 1.0
	DefaultThreshold = 0.5
)

// ConfigPatch is a partial config update. Keys not known to the node's
// config type are dropped; fields not present in the patch keep their value.
type ConfigPatch map[string]any

// NodeConfig is the typed settings variant attached to a node. One concrete
// struct exists per node type, and consumers dispatch exhaustively on Kind.
type NodeConfig interface {
	Kind() NodeType
	// Apply merges a partial patch. Numeric fields coerce with a
	// per-field default on parse failure, so malformed input from the
	// config panel can never store garbage.
	Apply(ConfigPatch)
	// Data returns the open-map form used by the wire format.
	Data() map[string]any
	Clone() NodeConfig
}

// MarketDataConfig configures a market-data fetch node.
type MarketDataConfig struct {
	Symbol string
}

func (c *MarketDataConfig) Kind() NodeType { return NodeMarketData }

func (c *MarketDataConfig) Apply(p ConfigPatch) {
	if v, ok := p["symbol"]; ok {
		c.Symbol = coerceString(v)
	}
}

func (c *MarketDataConfig) Data() map[string]any {
	return map[string]any{"symbol": c.Symbol}
}

func (c *MarketDataConfig) Clone() NodeConfig { d := *c; return &d }

// IndicatorConfig configures a technical-indicator node.
type IndicatorConfig struct {
	Period int
}

func (c *IndicatorConfig) Kind() NodeType { return NodeIndicator }

func (c *IndicatorConfig) Apply(p ConfigPatch) {
	if v, ok := p["period"]; ok {
		c.Period = coerceInt(v, DefaultPeriod)
	}
}

func (c *IndicatorConfig) Data() map[string]any {
	return map[string]any{"period": c.Period}
}

func (c *IndicatorConfig) Clone() NodeConfig { d := *c; return &d }

// OrderConfig configures an order-placement node. Price stays a string:
// it may hold "market" or a broker-side expression, not just a number.
type OrderConfig struct {
	OrderType string
	Quantity  float64
	Price     string
}

func (c *OrderConfig) Kind() NodeType { return NodeOrder }

func (c *OrderConfig) Apply(p ConfigPatch) {
	if v, ok := p["orderType"]; ok {
		c.OrderType = coerceString(v)
	}
	if v, ok := p["quantity"]; ok {
		c.Quantity = coerceFloat(v, DefaultQuantity)
	}
	if v, ok := p["price"]; ok {
		c.Price = coerceString(v)
	}
}

func (c *OrderConfig) Data() map[string]any {
	return map[string]any{
		"orderType": c.OrderType,
		"quantity":  c.Quantity,
		"price":     c.Price,
	}
}

func (c *OrderConfig) Clone() NodeConfig { d := *c; return &d }

// RiskConfig configures a risk-management node.
type RiskConfig struct {
	StopLoss   string
	TakeProfit string
}

func (c *RiskConfig) Kind() NodeType { return NodeRisk }

func (c *RiskConfig) Apply(p ConfigPatch) {
	if v, ok := p["stopLoss"]; ok {
		c.StopLoss = coerceString(v)
	}
	if v, ok := p["takeProfit"]; ok {
		c.TakeProfit = coerceString(v)
	}
}

func (c *RiskConfig) Data() map[string]any {
	return map[string]any{
		"stopLoss":   c.StopLoss,
		"takeProfit": c.TakeProfit,
	}
}

func (c *RiskConfig) Clone() NodeConfig { d := *c; return &d }

// AIConfig configures an AI-agent node.
type AIConfig struct {
	Model     string
	Threshold float64
}

func (c *AIConfig) Kind() NodeType { return NodeAI }

func (c *AIConfig) Apply(p ConfigPatch) {
	if v, ok := p["model"]; ok {
		c.Model = coerceString(v)
	}
	if v, ok := p["threshold"]; ok {
		c.Threshold = coerceFloat(v, DefaultThreshold)
	}
}

func (c *AIConfig) Data() map[string]any {
	return map[string]any{
		"model":     c.Model,
		"threshold": c.Threshold,
	}
}

func (c *AIConfig) Clone() NodeConfig { d := *c; return &d }

// DefaultConfig returns a fresh config for the given node type with the
// same defaults the coercion falls back to.
func DefaultConfig(t NodeType) NodeConfig {
	switch t {
	case NodeMarketData:
		return &MarketDataConfig{}
	case NodeIndicator:
		return &IndicatorConfig{Period: DefaultPeriod}
	case NodeOrder:
		return &OrderConfig{Quantity: DefaultQuantity}
	case NodeRisk:
		return &RiskConfig{}
	case NodeAI:
		return &AIConfig{Threshold: DefaultThreshold}
	}
	return &MarketDataConfig{}
}

// ConfigFromData rebuilds a typed config from the wire-format data map.
func ConfigFromData(t NodeType, data map[string]any) NodeConfig {
	cfg := DefaultConfig(t)
	cfg.Apply(ConfigPatch(data))
	return cfg
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceInt(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		return def
	default:
		return def
	}
}

func coerceFloat(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}
