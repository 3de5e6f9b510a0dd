package editor

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/tradeflow/tradeflow/internal/flowgraph"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Palette: dark slate with one accent per node family.
var (
	colorBG      = c("#0b0e14")
	colorPanelBG = c("#12161f")

	nodeColors = map[flowgraph.NodeType]struct{ border, text color.Color }{
		flowgraph.NodeMarketData: {border: c("#39b8d8"), text: c("#7fdcf2")},
		flowgraph.NodeIndicator:  {border: c("#4fd47f"), text: c("#93f2b4")},
		flowgraph.NodeOrder:      {border: c("#e0a63c"), text: c("#f5cd84")},
		flowgraph.NodeRisk:       {border: c("#e05c5c"), text: c("#f59a9a")},
		flowgraph.NodeAI:         {border: c("#b07fe8"), text: c("#d4b4f7")},
	}

	selBorder = c("#f2f2f2")
	selText   = c("#ffffff")
	selBG     = c("#1a2030")

	toolbarColor = c("#7fdcf2")
	footerColor  = c("#5a6478")
	statusColor  = c("#e0a63c")
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#101624")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Background(colorBG).
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	panelBGStyle = lipgloss.NewStyle().
			Background(colorPanelBG)

	sepStyle = lipgloss.NewStyle().
			Foreground(c("#262e3f")).
			Background(colorBG)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#7fdcf2")).
			Background(colorPanelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#454f63")).
			Background(colorPanelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#aeb8cc")).
			Background(colorPanelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#e0a63c")).
			Background(colorPanelBG)

	panelActiveStyle = lipgloss.NewStyle().
				Foreground(c("#ffffff")).
				Background(c("#1f2940")).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(statusColor).
			Background(colorBG)
)

func borderForType(t flowgraph.NodeType) lipgloss.Border {
	switch t {
	case flowgraph.NodeMarketData:
		return lipgloss.RoundedBorder()
	case flowgraph.NodeAI:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
