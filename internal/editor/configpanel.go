package editor

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"
	"github.com/tradeflow/tradeflow/internal/flowgraph"
)

// fieldDef describes one editable config field.
type fieldDef struct {
	Key   string // patch key, matches the wire data key
	Label string
	Hint  string
}

// configFields is the single exhaustive dispatch over node types. Adding
// a node type without a case here fails the coverage test below.
func configFields(t flowgraph.NodeType) []fieldDef {
	switch t {
	case flowgraph.NodeMarketData:
		return []fieldDef{
			{Key: "symbol", Label: "Symbol", Hint: "e.g. BTCUSD"},
		}
	case flowgraph.NodeIndicator:
		return []fieldDef{
			{Key: "period", Label: "Period", Hint: "bars, integer"},
		}
	case flowgraph.NodeOrder:
		return []fieldDef{
			{Key: "orderType", Label: "Order Type", Hint: "market / limit"},
			{Key: "quantity", Label: "Quantity", Hint: "units"},
			{Key: "price", Label: "Price", Hint: "limit price or 'market'"},
		}
	case flowgraph.NodeRisk:
		return []fieldDef{
			{Key: "stopLoss", Label: "Stop Loss", Hint: "e.g. 2%"},
			{Key: "takeProfit", Label: "Take Profit", Hint: "e.g. 6%"},
		}
	case flowgraph.NodeAI:
		return []fieldDef{
			{Key: "model", Label: "Model", Hint: "model name"},
			{Key: "threshold", Label: "Threshold", Hint: "0..1"},
		}
	}
	return nil
}

// beginEdit opens the config panel's edit mode for the selected node.
func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	node := m.store.SelectedNode()
	if node == nil {
		return m, nil
	}
	fields := configFields(node.Type)
	if len(fields) == 0 {
		return m, nil
	}

	data := node.Config.Data()
	m.editing = true
	m.editNodeID = node.ID
	m.editFocus = 0
	m.editKeys = m.editKeys[:0]
	m.editInputs = m.editInputs[:0]
	for _, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 40
		ti.SetValue(formatValue(data[f.Key]))
		m.editKeys = append(m.editKeys, f.Key)
		m.editInputs = append(m.editInputs, ti)
	}
	cmd := m.editInputs[0].Focus()
	return m, cmd
}

// handleEditKeys processes keys while the config panel is in edit mode.
// Every edit commits immediately as a single-key patch; the store is the
// only source of truth, there is no commit-on-blur buffer.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc", "escape", "enter":
		m.editing = false
		m.editKeys = nil
		m.editInputs = nil
		return m, nil

	case "tab", "shift+tab":
		m.editInputs[m.editFocus].Blur()
		if key == "tab" {
			m.editFocus = (m.editFocus + 1) % len(m.editInputs)
		} else {
			m.editFocus = (m.editFocus - 1 + len(m.editInputs)) % len(m.editInputs)
		}
		cmd := m.editInputs[m.editFocus].Focus()
		return m, cmd

	default:
		var cmd tea.Cmd
		m.editInputs[m.editFocus], cmd = m.editInputs[m.editFocus].Update(msg)
		m.store.UpdateNodeConfig(m.editNodeID, flowgraph.ConfigPatch{
			m.editKeys[m.editFocus]: m.editInputs[m.editFocus].Value(),
		})
		return m, cmd
	}
}

// buildConfigPanelLayer renders the per-type field set for the selected
// node, or an empty panel when nothing is selected.
func (m Model) buildConfigPanelLayer(x, y, width, height int) *lipgloss.Layer {
	var lines []string
	add := func(s string) { lines = append(lines, s) }

	node := m.store.SelectedNode()
	if node == nil {
		add(panelTitleStyle.Render("NODE"))
		add(panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))))
		add(panelDimStyle.Render("  (no node selected)"))
	} else {
		spec := Spec(node.Type)
		add(panelTitleStyle.Render(fmt.Sprintf("NODE — %s", strings.ToUpper(spec.Title))))
		add(panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))))
		add(panelTextStyle.Render("  " + node.Label))
		add(panelDimStyle.Render(fmt.Sprintf("  (%d, %d)", node.X, node.Y)))
		add("")

		data := node.Config.Data()
		for i, f := range configFields(node.Type) {
			label := panelKeyStyle.Render("  " + f.Label + ": ")
			var value string
			if m.editing && node.ID == m.editNodeID && i < len(m.editInputs) {
				marker := "  "
				if i == m.editFocus {
					marker = "▸ "
				}
				label = panelKeyStyle.Render(marker + f.Label + ": ")
				value = m.editInputs[i].View()
			} else {
				value = panelTextStyle.Render(formatValue(data[f.Key]))
			}
			add(label + value)
			add(panelDimStyle.Render("    " + f.Hint))
		}
		add("")
		if m.editing && node.ID == m.editNodeID {
			add(panelDimStyle.Render("  [tab] field  [enter/esc] done"))
		} else {
			add(panelDimStyle.Render("  [e] edit fields"))
		}
	}

	if c := m.store.Active(); c != nil {
		add("")
		add(panelTitleStyle.Render("WORKFLOW"))
		add(panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))))
		add(panelTextStyle.Render("  " + c.Name))
		add(panelDimStyle.Render("  trigger: " + c.TriggerType))
		add(panelDimStyle.Render(fmt.Sprintf("  %d nodes, %d edges", len(c.Nodes), len(c.Edges))))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padSidebar(l, width)
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID("config-panel")
}

// formatValue renders a config value for display and editing.
func formatValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
