package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tradeflow/tradeflow/internal/wire"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	dim     = color.New(color.FgHiBlack)
	warn    = color.New(color.FgYellow)
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <workflow.json>",
	Short: "Print a summary of a saved workflow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		wf, err := wire.Decode(data)
		if err != nil {
			return err
		}

		heading.Printf("%s", wf.Name)
		if wf.Description != "" {
			dim.Printf("  — %s", wf.Description)
		}
		fmt.Println()
		dim.Printf("trigger: %s  nodes: %d  connections: %d\n\n",
			wf.TriggerType, len(wf.Nodes), len(wf.Connections))

		byID := make(map[string]wire.Node, len(wf.Nodes))
		for _, n := range wf.Nodes {
			byID[n.ID] = n
			fmt.Printf("  %-12s (%.0f,%.0f)  ", n.Type, n.Position.X, n.Position.Y)
			if label, ok := n.Data["label"].(string); ok && label != "" {
				fmt.Print(label)
			}
			fmt.Println()
		}
		fmt.Println()
		for _, c := range wf.Connections {
			src, okS := byID[c.Source]
			dst, okT := byID[c.Target]
			if !okS || !okT {
				warn.Printf("  ! dangling connection %s\n", c.ID)
				continue
			}
			fmt.Printf("  %s → %s\n", src.Type, dst.Type)
		}
		return nil
	},
}
