// TradeFlow is a terminal workflow editor for trading-automation pipelines.
//
// Run: go run ./cmd/tradeflow/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/tradeflow/tradeflow/internal/config"
	"github.com/tradeflow/tradeflow/internal/editor"
	"github.com/tradeflow/tradeflow/internal/flowgraph"
	"github.com/tradeflow/tradeflow/internal/pricefeed"
	"github.com/tradeflow/tradeflow/internal/wire"
	"go.uber.org/zap"
)

var version = "0.3.0"

var (
	flagConfig   string
	flagWorkflow string
)

var rootCmd = &cobra.Command{
	Use:   "tradeflow",
	Short: "Visual editor for trading-automation workflows",
	Long: `TradeFlow is a terminal editor for composing trading-automation
pipelines from typed nodes (market data, indicator, order, risk, AI)
wired together on an infinite canvas.`,
	RunE: runEditor,
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	log, err := buildLogger(cfg.Log.File)
	if err != nil {
		return err
	}
	defer log.Sync()

	store := flowgraph.NewStore()
	repo := wire.NewRepository(cfg.Workflows.Dir, log)

	if flagWorkflow != "" {
		data, err := os.ReadFile(flagWorkflow)
		if err != nil {
			return fmt.Errorf("read workflow: %w", err)
		}
		wf, err := wire.Decode(data)
		if err != nil {
			return err
		}
		if _, err := wire.Import(store, wf); err != nil {
			return err
		}
	}

	var feed *pricefeed.Client
	if cfg.Feed.Enabled {
		feed = pricefeed.New(cfg.Feed.URL, cfg.Feed.Symbols, log)
		feed.Start()
		defer feed.Close()
	}

	m := editor.NewModel(editor.Options{
		Store: store,
		Repo:  repo,
		Feed:  feed,
		Log:   log,
	})
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}

// buildLogger writes JSON logs to a file; the TUI owns stdout/stderr.
func buildLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	log, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tradeflow version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tradeflow " + version)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.toml")
	rootCmd.Flags().StringVar(&flagWorkflow, "workflow", "", "workflow JSON to import at startup")
	rootCmd.AddCommand(versionCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tradeflow: %v\n", err)
		os.Exit(1)
	}
}
