package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/pagecompose/internal/renderlog"
	"git.home.luguber.info/inful/pagecompose/internal/site"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Output    string `short:"o" help:"Output directory for the composed site (overrides config)"`
	RenderLog string `name:"render-log" help:"SQLite file recording render events (empty disables)"`
}

func (r *RenderCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	outputDir := cfg.OutputDir
	if r.Output != "" {
		outputDir = r.Output
	}

	opts := []site.Option{}
	if r.RenderLog != "" {
		store, err := renderlog.Open(r.RenderLog)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		opts = append(opts, site.WithRenderLog(store))
	}

	builder, err := site.NewBuilder(cfg, opts...)
	if err != nil {
		return err
	}

	slog.Info("Composing site", "docs", cfg.DocsDir, "output", outputDir)
	if err := builder.WriteSite(context.Background(), outputDir); err != nil {
		return err
	}
	fmt.Println("Site written to", outputDir)
	return nil
}
