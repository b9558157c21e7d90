package commands

import (
	"context"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/pagecompose/internal/metrics"
	"git.home.luguber.info/inful/pagecompose/internal/preview"
	"git.home.luguber.info/inful/pagecompose/internal/renderlog"
	"git.home.luguber.info/inful/pagecompose/internal/site"
)

// PreviewCmd implements the 'preview' command: serve the composed site
// locally, rebuilding on docs changes and on the configured interval.
type PreviewCmd struct {
	Port      int    `short:"p" help:"Preview server port (overrides config)"`
	RenderLog string `name:"render-log" default:":memory:" help:"SQLite file recording render events"`
	NoMetrics bool   `name:"no-metrics" help:"Disable the /metrics endpoint"`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if p.Port != 0 {
		cfg.Preview.Port = p.Port
	}

	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := renderlog.Open(p.RenderLog)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	siteOpts := []site.Option{site.WithRenderLog(store)}
	serverOpts := []preview.Option{preview.WithRenderLog(store)}
	if cfg.Preview.Metrics && !p.NoMetrics {
		pr := metrics.NewPrometheusRecorder(nil)
		siteOpts = append(siteOpts, site.WithRecorder(pr))
		serverOpts = append(serverOpts, preview.WithPrometheus(pr))
	}

	builder, err := site.NewBuilder(cfg, siteOpts...)
	if err != nil {
		return err
	}

	return preview.New(cfg, builder, serverOpts...).Run(sigctx)
}
