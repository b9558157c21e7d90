package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pagecompose/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"pagecompose.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render  RenderCmd  `cmd:"" help:"Compose all pages and write the site to the output directory"`
	Preview PreviewCmd `cmd:"" help:"Serve the composed site locally, rebuilding on docs changes"`
	Lint    LintCmd    `cmd:"" help:"Compose all pages and report unresolved internal references"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; sets up provisional logging until a
// configuration file refines it.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration, applies the environment overlay, and
// reconfigures logging from it. --verbose keeps winning over the file.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if root.Verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	slog.SetDefault(slog.New(cfg.Logging.NewHandler(os.Stderr)))
	return cfg, nil
}
