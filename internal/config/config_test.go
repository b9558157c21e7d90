package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
)

const sampleConfig = `
title: PyMC3 Documentation
static_base: _static
docs_dir: ./docs
nav:
  - label: Tutorials
    path: nb_tutorials/index
  - path: nb_examples/index
footer:
  show_copyright: true
  copyright: "2020, The PyMC Development Team"
  copyright_page: copyright
  show_built_with: true
logging:
  level: debug
  format: json
strings:
  search: Suche
`

func TestParseSampleConfig(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "PyMC3 Documentation", cfg.Title)
	assert.Equal(t, "_static", cfg.StaticBase)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Equal(t, "Suche", cfg.Strings["search"])

	links := cfg.NavLinks()
	require.Len(t, links, 2)
	assert.Equal(t, "Tutorials", links[0].Label)
	assert.Equal(t, []string{"nb_tutorials", "index"}, links[0].PathSegments)
	// Missing label derived from the last path segment.
	assert.Equal(t, "Index", links[1].Label)

	flags := cfg.PageFlags()
	assert.True(t, flags.ShowCopyright)
	assert.False(t, flags.ShowLastUpdated)
	assert.True(t, flags.ShowBuiltWith)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("title: Docs\n"))
	require.NoError(t, err)
	assert.Equal(t, "_static", cfg.StaticBase)
	assert.Equal(t, "./docs", cfg.DocsDir)
	assert.Equal(t, "./site", cfg.OutputDir)
	assert.Equal(t, 1326, cfg.Preview.Port)
	assert.Equal(t, time.Hour, cfg.Preview.Interval())
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	// Absent flags default to false.
	assert.False(t, cfg.Footer.ShowCopyright)
	assert.False(t, cfg.Footer.ShowLastUpdated)
	assert.False(t, cfg.Footer.ShowBuiltWith)
}

func TestParsePreviewSettings(t *testing.T) {
	cfg, err := Parse([]byte("title: Docs\npreview:\n  port: 9000\n  metrics: true\n  rebuild_interval: 15m\n"))
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Preview.Port)
	assert.True(t, cfg.Preview.Metrics)
	assert.Equal(t, 15*time.Minute, cfg.Preview.Interval())

	// Metrics stays opt-in: absent means disabled.
	cfg, err = Parse([]byte("title: Docs\n"))
	require.NoError(t, err)
	assert.False(t, cfg.Preview.Metrics)
}

func TestParseRejectsBadRebuildInterval(t *testing.T) {
	_, err := Parse([]byte("title: Docs\npreview:\n  rebuild_interval: soonish\n"))
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.CategoryConfig))
}

func TestParseRejectsNavWithoutPath(t *testing.T) {
	_, err := Parse([]byte("nav:\n  - label: Broken\n"))
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.CategoryConfig))
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("title: [unclosed"))
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.CategoryConfig))
}

func TestNormalizeLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, NormalizeLogLevel("DEBUG"))
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" warn "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("bogus"))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel(""))
}

func TestSlogLevelMapping(t *testing.T) {
	l := LoggingConfig{Level: LogLevelError}
	assert.Equal(t, slog.LevelError, l.SlogLevel())
	l.Level = LogLevelDebug
	assert.Equal(t, slog.LevelDebug, l.SlogLevel())
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvStaticBase, "assets")
	t.Setenv(EnvPort, "8099")
	cfg, err := Parse([]byte("title: Docs\n"))
	require.NoError(t, err)
	cfg.ApplyEnv()
	assert.Equal(t, LogLevelError, cfg.Logging.Level)
	assert.Equal(t, "assets", cfg.StaticBase)
	assert.Equal(t, 8099, cfg.Preview.Port)
}

func TestApplyEnvIgnoresInvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")
	cfg, err := Parse([]byte("title: Docs\n"))
	require.NoError(t, err)
	cfg.ApplyEnv()
	assert.Equal(t, 1326, cfg.Preview.Port)
}
