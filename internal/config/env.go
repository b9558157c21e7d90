package config

import (
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnv. Values override the
// file configuration; .env files are loaded by the CLI before this runs.
const (
	EnvLogLevel   = "PAGECOMPOSE_LOG_LEVEL"
	EnvLogFormat  = "PAGECOMPOSE_LOG_FORMAT"
	EnvStaticBase = "PAGECOMPOSE_STATIC_BASE"
	EnvDocsDir    = "PAGECOMPOSE_DOCS_DIR"
	EnvOutputDir  = "PAGECOMPOSE_OUTPUT_DIR"
	EnvPort       = "PAGECOMPOSE_PORT"
)

// ApplyEnv overlays environment variables onto the loaded configuration.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = NormalizeLogLevel(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = NormalizeLogFormat(v)
	}
	if v := os.Getenv(EnvStaticBase); v != "" {
		c.StaticBase = v
	}
	if v := os.Getenv(EnvDocsDir); v != "" {
		c.DocsDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Preview.Port = port
		}
	}
}
