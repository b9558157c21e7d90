// Package config loads and normalizes the site configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/page"
)

// Config represents the site configuration
type Config struct {
	Title      string            `yaml:"title"`
	StaticBase string            `yaml:"static_base,omitempty"`
	DocsDir    string            `yaml:"docs_dir,omitempty"`
	OutputDir  string            `yaml:"output_dir,omitempty"`
	Nav        []NavEntry        `yaml:"nav,omitempty"`
	Footer     FooterConfig      `yaml:"footer,omitempty"`
	Logging    LoggingConfig     `yaml:"logging,omitempty"`
	Preview    PreviewConfig     `yaml:"preview,omitempty"`
	Strings    map[string]string `yaml:"strings,omitempty"`
}

// NavEntry is one configured navigation bar entry. Path is slash-separated
// page segments, e.g. "nb_tutorials/index".
type NavEntry struct {
	Label string `yaml:"label,omitempty"`
	Path  string `yaml:"path"`
}

// FooterConfig gates and feeds the footer attribution lines. Absent flags
// default to false.
type FooterConfig struct {
	ShowCopyright   bool   `yaml:"show_copyright,omitempty"`
	Copyright       string `yaml:"copyright,omitempty"`
	CopyrightPage   string `yaml:"copyright_page,omitempty"`
	ShowLastUpdated bool   `yaml:"show_last_updated,omitempty"`
	LastUpdated     string `yaml:"last_updated,omitempty"`
	ShowBuiltWith   bool   `yaml:"show_built_with,omitempty"`
}

// PreviewConfig configures the local preview server. Metrics gates the
// /metrics endpoint; the preview command can still force it off.
type PreviewConfig struct {
	Port            int    `yaml:"port,omitempty"`
	Metrics         bool   `yaml:"metrics,omitempty"`
	RebuildInterval string `yaml:"rebuild_interval,omitempty"` // duration string (default 1h)
}

// Interval returns the parsed periodic rebuild interval.
func (p *PreviewConfig) Interval() time.Duration {
	d, err := time.ParseDuration(p.RebuildInterval)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// Load reads, parses, and normalizes a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryConfig, cerrors.SeverityFatal, "read configuration file").
			WithContext("path", path)
	}
	return Parse(data)
}

// Parse parses and normalizes configuration bytes.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryConfig, cerrors.SeverityFatal, "parse configuration")
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var labelCaser = cases.Title(language.English)

// Normalize fills defaults and derives missing nav labels from the last
// path segment.
func (c *Config) Normalize() {
	if c.Title == "" {
		c.Title = "Documentation"
	}
	if c.StaticBase == "" {
		c.StaticBase = "_static"
	}
	if c.DocsDir == "" {
		c.DocsDir = "./docs"
	}
	if c.OutputDir == "" {
		c.OutputDir = "./site"
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = 1326
	}
	if c.Preview.RebuildInterval == "" {
		c.Preview.RebuildInterval = "1h"
	}
	c.Logging.Normalize()

	for i := range c.Nav {
		c.Nav[i].Path = strings.Trim(c.Nav[i].Path, "/")
		if c.Nav[i].Label == "" {
			segs := strings.Split(c.Nav[i].Path, "/")
			c.Nav[i].Label = labelCaser.String(strings.ReplaceAll(segs[len(segs)-1], "_", " "))
		}
	}
}

// Validate rejects configurations the engine cannot render from.
func (c *Config) Validate() error {
	for i, n := range c.Nav {
		if n.Path == "" {
			return cerrors.Configuration(fmt.Sprintf("nav entry %d has no path", i)).
				WithContext("label", n.Label)
		}
	}
	if _, err := time.ParseDuration(c.Preview.RebuildInterval); err != nil {
		return cerrors.Configuration("preview rebuild_interval is not a valid duration").
			WithContext("rebuild_interval", c.Preview.RebuildInterval)
	}
	return nil
}

// NavLinks converts the configured nav entries into render-context links.
func (c *Config) NavLinks() []page.Link {
	links := make([]page.Link, 0, len(c.Nav))
	for _, n := range c.Nav {
		links = append(links, page.Link{
			Label:        n.Label,
			PathSegments: strings.Split(n.Path, "/"),
		})
	}
	return links
}

// PageFlags maps the footer config onto render-context flags.
func (c *Config) PageFlags() page.Flags {
	return page.Flags{
		ShowCopyright:   c.Footer.ShowCopyright,
		ShowLastUpdated: c.Footer.ShowLastUpdated,
		ShowBuiltWith:   c.Footer.ShowBuiltWith,
	}
}
