package commands

import (
	"fmt"
	"os"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

const starterConfig = `title: Documentation
static_base: _static
docs_dir: ./docs
output_dir: ./site

nav:
  - label: Tutorials
    path: nb_tutorials/index
  - label: Examples
    path: nb_examples/index
  - label: API
    path: api/index

footer:
  show_copyright: true
  copyright: "2020, The Development Team"
  show_last_updated: true
  show_built_with: true

logging:
  level: info
  format: text

preview:
  port: 1326
  metrics: true
  rebuild_interval: 1h
`

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if _, err := os.Stat(root.Config); err == nil && !i.Force {
		return cerrors.Configuration("configuration file already exists (use --force to overwrite)").
			WithContext("path", root.Config)
	}
	if err := os.WriteFile(root.Config, []byte(starterConfig), 0o644); err != nil {
		return cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "write configuration file").
			WithContext("path", root.Config)
	}
	fmt.Println("Wrote", root.Config)
	return nil
}
