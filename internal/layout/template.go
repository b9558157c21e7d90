// Package layout composes the final HTML document from a base skeleton, a
// block override registry, and a render context. Block resolution is a plain
// two-level lookup: the base declares defaults, the registry supplies
// overrides, overrides win.
package layout

import "git.home.luguber.info/inful/pagecompose/internal/markup"

// Declared block names of the default base layout.
const (
	BlockExtraHead         = "extrahead"
	BlockHeader            = "header"
	BlockRelbar1           = "relbar1"
	BlockRelbar2           = "relbar2"
	BlockSidebarSourceLink = "sidebarsourcelink"
	BlockContent           = "content"
	BlockFooter            = "footer"
)

// Template is a base layout: its declared block set with default content,
// plus the script assets the layout itself queues for every page. Blocks
// whose defaults depend on the render context (header, footer) declare an
// empty static default here; the engine computes them per render.
type Template struct {
	Name   string
	Title  string
	Blocks map[string]markup.Fragment

	// Scripts the base layout queues itself. The head injector's assets
	// are appended to the context list first, so these always follow.
	Scripts []string
}

// Declares reports whether the layout declares the named block.
func (t *Template) Declares(name string) bool {
	_, ok := t.Blocks[name]
	return ok
}

// DefaultBase returns the standard documentation site layout.
func DefaultBase(title string) *Template {
	return &Template{
		Name:  "base",
		Title: title,
		Blocks: map[string]markup.Fragment{
			BlockExtraHead: "",
			BlockHeader:    "", // computed per render unless overridden
			BlockRelbar1: `<div class="related" role="navigation">` +
				`<a href="/index.html">Docs</a> &raquo;</div>`,
			BlockRelbar2: `<div class="related" role="navigation">` +
				`<a href="/index.html">Docs</a> &raquo;</div>`,
			BlockSidebarSourceLink: `<div class="sourcelink">` +
				`<a href="#" rel="nofollow">Show page source</a></div>`,
			BlockContent: "",
			BlockFooter:  "", // computed per render unless overridden
		},
		Scripts: []string{
			"js/jquery.min.js",
			"js/doctools.js",
		},
	}
}
