// Package nav expands ordered navigation link descriptors into anchor
// elements. A single unresolvable entry is dropped with a warning; the rest
// of the bar still renders.
package nav

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/pagecompose/internal/assets"
	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/markup"
	"git.home.luguber.info/inful/pagecompose/internal/page"
)

// Anchor is one resolved navigation entry. Constructed at render time,
// never mutated afterwards.
type Anchor struct {
	Label string
	Href  string
}

// Fragment renders the anchor element.
func (a Anchor) Fragment() markup.Fragment {
	return markup.Fragment(fmt.Sprintf(`<a class="item" href="%s">%s</a>`,
		markup.EscapeAttr(a.Href), markup.EscapeText(a.Label)))
}

// Warning records one dropped navigation entry.
type Warning struct {
	Label string
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("nav entry %q dropped: %v", w.Label, w.Err)
}

// Render resolves each link in input order. Entries that fail to resolve
// are logged, recorded as warnings, and skipped; they never abort the
// render. An empty input yields zero anchors and zero warnings.
func Render(links []page.Link, resolve assets.PathResolver) ([]Anchor, []Warning) {
	anchors := make([]Anchor, 0, len(links))
	var warnings []Warning
	for _, l := range links {
		href, err := resolve(l.PathSegments)
		if err != nil {
			w := Warning{Label: l.Label, Err: cerrors.Wrap(err, cerrors.CategoryLink, cerrors.SeverityWarning, "resolve nav entry")}
			warnings = append(warnings, w)
			slog.Warn("Dropping unresolvable navigation entry", "label", l.Label, "error", err)
			continue
		}
		anchors = append(anchors, Anchor{Label: l.Label, Href: href})
	}
	return anchors, warnings
}

// Fragments renders the anchors in order.
func Fragments(anchors []Anchor) []markup.Fragment {
	out := make([]markup.Fragment, 0, len(anchors))
	for _, a := range anchors {
		out = append(out, a.Fragment())
	}
	return out
}
