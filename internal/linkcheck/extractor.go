// Package linkcheck extracts link references from composed documents so the
// lint command and preview status page can report internal references that
// resolve to no known page.
package linkcheck

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/util/sets"
)

// Reference is one extracted link from a composed document.
type Reference struct {
	URL        string // the href/src value
	Tag        string // html tag (a, img, script, link)
	Attribute  string // attribute containing the link
	IsInternal bool   // true for root-relative document references
}

// Extract collects anchor, image, script, and stylesheet references from an
// HTML document.
func Extract(r io.Reader) ([]Reference, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryValidation, cerrors.SeverityError, "parse composed document")
	}

	var refs []Reference
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if ref, ok := elementReference(n); ok {
				refs = append(refs, ref)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return refs, nil
}

func elementReference(n *html.Node) (Reference, bool) {
	var attr string
	switch n.Data {
	case "a", "link":
		attr = "href"
	case "img", "script":
		attr = "src"
	default:
		return Reference{}, false
	}
	val := getAttr(n, attr)
	if val == "" {
		return Reference{}, false
	}
	return Reference{
		URL:        val,
		Tag:        n.Data,
		Attribute:  attr,
		IsInternal: isInternal(val),
	}, true
}

func getAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// isInternal treats root-relative paths as site-internal. Fragment-only and
// scheme-qualified references are external concerns.
func isInternal(ref string) bool {
	if strings.HasPrefix(ref, "#") || strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") {
		return false
	}
	return strings.HasPrefix(ref, "/")
}

// Unresolved returns the internal document references (".html" targets)
// that name no known page id. knownPages holds page ids like
// "nb_tutorials/index".
func Unresolved(refs []Reference, knownPages sets.Set[string]) []Reference {
	var missing []Reference
	for _, ref := range refs {
		if !ref.IsInternal {
			continue
		}
		path := ref.URL
		if i := strings.IndexAny(path, "?#"); i >= 0 {
			path = path[:i]
		}
		if !strings.HasSuffix(path, ".html") {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(path, "/"), ".html")
		if id == "search" {
			// The search route is served by an external backend.
			continue
		}
		if !knownPages.Has(id) {
			missing = append(missing, ref)
		}
	}
	return missing
}
