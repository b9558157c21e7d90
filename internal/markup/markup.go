// Package markup defines the Fragment type shared by the fragment builders
// (head, nav, footer) and the layout engine, plus the escaping helpers they
// use. Fragments are trusted HTML produced by this module's own builders;
// all externally supplied text is escaped before it enters a Fragment.
package markup

import (
	"html"
	"strings"
)

// Fragment is a self-contained piece of markup destined for one document
// region. The zero value is the empty fragment.
type Fragment string

// String returns the fragment's HTML.
func (f Fragment) String() string { return string(f) }

// IsEmpty reports whether the fragment renders nothing.
func (f Fragment) IsEmpty() bool { return strings.TrimSpace(string(f)) == "" }

// Join concatenates fragments with newlines, skipping empty ones.
func Join(frags ...Fragment) Fragment {
	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		if !f.IsEmpty() {
			parts = append(parts, string(f))
		}
	}
	return Fragment(strings.Join(parts, "\n"))
}

// EscapeText escapes s for use as HTML text content.
func EscapeText(s string) string { return html.EscapeString(s) }

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string { return html.EscapeString(s) }
