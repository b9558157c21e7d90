package layout

import (
	"io"

	"git.home.luguber.info/inful/pagecompose/internal/nav"
)

// Document is the final rendered output of one composition. Write-once:
// produced by the engine, owned by the caller thereafter. The external
// writer (documentation pipeline, preview server) serializes it; the engine
// performs no file I/O.
type Document struct {
	PageID string

	// Scripts is the final duplicate-free script queue, in emission order.
	Scripts []string

	// Warnings are the navigation entries dropped during this render.
	Warnings []nav.Warning

	html []byte
}

// Bytes returns the serialized HTML.
func (d *Document) Bytes() []byte { return d.html }

// WriteTo writes the serialized HTML to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.html)
	return int64(n), err
}
