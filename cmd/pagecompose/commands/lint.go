package commands

import (
	"bytes"
	"context"
	"fmt"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/linkcheck"
	"git.home.luguber.info/inful/pagecompose/internal/site"
	"git.home.luguber.info/inful/pagecompose/internal/util/sets"
)

// LintCmd implements the 'lint' command: compose every page in memory and
// report internal references that resolve to no known page.
type LintCmd struct{}

func (l *LintCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	builder, err := site.NewBuilder(cfg)
	if err != nil {
		return err
	}
	docs, err := builder.BuildAll(context.Background())
	if err != nil {
		return err
	}

	known := sets.New[string]()
	for _, doc := range docs {
		known.Add(doc.PageID)
	}

	findings := 0
	for _, doc := range docs {
		refs, err := linkcheck.Extract(bytes.NewReader(doc.Bytes()))
		if err != nil {
			return err
		}
		for _, ref := range linkcheck.Unresolved(refs, known) {
			findings++
			fmt.Printf("%s: unresolved %s %s=%q\n", doc.PageID, ref.Tag, ref.Attribute, ref.URL)
		}
		for _, w := range doc.Warnings {
			findings++
			fmt.Printf("%s: %s\n", doc.PageID, w)
		}
	}

	if findings > 0 {
		return cerrors.New(cerrors.CategoryValidation, cerrors.SeverityError,
			fmt.Sprintf("%d unresolved reference(s)", findings))
	}
	fmt.Println("No unresolved references")
	return nil
}
