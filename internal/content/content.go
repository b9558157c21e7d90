// Package content discovers markdown pages under the docs directory and
// renders their bodies into content-block fragments. It stands in for the
// documentation pipeline that supplies page content to the engine.
package content

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/markup"
)

// Page is one discovered documentation page.
type Page struct {
	// PageID is the slash-separated path relative to the docs dir without
	// extension, e.g. "nb_tutorials/index".
	PageID string
	// Path is the absolute source file path.
	Path string
	// Body is the rendered content-block fragment.
	Body markup.Fragment
}

// Loader discovers and renders markdown pages.
type Loader struct {
	docsDir string
	md      goldmark.Markdown
}

// NewLoader creates a loader rooted at docsDir.
func NewLoader(docsDir string) *Loader {
	return &Loader{
		docsDir: docsDir,
		md:      goldmark.New(),
	}
}

// Discover walks the docs directory and returns all markdown pages with
// rendered bodies, sorted by page id for deterministic build order.
func (l *Loader) Discover() ([]Page, error) {
	root, err := filepath.Abs(l.docsDir)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "resolve docs directory").
			WithContext("docs_dir", l.docsDir)
	}
	if _, err := os.Stat(root); err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryContent, cerrors.SeverityFatal, "docs directory not accessible").
			WithContext("docs_dir", root)
	}

	var pages []Page
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		p, err := l.load(root, path)
		if err != nil {
			return err
		}
		pages = append(pages, p)
		return nil
	})
	if err != nil {
		if _, ok := err.(*cerrors.ComposeError); ok {
			return nil, err
		}
		return nil, cerrors.Wrap(err, cerrors.CategoryContent, cerrors.SeverityFatal, "walk docs directory")
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].PageID < pages[j].PageID })
	return pages, nil
}

// Load renders a single page given its path relative to the docs dir.
func (l *Loader) Load(relPath string) (Page, error) {
	root, err := filepath.Abs(l.docsDir)
	if err != nil {
		return Page{}, cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "resolve docs directory")
	}
	return l.load(root, filepath.Join(root, relPath))
}

func (l *Loader) load(root, path string) (Page, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Page{}, cerrors.Wrap(err, cerrors.CategoryContent, cerrors.SeverityFatal, "read page source").
			WithContext("path", path)
	}

	var buf bytes.Buffer
	if err := l.md.Convert(raw, &buf); err != nil {
		return Page{}, cerrors.Wrap(err, cerrors.CategoryContent, cerrors.SeverityFatal, "render markdown").
			WithContext("path", path)
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Page{}, cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "relativize page path").
			WithContext("path", path)
	}
	id := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))

	return Page{
		PageID: id,
		Path:   path,
		Body:   markup.Fragment(buf.String()),
	}, nil
}

// OutputPath maps a page id onto its output file path under outDir,
// mirroring the resolver's "/<id>.html" URL scheme.
func OutputPath(outDir, pageID string) string {
	return filepath.Join(outDir, filepath.FromSlash(pageID)+".html")
}
