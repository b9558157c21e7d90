// Package site orchestrates full-site composition: it turns the loaded
// configuration and discovered content into render contexts, drives the
// layout engine page by page, and writes the resulting documents out. The
// engine itself performs no file I/O; this package is the external writer.
package site

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/pagecompose/internal/assets"
	"git.home.luguber.info/inful/pagecompose/internal/config"
	"git.home.luguber.info/inful/pagecompose/internal/content"
	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/gitinfo"
	"git.home.luguber.info/inful/pagecompose/internal/layout"
	"git.home.luguber.info/inful/pagecompose/internal/metrics"
	"git.home.luguber.info/inful/pagecompose/internal/observability"
	"git.home.luguber.info/inful/pagecompose/internal/page"
	"git.home.luguber.info/inful/pagecompose/internal/renderlog"
	"git.home.luguber.info/inful/pagecompose/internal/version"
)

// Builder composes the whole site from one configuration.
type Builder struct {
	cfg      *config.Config
	engine   *layout.Engine
	base     *layout.Template
	loader   *content.Loader
	recorder metrics.Recorder
	log      *renderlog.Store

	lastUpdated string
}

// Option customizes a Builder.
type Option func(*Builder)

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) { b.recorder = r }
}

// WithRenderLog injects a render event log.
func WithRenderLog(s *renderlog.Store) Option {
	return func(b *Builder) { b.log = s }
}

// NewBuilder validates the static base and assembles a Builder. An invalid
// static base fails here, before any page renders.
func NewBuilder(cfg *config.Config, opts ...Option) (*Builder, error) {
	res, err := assets.NewResolver(cfg.StaticBase)
	if err != nil {
		return nil, err
	}
	b := &Builder{
		cfg:      cfg,
		engine:   layout.NewEngine(res),
		base:     layout.DefaultBase(cfg.Title),
		loader:   content.NewLoader(cfg.DocsDir),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.lastUpdated = b.resolveLastUpdated()
	return b, nil
}

// resolveLastUpdated prefers the configured text; when the flag is set but
// the text is empty it falls back to the HEAD commit date of the docs
// repository. Both failures degrade the line, never the build.
func (b *Builder) resolveLastUpdated() string {
	if !b.cfg.Footer.ShowLastUpdated {
		return ""
	}
	if b.cfg.Footer.LastUpdated != "" {
		return b.cfg.Footer.LastUpdated
	}
	line, err := gitinfo.LastUpdated(b.cfg.DocsDir)
	if err != nil {
		observability.DebugContext(context.Background(), "No git metadata for last-updated line")
		return ""
	}
	return line
}

// Context builds the render context for one page from the configuration.
func (b *Builder) Context(pageID string) *page.Context {
	ctx := page.NewContext(pageID)
	ctx.NavLinks = b.cfg.NavLinks()
	ctx.Flags = b.cfg.PageFlags()
	ctx.CopyrightText = b.cfg.Footer.Copyright
	ctx.CopyrightPage = b.cfg.Footer.CopyrightPage
	ctx.LastUpdatedText = b.lastUpdated
	ctx.BuiltWithVersion = version.Version
	ctx.Strings = b.cfg.Strings
	return ctx
}

// RenderPage composes one discovered page and records the outcome.
func (b *Builder) RenderPage(ctx context.Context, p content.Page) (*layout.Document, error) {
	start := time.Now()
	lctx := observability.WithPageID(ctx, p.PageID)

	reg := layout.NewRegistry().Set(layout.BlockContent, p.Body)
	doc, err := b.engine.Render(b.base, reg, b.Context(p.PageID))
	elapsed := time.Since(start)

	outcome := "success"
	warnings := 0
	if err != nil {
		outcome = "failed"
	} else {
		warnings = len(doc.Warnings)
	}
	b.recorder.ObserveRenderDuration(p.PageID, elapsed)
	b.recorder.IncRenderOutcome(outcome)
	b.recorder.IncNavLinkFailures(warnings)

	if b.log != nil {
		ev := renderlog.Event{
			RenderID: observability.GetContext(lctx).RenderID,
			PageID:   p.PageID,
			Outcome:  outcome,
			Duration: elapsed,
			Warnings: warnings,
		}
		if logErr := b.log.Record(ctx, ev); logErr != nil {
			observability.WarnContext(lctx, "Failed to record render event")
		}
	}

	if err != nil {
		observability.ErrorContext(lctx, "Page composition failed")
		return nil, err
	}
	observability.DebugContext(lctx, "Page composed")
	return doc, nil
}

// BuildAll discovers every page and composes it under a fresh render id.
func (b *Builder) BuildAll(ctx context.Context) ([]*layout.Document, error) {
	pages, err := b.loader.Discover()
	if err != nil {
		return nil, err
	}
	rctx := observability.WithRenderID(ctx, uuid.NewString())

	docs := make([]*layout.Document, 0, len(pages))
	for _, p := range pages {
		doc, err := b.RenderPage(rctx, p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	observability.InfoContext(rctx, "Site composed")
	return docs, nil
}

// WriteSite composes every page and serializes the documents under outDir.
func (b *Builder) WriteSite(ctx context.Context, outDir string) error {
	docs, err := b.BuildAll(ctx)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		path := content.OutputPath(outDir, doc.PageID)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "create output directory").
				WithContext("path", path)
		}
		if err := os.WriteFile(path, doc.Bytes(), 0o644); err != nil {
			return cerrors.Wrap(err, cerrors.CategoryFileSystem, cerrors.SeverityFatal, "write document").
				WithContext("path", path)
		}
	}
	return nil
}
