package layout

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/pagecompose/internal/assets"
	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/footer"
	"git.home.luguber.info/inful/pagecompose/internal/head"
	"git.home.luguber.info/inful/pagecompose/internal/markup"
	"git.home.luguber.info/inful/pagecompose/internal/nav"
	"git.home.luguber.info/inful/pagecompose/internal/page"
)

// Engine is the layout resolver. One Engine serves any number of renders;
// it holds no per-render state, so concurrent renders are safe.
type Engine struct {
	resolver *assets.Resolver
}

// NewEngine creates an engine that resolves asset and page paths through
// res.
func NewEngine(res *assets.Resolver) *Engine {
	return &Engine{resolver: res}
}

// Render composes one Document. Rendering is synchronous and deterministic:
// identical inputs yield byte-identical output. Fatal errors (undeclared
// override block, asset resolution failure) abort before any output exists;
// per-entry navigation failures degrade the nav bar and are reported on the
// Document.
func (e *Engine) Render(base *Template, overrides *Registry, ctx *page.Context) (*Document, error) {
	if base == nil {
		return nil, cerrors.Configuration("no base layout supplied")
	}
	if ctx == nil {
		return nil, cerrors.Configuration("no render context supplied")
	}
	if ctx.Scripts == nil {
		ctx.Scripts = page.NewScriptList()
	}
	if overrides == nil {
		overrides = NewRegistry()
	}

	// Overrides naming blocks the base never declares would be silently
	// dead; fail before producing anything.
	for _, name := range overrides.Names() {
		if !base.Declares(name) {
			return nil, cerrors.Configuration("override references undeclared block").
				WithContext("block", name).
				WithContext("layout", base.Name)
		}
	}

	// Injector assets queue ahead of the base layout's own scripts.
	head.QueueScripts(ctx)
	ctx.Scripts.AppendAll(base.Scripts...)

	headFrags, err := head.Augment(ctx, e.resolver)
	if err != nil {
		return nil, err
	}

	anchors, warnings := nav.Render(ctx.NavLinks, e.resolver.PagePath)
	footerFrag := footer.Render(ctx, e.resolver.PagePath)

	resolve := func(name string) markup.Fragment {
		if ov, ok := overrides.Lookup(name); ok {
			return ov
		}
		switch name {
		case BlockHeader:
			return e.defaultHeader(base, ctx, anchors)
		case BlockFooter:
			return footerFrag
		}
		return base.Blocks[name]
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")

	// Head injection closes before the body opens; the injector's output
	// lives inside the extrahead region, nowhere else.
	writeFragment(&buf, markup.Join(headFrags...))
	writeFragment(&buf, resolve(BlockExtraHead))
	fmt.Fprintf(&buf, "<title>%s</title>\n", markup.EscapeText(base.Title))
	// Assets resolve at the page's own depth so a relative static base
	// works from nested pages too.
	depth := pageDepth(ctx.PageID)
	for _, src := range ctx.Scripts.Paths() {
		srcURL, err := e.resolver.PathTo(src, depth)
		if err != nil {
			return nil, cerrors.Wrap(err, cerrors.CategoryAsset, cerrors.SeverityFatal, "resolve queued script").
				WithContext("script", src)
		}
		fmt.Fprintf(&buf, "<script src=\"%s\"></script>\n", markup.EscapeAttr(srcURL))
	}
	buf.WriteString("</head>\n<body>\n")

	writeRegion(&buf, "header", resolve(BlockHeader))
	writeRegion(&buf, "relbar1", resolve(BlockRelbar1))
	buf.WriteString("<div class=\"document\">\n")
	writeRegion(&buf, "content", resolve(BlockContent))
	writeRegion(&buf, "sidebar", resolve(BlockSidebarSourceLink))
	buf.WriteString("</div>\n")
	writeRegion(&buf, "relbar2", resolve(BlockRelbar2))
	writeRegion(&buf, "footer", resolve(BlockFooter))

	buf.WriteString("</body>\n</html>\n")

	slog.Debug("Composed document",
		"page_id", ctx.PageID,
		"scripts", ctx.Scripts.Len(),
		"nav_warnings", len(warnings))

	return &Document{
		PageID:   ctx.PageID,
		Scripts:  ctx.Scripts.Paths(),
		Warnings: warnings,
		html:     buf.Bytes(),
	}, nil
}

// defaultHeader renders the navigation bar: brand logo, the expanded nav
// anchors, and the right-aligned search form and repository link. With an
// empty link list only the brand and the right-aligned controls render,
// which is a valid state.
func (e *Engine) defaultHeader(base *Template, ctx *page.Context, anchors []nav.Anchor) markup.Fragment {
	frags := make([]markup.Fragment, 0, len(anchors)+3)

	if logo, err := e.resolver.PathTo("images/logo.svg", pageDepth(ctx.PageID)); err == nil {
		frags = append(frags, markup.Fragment(fmt.Sprintf(
			`<a class="brand" href="/index.html"><img src="%s" alt="%s"/></a>`,
			markup.EscapeAttr(logo), markup.EscapeAttr(base.Title))))
	}
	frags = append(frags, nav.Fragments(anchors)...)

	searchAction := "/search.html"
	if href, err := e.resolver.PagePath([]string{"search"}); err == nil {
		searchAction = href
	}
	frags = append(frags, markup.Fragment(fmt.Sprintf(`<div class="right menu">
<form class="search" action="%s" method="get">
<input type="text" name="q" placeholder="%s"/>
</form>
<a class="github" href="%s">GitHub</a>
</div>`,
		markup.EscapeAttr(searchAction),
		markup.EscapeAttr(ctx.Text("search", "Search")),
		footer.RepositoryURL)))

	return markup.Join(frags...)
}

// pageDepth is the directory depth of a page below the site root, e.g.
// "index" -> 0, "nb_tutorials/index" -> 1.
func pageDepth(pageID string) int {
	return strings.Count(pageID, "/")
}

func writeFragment(buf *bytes.Buffer, f markup.Fragment) {
	if f.IsEmpty() {
		return
	}
	buf.WriteString(f.String())
	buf.WriteByte('\n')
}

func writeRegion(buf *bytes.Buffer, id string, f markup.Fragment) {
	fmt.Fprintf(buf, "<div id=\"%s\">\n", id)
	writeFragment(buf, f)
	buf.WriteString("</div>\n")
}
