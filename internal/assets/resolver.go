// Package assets resolves static asset paths and site page paths. The head
// injector and the navigation renderer both depend on it; the engine
// constructs one Resolver per site from the configured static base.
package assets

import (
	"fmt"
	"net/url"
	"strings"

	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
)

// PathResolver resolves a sequence of page path segments into a site URL.
// Nav link expansion and the copyright-page link use this signature so the
// caller can substitute resolution behavior in tests.
type PathResolver func(segments []string) (string, error)

// Resolver maps relative asset names and page segment paths onto URLs under
// a validated static base prefix.
type Resolver struct {
	staticBase string
}

// NewResolver validates staticBase and returns a Resolver for it. An empty
// or unparseable base is a fatal asset resolution error: composing a page
// against an unresolvable prefix would emit a Document full of dead asset
// references.
func NewResolver(staticBase string) (*Resolver, error) {
	base := strings.TrimSpace(staticBase)
	if base == "" {
		return nil, cerrors.AssetResolution("static base is empty")
	}
	if strings.ContainsAny(base, " \t\"'<>") {
		return nil, cerrors.AssetResolution("static base contains invalid characters").
			WithContext("static_base", staticBase)
	}
	if _, err := url.Parse(base); err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryAsset, cerrors.SeverityFatal, "static base is not a valid URL prefix").
			WithContext("static_base", staticBase)
	}
	return &Resolver{staticBase: strings.TrimRight(base, "/")}, nil
}

// StaticBase returns the validated, slash-trimmed base prefix.
func (r *Resolver) StaticBase() string { return r.staticBase }

// PathTo resolves a relative asset under the static base. depth is the
// directory depth of the referencing page below the site root; for a
// relative base it prefixes one "../" per level so the asset resolves from
// nested pages. Absolute bases ignore depth.
func (r *Resolver) PathTo(relativeAsset string, depth int) (string, error) {
	rel := strings.TrimLeft(strings.TrimSpace(relativeAsset), "/")
	if rel == "" {
		return "", cerrors.AssetResolution("asset path is empty")
	}
	if strings.Contains(rel, "..") {
		return "", cerrors.AssetResolution("asset path escapes the static base").
			WithContext("asset", relativeAsset)
	}
	base := r.staticBase
	if !isAbsolute(base) && depth > 0 {
		base = strings.Repeat("../", depth) + strings.TrimLeft(base, "/")
	}
	return base + "/" + rel, nil
}

// PagePath resolves page path segments into a root-relative document URL,
// e.g. ["nb_tutorials","index"] -> "/nb_tutorials/index.html". A failed
// resolution is reported with link severity so callers can drop the single
// entry and continue.
func (r *Resolver) PagePath(segments []string) (string, error) {
	if len(segments) == 0 {
		return "", cerrors.LinkResolution("page path has no segments")
	}
	for _, seg := range segments {
		if seg == "" || seg == ".." || strings.ContainsAny(seg, "/\\ ") {
			return "", cerrors.LinkResolution(fmt.Sprintf("invalid page path segment %q", seg)).
				WithContext("segments", strings.Join(segments, "/"))
		}
	}
	return "/" + strings.Join(segments, "/") + ".html", nil
}

// PageID resolves a slash-separated page id (e.g. "nb_examples/index") via
// PagePath.
func (r *Resolver) PageID(pageID string) (string, error) {
	return r.PagePath(strings.Split(strings.Trim(pageID, "/"), "/"))
}

func isAbsolute(base string) bool {
	return strings.HasPrefix(base, "/") || strings.Contains(base, "://")
}
