// Package footer renders the footer region: the unconditional project and
// social links block followed by the independently gated attribution lines.
package footer

import (
	"fmt"

	"git.home.luguber.info/inful/pagecompose/internal/assets"
	"git.home.luguber.info/inful/pagecompose/internal/markup"
	"git.home.luguber.info/inful/pagecompose/internal/page"
)

// External link targets. Opaque string constants emitted verbatim; none of
// them is templated or validated here.
const (
	RepositoryURL      = "https://github.com/pymc-devs/pymc3"
	BuildBadgeURL      = "https://travis-ci.org/pymc-devs/pymc3.svg?branch=master"
	CoverageBadgeURL   = "https://coveralls.io/repos/github/pymc-devs/pymc3/badge.svg?branch=master"
	FundingURL         = "https://numfocus.org/donate-to-pymc3"
	NotebookLaunchURL  = "https://mybinder.org/v2/gh/pymc-devs/pymc3/master"
	ContainerImageURL  = "https://hub.docker.com/r/pymc/pymc3"
	MicroblogURL       = "https://twitter.com/pymc_devs"
	DiscussionForumURL = "https://discourse.pymc.io"
)

// Render emits the footer fragment for one render. Line order is fixed:
// links block, copyright, last updated, built with. Each attribution line
// is gated only by its own flag; any subset may render.
func Render(ctx *page.Context, resolve assets.PathResolver) markup.Fragment {
	frags := []markup.Fragment{linksBlock(ctx)}

	if ctx.Flags.ShowCopyright && ctx.CopyrightText != "" {
		frags = append(frags, copyrightLine(ctx, resolve))
	}
	if ctx.Flags.ShowLastUpdated && ctx.LastUpdatedText != "" {
		frags = append(frags, markup.Fragment(fmt.Sprintf(
			`<p class="last-updated">%s</p>`, markup.EscapeText(ctx.LastUpdatedText))))
	}
	if ctx.Flags.ShowBuiltWith {
		frags = append(frags, markup.Fragment(fmt.Sprintf(
			`<p class="built-with">%s pagecompose %s</p>`,
			markup.EscapeText(ctx.Text("built_with", "Built with")),
			markup.EscapeText(ctx.BuiltWithVersion))))
	}
	return markup.Join(frags...)
}

// linksBlock is unconditional: project repository, status badges, funding,
// interactive notebooks, container images, and the two social channels.
func linksBlock(ctx *page.Context) markup.Fragment {
	return markup.Fragment(fmt.Sprintf(`<div class="footer-links">
<a href="%s">%s</a>
<a href="%s"><img src="%s" alt="build status"/></a>
<a href="%s"><img src="%s" alt="coverage"/></a>
<a href="%s">%s</a>
<a href="%s">%s</a>
<a href="%s">%s</a>
<a href="%s">Twitter</a>
<a href="%s">Discourse</a>
</div>`,
		RepositoryURL, markup.EscapeText(ctx.Text("source", "Source")),
		RepositoryURL, BuildBadgeURL,
		RepositoryURL, CoverageBadgeURL,
		FundingURL, markup.EscapeText(ctx.Text("donate", "Donate")),
		NotebookLaunchURL, markup.EscapeText(ctx.Text("try_notebooks", "Try the notebooks")),
		ContainerImageURL, markup.EscapeText(ctx.Text("docker_images", "Docker images")),
		MicroblogURL,
		DiscussionForumURL))
}

// copyrightLine links the copyright text to the configured copyright page
// when one exists and resolves; otherwise the text renders plain. A failed
// resolution here is deliberately non-fatal: the line still appears.
func copyrightLine(ctx *page.Context, resolve assets.PathResolver) markup.Fragment {
	text := markup.EscapeText(ctx.CopyrightText)
	if ctx.CopyrightPage != "" && resolve != nil {
		if href, err := resolve([]string{ctx.CopyrightPage}); err == nil {
			return markup.Fragment(fmt.Sprintf(`<p class="copyright"><a href="%s">&copy; %s</a></p>`,
				markup.EscapeAttr(href), text))
		}
	}
	return markup.Fragment(fmt.Sprintf(`<p class="copyright">&copy; %s</p>`, text))
}
