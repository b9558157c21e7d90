// Package head implements conditional head injection: the unconditional
// meta/analytics/highlight fragments plus the gallery manifest loader that
// only the two gallery index pages receive.
package head

import (
	"fmt"

	"git.home.luguber.info/inful/pagecompose/internal/assets"
	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/markup"
	"git.home.luguber.info/inful/pagecompose/internal/page"
)

// Logical pages that receive the gallery manifest loader. The two branches
// are mutually exclusive: a render sees at most one manifest.
const (
	PageGalleryTutorials = "nb_tutorials/index"
	PageGalleryExamples  = "nb_examples/index"
)

const (
	analyticsAccount = "UA-176578023-1"
	analyticsSrc     = "https://www.google-analytics.com/analytics.js"

	// Id of the empty placeholder script tag the async manifest load
	// replaces. Must match the id the loader fragment targets.
	placeholderID = "exampleloader"

	manifestTutorials = "gallery_tutorials_contents.js"
	manifestExamples  = "gallery_examples_contents.js"

	// Gallery index pages sit one directory below the site root.
	galleryDepth = 1
)

// Script assets queued for every page, ahead of whatever the base layout
// queues itself.
var baseScripts = []string{
	"js/highlight.min.js",
	"js/semantic.min.js",
}

const galleryScript = "js/gallery.js"

// QueueScripts appends the injector's script assets to the context's list.
// It must run before Augment so the injector's assets precede the base
// layout's own queue. Appending is idempotent, so re-running it cannot
// introduce duplicates.
func QueueScripts(ctx *page.Context) {
	ctx.Scripts.AppendAll(baseScripts...)
	if ctx.PageID == PageGalleryTutorials || ctx.PageID == PageGalleryExamples {
		ctx.Scripts.Append(galleryScript)
	}
}

// Augment produces the head fragments for one render, in emission order.
// It is a pure function of the context: identical context and resolver
// yield identical fragments. A resolver failure is fatal; no fragments are
// returned alongside an error.
func Augment(ctx *page.Context, res *assets.Resolver) ([]markup.Fragment, error) {
	if res == nil {
		return nil, cerrors.AssetResolution("no asset resolver configured")
	}

	frags := []markup.Fragment{
		`<meta charset="utf-8"/>`,
		`<meta http-equiv="X-UA-Compatible" content="IE=edge"/>`,
		`<meta name="viewport" content="width=device-width, initial-scale=1"/>`,
		`<meta name="mobile-web-app-capable" content="yes"/>`,
		analyticsBootstrap(),
		`<script>hljs.initHighlightingOnLoad();</script>`,
	}

	var manifest string
	switch ctx.PageID {
	case PageGalleryTutorials:
		manifest = manifestTutorials
	case PageGalleryExamples:
		manifest = manifestExamples
	default:
		return frags, nil
	}

	src, err := res.PathTo(manifest, galleryDepth)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryAsset, cerrors.SeverityFatal, "resolve gallery manifest").
			WithContext("page_id", ctx.PageID).
			WithContext("manifest", manifest)
	}
	frags = append(frags, galleryLoader(src), placeholder())
	return frags, nil
}

// analyticsBootstrap emits the fire-and-forget analytics snippet. The
// collector URL and account id are opaque constants; collection semantics
// live entirely client-side.
func analyticsBootstrap() markup.Fragment {
	return markup.Fragment(fmt.Sprintf(`<script>
(function(i,s,o,g,r,a,m){i['GoogleAnalyticsObject']=r;i[r]=i[r]||function(){
(i[r].q=i[r].q||[]).push(arguments)},i[r].l=1*new Date();a=s.createElement(o),
m=s.getElementsByTagName(o)[0];a.async=1;a.src=g;m.parentNode.insertBefore(a,m)
})(window,document,'script','%s','ga');
ga('create', '%s', 'auto');
ga('send', 'pageview');
</script>`, analyticsSrc, analyticsAccount))
}

// galleryLoader waits for the page load event, then swaps the placeholder
// for an async script tag pointing at the manifest. Load failure is silent:
// the placeholder simply stays unpopulated.
func galleryLoader(src string) markup.Fragment {
	return markup.Fragment(fmt.Sprintf(`<script>
window.addEventListener('load', function () {
  var s = document.createElement('script');
  s.src = '%s';
  s.async = true;
  var p = document.getElementById('%s');
  p.parentNode.replaceChild(s, p);
});
</script>`, markup.EscapeAttr(src), placeholderID))
}

func placeholder() markup.Fragment {
	return markup.Fragment(fmt.Sprintf(`<script id="%s"></script>`, placeholderID))
}
