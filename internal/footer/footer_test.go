package footer

import (
	"fmt"
	"strings"
	"testing"

	"git.home.luguber.info/inful/pagecompose/internal/assets"
	"git.home.luguber.info/inful/pagecompose/internal/page"
)

func resolver(t *testing.T) assets.PathResolver {
	t.Helper()
	r, err := assets.NewResolver("_static")
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r.PagePath
}

func baseContext() *page.Context {
	ctx := page.NewContext("index")
	ctx.CopyrightText = "2020, The PyMC Development Team"
	ctx.LastUpdatedText = "Last updated on Aug 24, 2020"
	ctx.BuiltWithVersion = "1.4.2"
	return ctx
}

func TestLinksBlockAlwaysPresent(t *testing.T) {
	out := Render(page.NewContext("index"), resolver(t)).String()
	for _, want := range []string{
		RepositoryURL, BuildBadgeURL, CoverageBadgeURL, FundingURL,
		NotebookLaunchURL, ContainerImageURL, MicroblogURL, DiscussionForumURL,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("links block missing %q", want)
		}
	}
}

// All 2^3 flag combinations: exactly the corresponding lines appear, in
// fixed relative order, and no others.
func TestAttributionLinesIndependentlyTogglable(t *testing.T) {
	for mask := 0; mask < 8; mask++ {
		flags := page.Flags{
			ShowCopyright:   mask&1 != 0,
			ShowLastUpdated: mask&2 != 0,
			ShowBuiltWith:   mask&4 != 0,
		}
		t.Run(fmt.Sprintf("%+v", flags), func(t *testing.T) {
			ctx := baseContext()
			ctx.Flags = flags
			out := Render(ctx, resolver(t)).String()

			if got := strings.Contains(out, `class="copyright"`); got != flags.ShowCopyright {
				t.Errorf("copyright line present=%v, flag=%v", got, flags.ShowCopyright)
			}
			if got := strings.Contains(out, `class="last-updated"`); got != flags.ShowLastUpdated {
				t.Errorf("last-updated line present=%v, flag=%v", got, flags.ShowLastUpdated)
			}
			if got := strings.Contains(out, `class="built-with"`); got != flags.ShowBuiltWith {
				t.Errorf("built-with line present=%v, flag=%v", got, flags.ShowBuiltWith)
			}

			// Fixed relative order among whichever lines rendered.
			idx := func(s string) int { return strings.Index(out, s) }
			links := idx(`class="footer-links"`)
			if links != 0 && !strings.HasPrefix(out, "<div") {
				t.Error("links block must lead the footer")
			}
			if flags.ShowCopyright && flags.ShowLastUpdated && idx(`class="copyright"`) > idx(`class="last-updated"`) {
				t.Error("copyright must precede last-updated")
			}
			if flags.ShowLastUpdated && flags.ShowBuiltWith && idx(`class="last-updated"`) > idx(`class="built-with"`) {
				t.Error("last-updated must precede built-with")
			}
			if flags.ShowCopyright && flags.ShowBuiltWith && idx(`class="copyright"`) > idx(`class="built-with"`) {
				t.Error("copyright must precede built-with")
			}
		})
	}
}

func TestCopyrightLink(t *testing.T) {
	ctx := baseContext()
	ctx.Flags.ShowCopyright = true
	ctx.CopyrightPage = "copyright"
	out := Render(ctx, resolver(t)).String()
	if !strings.Contains(out, `<a href="/copyright.html">`) {
		t.Errorf("expected linked copyright line, got %q", out)
	}

	// Unresolvable target degrades to plain text, not an error.
	ctx.CopyrightPage = "bad page"
	out = Render(ctx, resolver(t)).String()
	if strings.Contains(out, "<a href") && strings.Contains(out, "bad page") {
		t.Error("unresolvable copyright page must fall back to plain text")
	}
	if !strings.Contains(out, "The PyMC Development Team") {
		t.Error("copyright text must still render when its link target fails")
	}
}

func TestLastUpdatedRequiresText(t *testing.T) {
	ctx := baseContext()
	ctx.Flags.ShowLastUpdated = true
	ctx.LastUpdatedText = ""
	out := Render(ctx, resolver(t)).String()
	if strings.Contains(out, "last-updated") {
		t.Error("last-updated line requires both the flag and the text")
	}
}

func TestBuiltWithEmbedsVersion(t *testing.T) {
	ctx := baseContext()
	ctx.Flags.ShowBuiltWith = true
	out := Render(ctx, resolver(t)).String()
	if !strings.Contains(out, "1.4.2") {
		t.Errorf("built-with line must embed the version, got %q", out)
	}
}

func TestTranslatedStrings(t *testing.T) {
	ctx := baseContext()
	ctx.Strings = map[string]string{"donate": "Spenden"}
	out := Render(ctx, resolver(t)).String()
	if !strings.Contains(out, "Spenden") {
		t.Error("translated link label should be used when supplied")
	}
}
