package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagecompose/internal/config"
	"git.home.luguber.info/inful/pagecompose/internal/content"
	cerrors "git.home.luguber.info/inful/pagecompose/internal/errors"
	"git.home.luguber.info/inful/pagecompose/internal/renderlog"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	write := func(rel, body string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	write("index.md", "# Welcome\n")
	write("about.md", "# About\n")
	write("nb_tutorials/index.md", "# Tutorials\n")

	cfg, err := config.Parse([]byte("title: Test Docs\n"))
	require.NoError(t, err)
	cfg.DocsDir = dir
	cfg.Nav = []config.NavEntry{
		{Label: "Tutorials", Path: "nb_tutorials/index"},
		{Label: "About", Path: "about"},
	}
	cfg.Footer.ShowCopyright = true
	cfg.Footer.Copyright = "2020, The Dev Team"
	return cfg
}

func TestBuildAll(t *testing.T) {
	b, err := NewBuilder(testConfig(t))
	require.NoError(t, err)

	docs, err := b.BuildAll(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// Deterministic page order (sorted by id).
	assert.Equal(t, "about", docs[0].PageID)
	assert.Equal(t, "index", docs[1].PageID)
	assert.Equal(t, "nb_tutorials/index", docs[2].PageID)

	tutorials := string(docs[2].Bytes())
	assert.Contains(t, tutorials, "gallery_tutorials_contents.js")
	assert.Contains(t, tutorials, "<h1>Tutorials</h1>")
	assert.NotContains(t, string(docs[1].Bytes()), "gallery_")
}

func TestBuilderRejectsBadStaticBase(t *testing.T) {
	cfg := testConfig(t)
	cfg.StaticBase = "bad base"
	_, err := NewBuilder(cfg)
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.CategoryAsset))
}

func TestWriteSite(t *testing.T) {
	b, err := NewBuilder(testConfig(t))
	require.NoError(t, err)

	out := t.TempDir()
	require.NoError(t, b.WriteSite(context.Background(), out))

	data, err := os.ReadFile(content.OutputPath(out, "nb_tutorials/index"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "exampleloader"))

	if _, err := os.Stat(content.OutputPath(out, "index")); err != nil {
		t.Errorf("index page not written: %v", err)
	}
}

func TestBuildRecordsRenderLog(t *testing.T) {
	store, err := renderlog.Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	b, err := NewBuilder(testConfig(t), WithRenderLog(store))
	require.NoError(t, err)
	_, err = b.BuildAll(context.Background())
	require.NoError(t, err)

	events, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, events, 3)
	for _, ev := range events {
		assert.Equal(t, "success", ev.Outcome)
		assert.NotEmpty(t, ev.RenderID)
	}
	// All pages of one build share the render id.
	assert.Equal(t, events[0].RenderID, events[1].RenderID)
}

func TestContextCarriesConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Strings = map[string]string{"search": "Suche"}
	b, err := NewBuilder(cfg)
	require.NoError(t, err)

	ctx := b.Context("index")
	assert.Equal(t, "index", ctx.PageID)
	assert.Len(t, ctx.NavLinks, 2)
	assert.True(t, ctx.Flags.ShowCopyright)
	assert.Equal(t, "2020, The Dev Team", ctx.CopyrightText)
	assert.Equal(t, "Suche", ctx.Text("search", "Search"))
}

func TestLastUpdatedConfiguredTextWins(t *testing.T) {
	cfg := testConfig(t)
	cfg.Footer.ShowLastUpdated = true
	cfg.Footer.LastUpdated = "Last updated on Jan 1, 2021"
	b, err := NewBuilder(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Last updated on Jan 1, 2021", b.Context("index").LastUpdatedText)
}

func TestLastUpdatedAbsentOutsideGitRepo(t *testing.T) {
	cfg := testConfig(t)
	cfg.Footer.ShowLastUpdated = true
	b, err := NewBuilder(cfg)
	require.NoError(t, err)
	// Docs dir is a bare temp dir: no git metadata, line degrades to empty.
	assert.Empty(t, b.Context("index").LastUpdatedText)
}
