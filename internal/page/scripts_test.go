package page

import (
	"reflect"
	"testing"
)

func TestScriptListPreservesInsertionOrder(t *testing.T) {
	l := NewScriptList("js/highlight.min.js", "js/semantic.min.js", "js/gallery.js")
	want := []string{"js/highlight.min.js", "js/semantic.min.js", "js/gallery.js"}
	if got := l.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScriptListAppendIsIdempotent(t *testing.T) {
	l := NewScriptList()
	if !l.Append("js/highlight.min.js") {
		t.Error("first append should report newly added")
	}
	if l.Append("js/highlight.min.js") {
		t.Error("second append of the same path should be a no-op")
	}
	l.AppendAll("js/semantic.min.js", "js/highlight.min.js", "js/semantic.min.js")
	want := []string{"js/highlight.min.js", "js/semantic.min.js"}
	if got := l.Paths(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestScriptListIgnoresEmptyPath(t *testing.T) {
	l := NewScriptList()
	if l.Append("") {
		t.Error("empty path must not be queued")
	}
	if l.Len() != 0 {
		t.Errorf("expected empty list, got %d entries", l.Len())
	}
}

func TestScriptListPathsReturnsCopy(t *testing.T) {
	l := NewScriptList("a.js", "b.js")
	p := l.Paths()
	p[0] = "mutated.js"
	if l.Paths()[0] != "a.js" {
		t.Error("Paths must return a copy, not the backing slice")
	}
}

func TestContextTextFallback(t *testing.T) {
	ctx := NewContext("index")
	if got := ctx.Text("search", "Search"); got != "Search" {
		t.Errorf("expected fallback, got %q", got)
	}
	ctx.Strings = map[string]string{"search": "Suche"}
	if got := ctx.Text("search", "Search"); got != "Suche" {
		t.Errorf("expected translation, got %q", got)
	}
}
