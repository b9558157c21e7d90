package page

import "git.home.luguber.info/inful/pagecompose/internal/util/sets"

// ScriptList is an insertion-ordered, duplicate-free list of script asset
// paths. Append is idempotent: appending a path already present is a no-op,
// so interleaved queueing from the injector and the base layout cannot
// produce duplicate script tags.
type ScriptList struct {
	order []string
	seen  sets.Set[string]
}

// NewScriptList creates a list pre-populated with the provided paths,
// de-duplicated in first-seen order.
func NewScriptList(paths ...string) *ScriptList {
	l := &ScriptList{seen: sets.New[string]()}
	for _, p := range paths {
		l.Append(p)
	}
	return l
}

// Append adds path at the end of the list unless it is already present.
// It reports whether the path was newly added.
func (l *ScriptList) Append(path string) bool {
	if path == "" || l.seen.Has(path) {
		return false
	}
	l.seen.Add(path)
	l.order = append(l.order, path)
	return true
}

// AppendAll appends each path in order, skipping those already present.
func (l *ScriptList) AppendAll(paths ...string) {
	for _, p := range paths {
		l.Append(p)
	}
}

// Has reports whether path is already queued.
func (l *ScriptList) Has(path string) bool { return l.seen.Has(path) }

// Paths returns a copy of the queued paths in insertion order.
func (l *ScriptList) Paths() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len returns the number of queued paths.
func (l *ScriptList) Len() int { return len(l.order) }
