// Package sets provides the membership set backing the script queue and
// link checking.
package sets

// Set records membership for comparable keys.
type Set[T comparable] map[T]struct{}

// New creates a set holding vals.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}
