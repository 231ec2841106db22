// Package textutil holds the case-insensitive string helpers shared by the
// classifier and the metadata mapper.
package textutil

import "golang.org/x/text/cases"

// Fold returns the case-folded form of s.
func Fold(s string) string {
	// A Caser keeps state, so every call gets its own.
	return cases.Fold().String(s)
}

// FoldSet is an immutable set of case-folded strings.
type FoldSet map[string]struct{}

func NewFoldSet(values ...string) FoldSet {
	set := make(FoldSet, len(values))
	for _, value := range values {
		set[Fold(value)] = struct{}{}
	}

	return set
}

func (s FoldSet) Contains(value string) bool {
	_, ok := s[Fold(value)]

	return ok
}
