// Package sorter orders directory entries for display.
//
// Names are compared after Unicode case folding; names that fold to the same
// string are ordered by exact byte comparison, so "Cat.png" sorts before
// "cat.png" and both sort before "Dog.png". The result is a strict total
// order on distinct names.
package sorter

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b.
func Compare(a, b string) int {
	fold := cases.Fold()
	return compareFolded(fold.String(a), a, fold.String(b), b)
}

func compareFolded(fa, a, fb, b string) int {
	if c := strings.Compare(fa, fb); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Sort orders entries in place using the name returned by name for each
// entry. A nil or empty slice is left untouched.
func Sort[E any](entries []E, name func(E) string) {
	if len(entries) < 2 {
		return
	}

	// Fold each name once rather than on every comparison.
	type keyed struct {
		folded string
		name   string
		entry  E
	}
	fold := cases.Fold()
	keys := make([]keyed, len(entries))
	for i, e := range entries {
		n := name(e)
		keys[i] = keyed{folded: fold.String(n), name: n, entry: e}
	}

	slices.SortStableFunc(keys, func(x, y keyed) int {
		return compareFolded(x.folded, x.name, y.folded, y.name)
	})

	for i := range keys {
		entries[i] = keys[i].entry
	}
}

// SortNames orders plain names in place.
func SortNames(names []string) {
	Sort(names, func(s string) string { return s })
}
