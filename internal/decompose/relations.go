// Package decompose produces 3NF and BCNF decompositions of a relation
// schema. Both entry points return relations as sorted attribute lists,
// with the overall list sorted, so output is stable across runs.
package decompose

import (
	"sort"

	"github.com/renjen/cse132a-hw3/internal/schema"
)

// containsSet reports whether rels already holds a relation equal to rel.
func containsSet(rels []schema.AttrSet, rel schema.AttrSet) bool {
	for _, r := range rels {
		if r.Equal(rel) {
			return true
		}
	}
	return false
}

// sortRelations converts relations to sorted attribute lists and orders
// the list lexicographically.
func sortRelations(rels []schema.AttrSet) [][]string {
	out := make([][]string, len(rels))
	for i, rel := range rels {
		out[i] = rel.Sorted()
	}
	sort.Slice(out, func(i, j int) bool {
		return lessAttrs(out[i], out[j])
	})
	return out
}

func lessAttrs(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
