package decompose

import (
	"github.com/renjen/cse132a-hw3/internal/fd"
	"github.com/renjen/cse132a-hw3/internal/schema"
)

// ThreeNF synthesizes a 3NF decomposition of attrs under fds.
//
// Bernstein-style synthesis over a reduced cover: one relation per
// cover FD (left side plus the determined attribute), a key relation
// when no synthesized relation already contains a key, and removal of
// relations contained in another. Cover FDs sharing a left side stay
// separate relations; they are not merged.
func ThreeNF(attrs schema.AttrSet, fds []schema.FD) [][]string {
	cover := fd.ReduceCover(fds)

	var rels []schema.AttrSet
	for _, f := range cover {
		rel := f.Left.Clone()
		rel[f.Right] = true
		rel = rel.Intersect(attrs)
		if !containsSet(rels, rel) {
			rels = append(rels, rel)
		}
	}

	key := fd.FindKey(attrs, cover)
	hasKey := false
	for _, rel := range rels {
		if key.SubsetOf(rel) {
			hasKey = true
			break
		}
	}
	if !hasKey {
		rels = append(rels, key.Clone())
	}

	// Drop relations subsumed by another. Removal only shrinks the
	// list, so a single index-adjusting sweep suffices.
	for i := 0; i < len(rels); {
		subsumed := false
		for j, other := range rels {
			if i != j && rels[i].SubsetOf(other) {
				subsumed = true
				break
			}
		}
		if subsumed {
			rels = append(rels[:i], rels[i+1:]...)
		} else {
			i++
		}
	}

	return sortRelations(rels)
}
