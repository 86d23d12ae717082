package decompose

import (
	"github.com/renjen/cse132a-hw3/internal/fd"
	"github.com/renjen/cse132a-hw3/internal/schema"
)

// BCNF decomposes attrs under fds into relations that are all in BCNF.
func BCNF(attrs schema.AttrSet, fds []schema.FD) [][]string {
	rels := split(attrs, fds)

	var unique []schema.AttrSet
	for _, rel := range rels {
		if !containsSet(unique, rel) {
			unique = append(unique, rel)
		}
	}

	return sortRelations(unique)
}

// split recursively partitions attrs around BCNF-violating FDs. Each
// recursive call receives a strictly smaller attribute set, so the
// recursion is bounded by the attribute count.
func split(attrs schema.AttrSet, fds []schema.FD) []schema.AttrSet {
	restricted := restrict(fds, attrs)

	var violating *schema.FD
	for i := range restricted {
		if !attrs.SubsetOf(fd.Closure(restricted[i].Left, restricted)) {
			violating = &restricted[i]
			break
		}
	}

	if violating == nil {
		return []schema.AttrSet{attrs.Clone()}
	}

	x := violating.Left
	xPlus := fd.Closure(x, restricted).Intersect(attrs)

	// R1 keeps the closure, R2 keeps everything the closure did not
	// determine plus the determinant itself, so the split is lossless.
	r1 := xPlus
	r2 := attrs.Diff(xPlus.Diff(x))

	return append(split(r1, fds), split(r2, fds)...)
}

// restrict keeps the FDs meaningful inside a sub-relation: left side
// contained in attrs, right side a member of attrs. Trivial FDs (right
// already in the left side) are dropped: they never extend a closure,
// and treating one as a violation would split attrs into itself.
func restrict(fds []schema.FD, attrs schema.AttrSet) []schema.FD {
	var out []schema.FD
	for _, f := range fds {
		if f.Left[f.Right] {
			continue
		}
		if f.Left.SubsetOf(attrs) && attrs[f.Right] {
			out = append(out, schema.FD{Left: f.Left.Clone(), Right: f.Right})
		}
	}
	return out
}
