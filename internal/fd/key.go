package fd

import "github.com/renjen/cse132a-hw3/internal/schema"

// FindKey returns one minimal key of attrs with respect to fds. Other
// minimal keys may exist; this one is determined by lexicographic
// tie-breaks so repeated calls agree.
//
// Seed with the attributes that never appear on a right side (they
// belong to every key), grow until the closure covers everything, then
// shrink in a single pass.
func FindKey(attrs schema.AttrSet, fds []schema.FD) schema.AttrSet {
	rights := make(schema.AttrSet, len(fds))
	for _, f := range fds {
		rights[f.Right] = true
	}

	key := attrs.Diff(rights)
	if len(key) == 0 {
		key[attrs.Sorted()[0]] = true
	}

	for {
		closure := Closure(key, fds)
		if attrs.SubsetOf(closure) {
			break
		}
		missing := attrs.Diff(closure)
		key[missing.Sorted()[0]] = true
	}

	for _, a := range key.Sorted() {
		delete(key, a)
		if !attrs.SubsetOf(Closure(key, fds)) {
			key[a] = true
		}
	}

	return key
}
