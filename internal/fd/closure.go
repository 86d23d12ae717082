// Package fd implements the dependency algorithms underlying schema
// normalization: attribute closure, cover reduction, and key discovery.
package fd

import "github.com/renjen/cse132a-hw3/internal/schema"

// Closure computes the attribute closure of attrs under fds: the
// smallest superset of attrs closed under every FD. Fixed-point scan;
// the result does not depend on FD order. Never fails — with no
// applicable FDs the input set comes back unchanged (as a copy).
func Closure(attrs schema.AttrSet, fds []schema.FD) schema.AttrSet {
	closure := attrs.Clone()
	changed := true
	for changed {
		changed = false
		for _, f := range fds {
			if f.Left.SubsetOf(closure) && !closure[f.Right] {
				closure[f.Right] = true
				changed = true
			}
		}
	}
	return closure
}
