package schema

import "sort"

// AttrSet is a set of attribute names.
type AttrSet map[string]bool

// NewAttrSet builds a set from the given attributes.
func NewAttrSet(attrs ...string) AttrSet {
	s := make(AttrSet, len(attrs))
	for _, a := range attrs {
		s[a] = true
	}
	return s
}

// Clone returns an independent copy of the set.
func (s AttrSet) Clone() AttrSet {
	c := make(AttrSet, len(s))
	for a := range s {
		c[a] = true
	}
	return c
}

// SubsetOf reports whether every attribute of s is in other.
func (s AttrSet) SubsetOf(other AttrSet) bool {
	for a := range s {
		if !other[a] {
			return false
		}
	}
	return true
}

// Equal reports whether s and other contain exactly the same attributes.
func (s AttrSet) Equal(other AttrSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Union returns a new set containing the attributes of both s and other.
func (s AttrSet) Union(other AttrSet) AttrSet {
	u := s.Clone()
	for a := range other {
		u[a] = true
	}
	return u
}

// Intersect returns a new set containing attributes present in both sets.
func (s AttrSet) Intersect(other AttrSet) AttrSet {
	r := make(AttrSet)
	for a := range s {
		if other[a] {
			r[a] = true
		}
	}
	return r
}

// Diff returns a new set containing the attributes of s not in other.
func (s AttrSet) Diff(other AttrSet) AttrSet {
	r := make(AttrSet)
	for a := range s {
		if !other[a] {
			r[a] = true
		}
	}
	return r
}

// Sorted returns the attributes in lexicographic order.
func (s AttrSet) Sorted() []string {
	attrs := make([]string, 0, len(s))
	for a := range s {
		attrs = append(attrs, a)
	}
	sort.Strings(attrs)
	return attrs
}

// FD is a functional dependency with a single attribute on the right.
// Multi-attribute right sides are split by the input boundary before
// an FD reaches any algorithm.
type FD struct {
	Left  AttrSet
	Right string
}

// Schema is a relation schema: a name (advisory only), its attribute
// set, and its functional dependencies. Built once by the boundary and
// not mutated afterwards.
type Schema struct {
	Name       string
	Attributes AttrSet
	FDs        []FD
}
