package fd

import (
	"testing"

	"github.com/renjen/cse132a-hw3/internal/schema"
)

func fdOf(left []string, right string) schema.FD {
	return schema.FD{Left: schema.NewAttrSet(left...), Right: right}
}

func TestClosureChain(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "C"),
	}

	got := Closure(schema.NewAttrSet("A"), fds)
	if !got.Equal(schema.NewAttrSet("A", "B", "C")) {
		t.Fatalf("Closure(A) = %v", got.Sorted())
	}
}

func TestClosureIsSuperset(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A", "B"}, "C"),
	}
	start := schema.NewAttrSet("A", "D")

	got := Closure(start, fds)
	if !start.SubsetOf(got) {
		t.Errorf("closure %v does not contain input %v", got.Sorted(), start.Sorted())
	}
	// A alone does not trigger AB -> C.
	if got["C"] {
		t.Errorf("closure %v should not contain C", got.Sorted())
	}
}

func TestClosureIdempotent(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "C"),
		fdOf([]string{"C", "D"}, "E"),
	}

	once := Closure(schema.NewAttrSet("A", "D"), fds)
	twice := Closure(once, fds)
	if !once.Equal(twice) {
		t.Errorf("closure not idempotent: %v then %v", once.Sorted(), twice.Sorted())
	}
}

func TestClosureMonotonic(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B", "D"}, "E"),
	}

	small := Closure(schema.NewAttrSet("A"), fds)
	large := Closure(schema.NewAttrSet("A", "D"), fds)
	if !small.SubsetOf(large) {
		t.Errorf("closure not monotonic: %v not subset of %v", small.Sorted(), large.Sorted())
	}
}

func TestClosureOrderIndependent(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "C"),
		fdOf([]string{"C"}, "D"),
	}
	reversed := []schema.FD{fds[2], fds[1], fds[0]}

	a := Closure(schema.NewAttrSet("A"), fds)
	b := Closure(schema.NewAttrSet("A"), reversed)
	if !a.Equal(b) {
		t.Errorf("closure depends on FD order: %v vs %v", a.Sorted(), b.Sorted())
	}
}

func TestClosureNoFDs(t *testing.T) {
	start := schema.NewAttrSet("A", "B")
	got := Closure(start, nil)
	if !got.Equal(start) {
		t.Errorf("Closure with no FDs = %v", got.Sorted())
	}
	// Result must be a fresh set.
	got["C"] = true
	if start["C"] {
		t.Error("closure aliases its input set")
	}
}
