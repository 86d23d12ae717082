package fd

import (
	"testing"

	"github.com/renjen/cse132a-hw3/internal/schema"
)

func TestFindKeyChain(t *testing.T) {
	attrs := schema.NewAttrSet("A", "B", "C")
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "C"),
	}

	key := FindKey(attrs, fds)
	if !key.Equal(schema.NewAttrSet("A")) {
		t.Fatalf("key = %v, want {A}", key.Sorted())
	}
}

func TestFindKeyIsSuperkey(t *testing.T) {
	attrs := schema.NewAttrSet("A", "B", "C", "D")
	fds := []schema.FD{
		fdOf([]string{"A", "B"}, "C"),
		fdOf([]string{"C"}, "D"),
	}

	key := FindKey(attrs, fds)
	if !attrs.SubsetOf(Closure(key, fds)) {
		t.Fatalf("closure of key %v does not cover %v", key.Sorted(), attrs.Sorted())
	}
}

func TestFindKeyMinimal(t *testing.T) {
	attrs := schema.NewAttrSet("A", "B", "C", "D")
	fds := []schema.FD{
		fdOf([]string{"A", "B"}, "C"),
		fdOf([]string{"C"}, "D"),
	}

	key := FindKey(attrs, fds)
	for _, a := range key.Sorted() {
		smaller := key.Clone()
		delete(smaller, a)
		if attrs.SubsetOf(Closure(smaller, fds)) {
			t.Errorf("key %v not minimal: still a superkey without %s", key.Sorted(), a)
		}
	}
}

func TestFindKeySeedFallback(t *testing.T) {
	// Every attribute appears on a right side, so the seed is empty
	// and the finder falls back to the smallest attribute.
	attrs := schema.NewAttrSet("A", "B")
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "A"),
	}

	key := FindKey(attrs, fds)
	if !key.Equal(schema.NewAttrSet("A")) {
		t.Fatalf("key = %v, want {A}", key.Sorted())
	}
}

func TestFindKeySingleAttributeNoFDs(t *testing.T) {
	attrs := schema.NewAttrSet("A")
	key := FindKey(attrs, nil)
	if !key.Equal(attrs) {
		t.Fatalf("key = %v, want {A}", key.Sorted())
	}
}

func TestFindKeyNoFDsKeepsAllAttributes(t *testing.T) {
	attrs := schema.NewAttrSet("A", "B", "C")
	key := FindKey(attrs, nil)
	if !key.Equal(attrs) {
		t.Fatalf("key = %v, want all attributes", key.Sorted())
	}
}

func TestFindKeyDeterministic(t *testing.T) {
	attrs := schema.NewAttrSet("A", "B", "C", "D", "E")
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "A"),
		fdOf([]string{"C"}, "D"),
	}

	first := FindKey(attrs, fds)
	for i := 0; i < 10; i++ {
		if got := FindKey(attrs, fds); !got.Equal(first) {
			t.Fatalf("key changed between runs: %v vs %v", first.Sorted(), got.Sorted())
		}
	}
}
