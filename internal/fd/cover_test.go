package fd

import (
	"testing"

	"github.com/renjen/cse132a-hw3/internal/schema"
)

func TestReduceCoverDropsTransitiveFD(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "C"),
		fdOf([]string{"A"}, "C"), // implied by the first two
	}

	cover := ReduceCover(fds)
	if len(cover) != 2 {
		t.Fatalf("cover has %d FDs, want 2: %v", len(cover), cover)
	}
	for _, f := range cover {
		if f.Left.Equal(schema.NewAttrSet("A")) && f.Right == "C" {
			t.Fatal("redundant FD A -> C survived reduction")
		}
	}
}

func TestReduceCoverKeepsIndependentFDs(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"A"}, "C"),
	}

	cover := ReduceCover(fds)
	if len(cover) != 2 {
		t.Fatalf("cover has %d FDs, want 2", len(cover))
	}
}

func TestReduceCoverPreservesClosures(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "C"),
		fdOf([]string{"A"}, "C"),
		fdOf([]string{"C"}, "A"),
	}
	cover := ReduceCover(fds)

	// A reduced cover must derive the same closures as the original.
	for _, seed := range []string{"A", "B", "C"} {
		orig := Closure(schema.NewAttrSet(seed), fds)
		reduced := Closure(schema.NewAttrSet(seed), cover)
		if !orig.Equal(reduced) {
			t.Errorf("closure(%s) changed: %v vs %v", seed, orig.Sorted(), reduced.Sorted())
		}
	}
}

func TestReduceCoverDoesNotMutateInput(t *testing.T) {
	fds := []schema.FD{
		fdOf([]string{"A"}, "B"),
		fdOf([]string{"B"}, "C"),
		fdOf([]string{"A"}, "C"),
	}

	ReduceCover(fds)
	if len(fds) != 3 {
		t.Fatalf("input slice length changed: %d", len(fds))
	}
	if fds[2].Right != "C" || !fds[2].Left.Equal(schema.NewAttrSet("A")) {
		t.Error("input FD list was reordered or rewritten")
	}
}

func TestReduceCoverEmpty(t *testing.T) {
	if cover := ReduceCover(nil); len(cover) != 0 {
		t.Fatalf("cover of empty FD list = %v", cover)
	}
}
