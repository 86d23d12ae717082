package fd

import "github.com/renjen/cse132a-hw3/internal/schema"

// ReduceCover removes FDs that are implied by the rest of the set: an
// FD is redundant when its right side is already in the closure of its
// left side over all other FDs currently in the working set. Redundant
// FDs are deleted immediately, so later tests run against the shrunk
// set — the result depends on input order, which is preserved.
// Left-hand sides are never minimized.
func ReduceCover(fds []schema.FD) []schema.FD {
	cover := make([]schema.FD, len(fds))
	copy(cover, fds)

	for i := 0; i < len(cover); {
		rest := make([]schema.FD, 0, len(cover)-1)
		rest = append(rest, cover[:i]...)
		rest = append(rest, cover[i+1:]...)

		if Closure(cover[i].Left, rest)[cover[i].Right] {
			cover = append(cover[:i], cover[i+1:]...)
		} else {
			i++
		}
	}

	return cover
}
