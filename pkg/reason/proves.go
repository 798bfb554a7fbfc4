package reason

import "context"

// Proves reports whether goal is entailed by kb at all: true iff Query
// would yield at least one result. It is short-circuit — as soon as the
// first result is available, the query's context is canceled so the
// producing goroutine can stop promptly, and the rest of the (possibly
// infinite) stream is never computed. Confidence is not inspected; a
// derivation with arbitrarily low confidence still counts as proof.
func Proves(ctx context.Context, goal Triple, kb *KB) bool {
	child, cancel := context.WithCancel(ctx)
	defer cancel()

	for range Query(child, goal, kb) {
		return true
	}
	return false
}
