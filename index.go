package composable

// Index is the uniform observer contract every leaf index, aggregate
// and combinator implements: given an Update, apply it to local state.
// The generic parameter is the value type that particular tree node
// observes — it is T at the root, and whatever a Premap/Filtered/Grouped
// ancestor projects it to further down the tree.
//
// Totality: Observe must accept every Kind. Idempotent failure: if
// Observe panics, the index's internal state is left undefined and the
// owning Collection is considered poisoned; no partial-success recovery
// is attempted (spec §4.2, §7). No hidden I/O: Observe and the query
// methods a concrete index additionally exposes are pure in-memory
// computations — logging or persistence belongs to a collaborator like
// the snapshot package, never inside an Index implementation.
type Index[T any] interface {
	Observe(Update[T])
}

// Template describes how to build a live Index[T] instance. It exists
// so an index tree's shape can be expressed once (e.g. as an argument to
// New) and instantiated fresh for each Collection, rather than sharing
// mutable state across collections. The template functions of the
// indexes and aggregations packages (BTree, Keys, Grouped, Count, ...)
// return a Template; their NewX counterparts build a live instance
// directly.
type Template[T any, Ix Index[T]] func() Ix
