// Package indexes provides the leaf indexes and combinators that make
// up the "index-template vocabulary" of spec.md §6: BTree,
// HashUnique, HashMulti and Keys as leaves, and Premap, Filtered,
// Grouped and ZipN as combinators over them.
package indexes

// BoundKind tags whether a Bound is open, or closed on the inclusive or
// exclusive side.
type BoundKind int

const (
	// Unbounded means the range extends to infinity on this side.
	Unbounded BoundKind = iota
	// Included means the range includes the boundary value.
	Included
	// Excluded means the range stops just short of the boundary value.
	Excluded
)

// Bound is one endpoint of a BTree.Range query.
type Bound[K any] struct {
	Kind  BoundKind
	Value K
}

// Unbound returns an open endpoint.
func Unbound[K any]() Bound[K] {
	return Bound[K]{Kind: Unbounded}
}

// Inclusive returns an endpoint that includes v.
func Inclusive[K any](v K) Bound[K] {
	return Bound[K]{Kind: Included, Value: v}
}

// Exclusive returns an endpoint that excludes v.
func Exclusive[K any](v K) Bound[K] {
	return Bound[K]{Kind: Excluded, Value: v}
}
