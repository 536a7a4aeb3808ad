package aggregations

import (
	"cmp"

	"github.com/utdemir/composable-indexes"
	"github.com/utdemir/composable-indexes/indexes"
)

// MinMaxIndex reuses indexes.BTreeIndex as the "naive balanced tree
// keyed by value, disambiguated by identifier" structure spec.md §4.4
// calls for, rather than reimplementing ordered-key bookkeeping a
// second time: Min and Max are exactly BTreeIndex.Min/Max with the id
// dropped from the result.
type MinMaxIndex[K cmp.Ordered] struct {
	tree *indexes.BTreeIndex[K]
}

// NewMinMaxIndex constructs an empty min/max tracker over key type K.
func NewMinMaxIndex[K cmp.Ordered]() *MinMaxIndex[K] {
	return &MinMaxIndex[K]{tree: indexes.NewBTreeIndex[K]()}
}

// MinMax builds a Template exposing both the minimum and maximum
// currently-observed value over key type K.
func MinMax[K cmp.Ordered]() composable.Template[K, *MinMaxIndex[K]] {
	return NewMinMaxIndex[K]
}

func (ix *MinMaxIndex[K]) Observe(u composable.Update[K]) {
	ix.tree.Observe(u)
}

// Min returns the smallest currently-observed value. Querying an empty
// aggregate is a contract violation (spec.md §7) and panics.
func (ix *MinMaxIndex[K]) Min() K {
	k, _, ok := ix.tree.Min()
	if !ok {
		panic(&composable.ViolationError{Op: "min", Msg: "empty aggregate"})
	}
	return k
}

// Max returns the largest currently-observed value. Querying an empty
// aggregate is a contract violation (spec.md §7) and panics.
func (ix *MinMaxIndex[K]) Max() K {
	k, _, ok := ix.tree.Max()
	if !ok {
		panic(&composable.ViolationError{Op: "max", Msg: "empty aggregate"})
	}
	return k
}
