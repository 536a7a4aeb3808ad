// Package aggregations provides the derived scalars of spec.md §4.4:
// count, sum, mean, min, max and a generic invertible fold, plus a
// standard-deviation aggregate built on Fold the way the original
// crate's examples/std_dev.rs demonstrates. Count, sum, mean, fold and
// variance keep constant-size state; min/max keeps an ordered multiset
// of every observed value so a removal can restore the next extremum.
package aggregations

import "github.com/utdemir/composable-indexes"

// CountIndex holds nothing but a running total; T only pins down which
// event stream it can be wired into.
type CountIndex[T any] struct {
	n int
}

// NewCountIndex constructs a zeroed counter.
func NewCountIndex[T any]() *CountIndex[T] {
	return &CountIndex[T]{}
}

// Count builds a Template for a count aggregate over value type T.
func Count[T any]() composable.Template[T, *CountIndex[T]] {
	return NewCountIndex[T]
}

func (ix *CountIndex[T]) Observe(u composable.Update[T]) {
	switch u.Kind {
	case composable.Add:
		ix.n++
	case composable.Remove:
		ix.n--
	}
}

// Value returns the current count.
func (ix *CountIndex[T]) Value() int {
	return ix.n
}
