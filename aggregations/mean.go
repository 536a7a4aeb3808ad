package aggregations

import "github.com/utdemir/composable-indexes"

// MeanIndex maintains a running sum and count so the arithmetic mean is
// available in O(1) without ever iterating the collection.
type MeanIndex[T Number] struct {
	sum   T
	count int
}

// NewMeanIndex constructs an empty mean accumulator.
func NewMeanIndex[T Number]() *MeanIndex[T] {
	return &MeanIndex[T]{}
}

// Mean builds a Template for a running-mean aggregate over value type T.
func Mean[T Number]() composable.Template[T, *MeanIndex[T]] {
	return NewMeanIndex[T]
}

func (ix *MeanIndex[T]) Observe(u composable.Update[T]) {
	switch u.Kind {
	case composable.Add:
		ix.sum += u.NewValue
		ix.count++
	case composable.Remove:
		ix.sum -= u.OldValue
		ix.count--
	case composable.Change:
		ix.sum += u.NewValue - u.OldValue
	}
}

// Value returns the current mean. Querying an empty aggregate is a
// contract violation (spec.md §7) and panics rather than returning a
// placeholder — there is no meaningful mean of zero items.
func (ix *MeanIndex[T]) Value() float64 {
	if ix.count == 0 {
		panic(&composable.ViolationError{Op: "mean", Msg: "empty aggregate"})
	}
	return float64(ix.sum) / float64(ix.count)
}
