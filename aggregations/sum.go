package aggregations

import "github.com/utdemir/composable-indexes"

// Number is the set of value types a SumIndex can accumulate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SumIndex maintains a running total of every observed value. Removals
// subtract back out, so the total never requires a rescan.
type SumIndex[T Number] struct {
	total T
}

// NewSumIndex constructs a zeroed sum.
func NewSumIndex[T Number]() *SumIndex[T] {
	return &SumIndex[T]{}
}

// Sum builds a Template for a running-total aggregate over value type T.
func Sum[T Number]() composable.Template[T, *SumIndex[T]] {
	return NewSumIndex[T]
}

func (ix *SumIndex[T]) Observe(u composable.Update[T]) {
	switch u.Kind {
	case composable.Add:
		ix.total += u.NewValue
	case composable.Remove:
		ix.total -= u.OldValue
	case composable.Change:
		ix.total += u.NewValue - u.OldValue
	}
}

// Value returns the current total.
func (ix *SumIndex[T]) Value() T {
	return ix.total
}
