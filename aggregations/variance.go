package aggregations

import (
	"math"

	"github.com/utdemir/composable-indexes"
)

// varianceState is the invertible sufficient statistic for population
// variance: running count, sum and sum-of-squares, the same three
// numbers the original crate's examples/std_dev.rs folds over.
type varianceState struct {
	count  int
	sum    float64
	sumSq  float64
}

func varianceAdd(s varianceState, v float64) varianceState {
	s.count++
	s.sum += v
	s.sumSq += v * v
	return s
}

func varianceRemove(s varianceState, v float64) varianceState {
	s.count--
	s.sum -= v
	s.sumSq -= v * v
	return s
}

// VarianceIndex computes population variance and standard deviation via
// Fold over (count, sum, sumSq), so both statistics stay available in
// O(1) after any single-item mutation.
type VarianceIndex[T Number] struct {
	fold *Fold[varianceState, float64]
}

// NewVarianceIndex constructs an empty variance accumulator over value
// type T.
func NewVarianceIndex[T Number]() *VarianceIndex[T] {
	return &VarianceIndex[T]{fold: NewFold(varianceState{}, varianceAdd, varianceRemove)}
}

// Variance builds a Template for a running-variance aggregate over
// value type T.
func Variance[T Number]() composable.Template[T, *VarianceIndex[T]] {
	return func() *VarianceIndex[T] {
		return NewVarianceIndex[T]()
	}
}

func (ix *VarianceIndex[T]) Observe(u composable.Update[T]) {
	ix.fold.Observe(composable.Map(u, func(v T) float64 { return float64(v) }))
}

// Value returns the current population variance. Querying an empty
// aggregate is a contract violation (spec.md §7) and panics, matching
// Mean and Min/Max.
func (ix *VarianceIndex[T]) Value() float64 {
	s := ix.fold.Value()
	if s.count == 0 {
		panic(&composable.ViolationError{Op: "variance", Msg: "empty aggregate"})
	}
	mean := s.sum / float64(s.count)
	return s.sumSq/float64(s.count) - mean*mean
}

// StdDev returns the current population standard deviation. Querying an
// empty aggregate panics, same as Value.
func (ix *VarianceIndex[T]) StdDev() float64 {
	return math.Sqrt(ix.Value())
}
