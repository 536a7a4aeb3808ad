package indexes

import "github.com/utdemir/composable-indexes"

// FilteredIndex gates forwarding to Inner through a predicate, so Inner
// only ever observes items currently in scope (spec.md §4.5.2). Because
// every Update already carries both the old and new value it needs no
// extra bookkeeping to determine a transition: pred is simply evaluated
// against whichever side(s) the event carries.
type FilteredIndex[T any, InnerIx composable.Index[T]] struct {
	pred  func(T) bool
	inner InnerIx
}

// Filtered builds a Template that only forwards events whose value
// satisfies pred to inner.
func Filtered[T any, InnerIx composable.Index[T]](
	pred func(T) bool,
	inner composable.Template[T, InnerIx],
) composable.Template[T, *FilteredIndex[T, InnerIx]] {
	return func() *FilteredIndex[T, InnerIx] {
		return &FilteredIndex[T, InnerIx]{pred: pred, inner: inner()}
	}
}

func (ix *FilteredIndex[T, InnerIx]) Observe(u composable.Update[T]) {
	switch u.Kind {
	case composable.Add:
		if ix.pred(u.NewValue) {
			ix.inner.Observe(u)
		}
	case composable.Remove:
		if ix.pred(u.OldValue) {
			ix.inner.Observe(u)
		}
	case composable.Change:
		oldIn := ix.pred(u.OldValue)
		newIn := ix.pred(u.NewValue)
		switch {
		case !oldIn && !newIn:
			// out of scope on both sides: no-op
		case !oldIn && newIn:
			ix.inner.Observe(composable.NewAdd(u.Id, u.NewValue))
		case oldIn && !newIn:
			ix.inner.Observe(composable.NewRemove(u.Id, u.OldValue))
		default:
			ix.inner.Observe(u)
		}
	}
}

// Inner returns the wrapped index's query handle.
func (ix *FilteredIndex[T, InnerIx]) Inner() InnerIx {
	return ix.inner
}
