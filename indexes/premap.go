package indexes

import "github.com/utdemir/composable-indexes"

// PremapIndex transforms each event's value through F before handing it
// to Inner (spec.md §4.5.1). F is invoked exactly once per side carried
// by the event; it must be deterministic and side-effect-free, since its
// results are never memoized.
type PremapIndex[In, Out any, InnerIx composable.Index[Out]] struct {
	f     func(In) Out
	inner InnerIx
}

// Premap builds a Template that projects values through f before
// dispatching to inner.
func Premap[In, Out any, InnerIx composable.Index[Out]](
	f func(In) Out,
	inner composable.Template[Out, InnerIx],
) composable.Template[In, *PremapIndex[In, Out, InnerIx]] {
	return func() *PremapIndex[In, Out, InnerIx] {
		return &PremapIndex[In, Out, InnerIx]{f: f, inner: inner()}
	}
}

func (ix *PremapIndex[In, Out, InnerIx]) Observe(u composable.Update[In]) {
	ix.inner.Observe(composable.Map(u, ix.f))
}

// Inner returns the wrapped index's query handle.
func (ix *PremapIndex[In, Out, InnerIx]) Inner() InnerIx {
	return ix.inner
}
