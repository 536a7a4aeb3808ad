package indexes

import "github.com/utdemir/composable-indexes"

// Erased type-erases a concrete Index[T] behind a fixed interface, for
// the runtime-composition escape hatch spec.md §9 anticipates ("an
// implementation may additionally provide an erased (boxed) variant for
// runtime composition at a perf cost"). It corresponds to the
// original's composable-indexes/src/compat module, which lets index
// trees of different concrete shapes sit behind one type, e.g. in a
// registry of named collections that all need the same static type.
//
// Erased only forwards Observe: it cannot forward query methods, since
// those vary per concrete index and are exactly what monomorphization
// would otherwise give a caller for free. Callers needing to query an
// erased index keep a typed reference to the concrete instance
// alongside the erased one.
type Erased[T any] interface {
	composable.Index[T]
}

type erasedAdapter[T any, Ix composable.Index[T]] struct {
	inner Ix
}

func (a erasedAdapter[T, Ix]) Observe(u composable.Update[T]) {
	a.inner.Observe(u)
}

// Erase wraps a concrete index behind the Erased[T] interface.
func Erase[T any, Ix composable.Index[T]](ix Ix) Erased[T] {
	return erasedAdapter[T, Ix]{inner: ix}
}
