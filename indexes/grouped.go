package indexes

import "github.com/utdemir/composable-indexes"

// GroupedIndex maintains a map from group key to a lazily-created inner
// index instance, per spec.md §4.5.3. A group-changing Update forwards
// a Remove to the old group's inner before an Add to the new group's
// inner, get-or-creating the latter — that ordering is part of the
// contract so an aggregate inner index sees the correct transient
// state if it introspects during the dispatch.
//
// A group whose inner index has observed equal numbers of adds and
// removes is pruned from the map immediately: this keeps iteration
// (Groups) from ever exposing an empty group, satisfying the "group
// pruning" invariant (spec.md §3.4) without needing a separate sweep.
type GroupedIndex[K comparable, T any, InnerIx composable.Index[T]] struct {
	keyFn     func(T) K
	makeInner func() InnerIx
	groups    map[K]*groupEntry[T, InnerIx]
}

type groupEntry[T any, InnerIx composable.Index[T]] struct {
	inner InnerIx
	count int
}

// Grouped builds a Template that dispatches events to a per-group
// child index created on first touch via makeInner.
func Grouped[K comparable, T any, InnerIx composable.Index[T]](
	keyFn func(T) K,
	makeInner composable.Template[T, InnerIx],
) composable.Template[T, *GroupedIndex[K, T, InnerIx]] {
	return func() *GroupedIndex[K, T, InnerIx] {
		return &GroupedIndex[K, T, InnerIx]{
			keyFn:     keyFn,
			makeInner: makeInner,
			groups:    make(map[K]*groupEntry[T, InnerIx]),
		}
	}
}

func (ix *GroupedIndex[K, T, InnerIx]) getOrCreate(key K) *groupEntry[T, InnerIx] {
	e, ok := ix.groups[key]
	if !ok {
		e = &groupEntry[T, InnerIx]{inner: ix.makeInner()}
		ix.groups[key] = e
	}
	return e
}

func (ix *GroupedIndex[K, T, InnerIx]) prune(key K, e *groupEntry[T, InnerIx]) {
	if e.count <= 0 {
		delete(ix.groups, key)
	}
}

func (ix *GroupedIndex[K, T, InnerIx]) Observe(u composable.Update[T]) {
	switch u.Kind {
	case composable.Add:
		g := ix.keyFn(u.NewValue)
		e := ix.getOrCreate(g)
		e.inner.Observe(u)
		e.count++

	case composable.Remove:
		g := ix.keyFn(u.OldValue)
		e, ok := ix.groups[g]
		if !ok {
			return
		}
		e.inner.Observe(u)
		e.count--
		ix.prune(g, e)

	case composable.Change:
		oldGroup := ix.keyFn(u.OldValue)
		newGroup := ix.keyFn(u.NewValue)
		if oldGroup == newGroup {
			if e, ok := ix.groups[oldGroup]; ok {
				e.inner.Observe(u)
			}
			return
		}

		if e, ok := ix.groups[oldGroup]; ok {
			e.inner.Observe(composable.NewRemove(u.Id, u.OldValue))
			e.count--
			ix.prune(oldGroup, e)
		}

		newE := ix.getOrCreate(newGroup)
		newE.inner.Observe(composable.NewAdd(u.Id, u.NewValue))
		newE.count++
	}
}

// Get returns the inner index for key and whether that group is
// currently non-empty. A pruned or never-touched group reports false.
func (ix *GroupedIndex[K, T, InnerIx]) Get(key K) (InnerIx, bool) {
	e, ok := ix.groups[key]
	if !ok {
		var zero InnerIx
		return zero, false
	}
	return e.inner, true
}

// Groups returns every currently non-empty group's inner index, keyed
// by group key.
func (ix *GroupedIndex[K, T, InnerIx]) Groups() map[K]InnerIx {
	out := make(map[K]InnerIx, len(ix.groups))
	for k, e := range ix.groups {
		out[k] = e.inner
	}
	return out
}

// KeyCount returns the number of currently non-empty groups.
func (ix *GroupedIndex[K, T, InnerIx]) KeyCount() int {
	return len(ix.groups)
}
