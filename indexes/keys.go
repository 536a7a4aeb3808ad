package indexes

import "github.com/utdemir/composable-indexes"

// KeysIndex tracks only the set of ids currently in scope. It is
// typically used as the terminal inner index of Grouped when the caller
// only wants "which ids belong to group G", per spec.md §4.3.
type KeysIndex[T any] struct {
	ids map[composable.Id]struct{}
}

// NewKeysIndex constructs an empty keys index.
func NewKeysIndex[T any]() *KeysIndex[T] {
	return &KeysIndex[T]{ids: make(map[composable.Id]struct{})}
}

// Keys builds a Template for a keys-set leaf index over value type T.
// T is otherwise unused — only presence is tracked — but is kept as a
// type parameter so Keys[T]() can be used as make_inner for a
// Grouped[K, T, ...] without the caller writing out an adapter.
func Keys[T any]() composable.Template[T, *KeysIndex[T]] {
	return NewKeysIndex[T]
}

func (ix *KeysIndex[T]) Observe(u composable.Update[T]) {
	switch u.Kind {
	case composable.Add:
		ix.ids[u.Id] = struct{}{}
	case composable.Remove:
		delete(ix.ids, u.Id)
	case composable.Change:
		// membership is unaffected by a value change
	}
}

// Ids returns the ids currently in scope, in unspecified order.
func (ix *KeysIndex[T]) Ids() []composable.Id {
	out := make([]composable.Id, 0, len(ix.ids))
	for id := range ix.ids {
		out = append(out, id)
	}
	return out
}

// Contains reports whether id is currently in scope.
func (ix *KeysIndex[T]) Contains(id composable.Id) bool {
	_, ok := ix.ids[id]
	return ok
}

// Count returns the number of ids currently in scope.
func (ix *KeysIndex[T]) Count() int {
	return len(ix.ids)
}
