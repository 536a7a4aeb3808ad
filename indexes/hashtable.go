package indexes

import "github.com/utdemir/composable-indexes"

// HashUniqueIndex maintains a bijection between key and id, backed by a
// Go map. Inserting a second id under a key already in use is a
// contract violation per spec.md §7 and panics.
type HashUniqueIndex[K comparable] struct {
	data map[K]composable.Id
}

// NewHashUniqueIndex constructs an empty unique-hash index.
func NewHashUniqueIndex[K comparable]() *HashUniqueIndex[K] {
	return &HashUniqueIndex[K]{data: make(map[K]composable.Id)}
}

// HashUnique builds a Template for a unique-hash leaf index over key
// type K.
func HashUnique[K comparable]() composable.Template[K, *HashUniqueIndex[K]] {
	return NewHashUniqueIndex[K]
}

func (ix *HashUniqueIndex[K]) Observe(u composable.Update[K]) {
	switch u.Kind {
	case composable.Add:
		ix.insert(u.NewValue, u.Id)
	case composable.Remove:
		delete(ix.data, u.OldValue)
	case composable.Change:
		if u.OldValue == u.NewValue {
			return
		}
		delete(ix.data, u.OldValue)
		ix.insert(u.NewValue, u.Id)
	}
}

func (ix *HashUniqueIndex[K]) insert(key K, id composable.Id) {
	if existing, ok := ix.data[key]; ok && existing != id {
		panic(&composable.ViolationError{
			Op:  "insert",
			Id:  id,
			Msg: "uniqueness violation: key already indexed",
		})
	}
	ix.data[key] = id
}

// Get returns the id keyed by key, or false if absent.
func (ix *HashUniqueIndex[K]) Get(key K) (composable.Id, bool) {
	id, ok := ix.data[key]
	return id, ok
}

// Count returns the number of keys currently indexed.
func (ix *HashUniqueIndex[K]) Count() int {
	return len(ix.data)
}

// HashMultiIndex maintains a map from key to the set of ids currently
// observed under that key.
type HashMultiIndex[K comparable] struct {
	data map[K]map[composable.Id]struct{}
}

// NewHashMultiIndex constructs an empty multi-hash index.
func NewHashMultiIndex[K comparable]() *HashMultiIndex[K] {
	return &HashMultiIndex[K]{data: make(map[K]map[composable.Id]struct{})}
}

// HashMulti builds a Template for a multi-hash leaf index over key
// type K.
func HashMulti[K comparable]() composable.Template[K, *HashMultiIndex[K]] {
	return NewHashMultiIndex[K]
}

func (ix *HashMultiIndex[K]) Observe(u composable.Update[K]) {
	switch u.Kind {
	case composable.Add:
		ix.insert(u.NewValue, u.Id)
	case composable.Remove:
		ix.delete(u.OldValue, u.Id)
	case composable.Change:
		if u.OldValue == u.NewValue {
			return
		}
		ix.delete(u.OldValue, u.Id)
		ix.insert(u.NewValue, u.Id)
	}
}

func (ix *HashMultiIndex[K]) insert(key K, id composable.Id) {
	set, ok := ix.data[key]
	if !ok {
		set = make(map[composable.Id]struct{})
		ix.data[key] = set
	}
	set[id] = struct{}{}
}

func (ix *HashMultiIndex[K]) delete(key K, id composable.Id) {
	set, ok := ix.data[key]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(ix.data, key)
	}
}

// Get returns the ids currently keyed by key, in unspecified order.
func (ix *HashMultiIndex[K]) Get(key K) []composable.Id {
	set := ix.data[key]
	out := make([]composable.Id, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Count returns the number of ids currently keyed by key.
func (ix *HashMultiIndex[K]) Count(key K) int {
	return len(ix.data[key])
}

// KeyCount returns the number of distinct keys currently present.
func (ix *HashMultiIndex[K]) KeyCount() int {
	return len(ix.data)
}
