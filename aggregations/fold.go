package aggregations

import "github.com/utdemir/composable-indexes"

// Fold spec: an invertible fold over T into accumulator state S. add
// and remove must be true inverses of each other for the same value —
// remove(add(s, v), v) == s — so a Remove event can undo an earlier Add
// without rescanning the collection, and a Change is handled as a
// remove of the old value followed by an add of the new one.
type Fold[S any, T any] struct {
	state  S
	add    func(S, T) S
	remove func(S, T) S
}

// NewFold builds a Fold index seeded at zero, with the given invertible
// combining functions.
func NewFold[S any, T any](zero S, add, remove func(S, T) S) *Fold[S, T] {
	return &Fold[S, T]{state: zero, add: add, remove: remove}
}

// FoldTemplate builds a Template for a Fold aggregate, matching the
// composable.Template[T, Ix] shape every other index constructor uses.
func FoldTemplate[S any, T any](zero S, add, remove func(S, T) S) composable.Template[T, *Fold[S, T]] {
	return func() *Fold[S, T] {
		return NewFold(zero, add, remove)
	}
}

func (ix *Fold[S, T]) Observe(u composable.Update[T]) {
	switch u.Kind {
	case composable.Add:
		ix.state = ix.add(ix.state, u.NewValue)
	case composable.Remove:
		ix.state = ix.remove(ix.state, u.OldValue)
	case composable.Change:
		ix.state = ix.remove(ix.state, u.OldValue)
		ix.state = ix.add(ix.state, u.NewValue)
	}
}

// Value returns the current accumulator state.
func (ix *Fold[S, T]) Value() S {
	return ix.state
}
