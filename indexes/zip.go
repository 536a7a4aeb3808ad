package indexes

import "github.com/utdemir/composable-indexes"

// Zip2Index broadcasts every event to two independent child indexes in
// declaration order (spec.md §4.5.4). Neither child's state depends on
// the other's; the query handle is the pair of child query handles.
type Zip2Index[T any, A composable.Index[T], B composable.Index[T]] struct {
	a A
	b B
}

// Zip2 builds a Template composing two independently maintained
// indexes over the same value type.
func Zip2[T any, A composable.Index[T], B composable.Index[T]](
	a composable.Template[T, A],
	b composable.Template[T, B],
) composable.Template[T, *Zip2Index[T, A, B]] {
	return func() *Zip2Index[T, A, B] {
		return &Zip2Index[T, A, B]{a: a(), b: b()}
	}
}

func (ix *Zip2Index[T, A, B]) Observe(u composable.Update[T]) {
	ix.a.Observe(u)
	ix.b.Observe(u)
}

// First returns the first child's query handle.
func (ix *Zip2Index[T, A, B]) First() A { return ix.a }

// Second returns the second child's query handle.
func (ix *Zip2Index[T, A, B]) Second() B { return ix.b }

// Zip3Index is Zip2 generalized to three children.
type Zip3Index[T any, A composable.Index[T], B composable.Index[T], C composable.Index[T]] struct {
	a A
	b B
	c C
}

// Zip3 builds a Template composing three independently maintained
// indexes over the same value type.
func Zip3[T any, A composable.Index[T], B composable.Index[T], C composable.Index[T]](
	a composable.Template[T, A],
	b composable.Template[T, B],
	c composable.Template[T, C],
) composable.Template[T, *Zip3Index[T, A, B, C]] {
	return func() *Zip3Index[T, A, B, C] {
		return &Zip3Index[T, A, B, C]{a: a(), b: b(), c: c()}
	}
}

func (ix *Zip3Index[T, A, B, C]) Observe(u composable.Update[T]) {
	ix.a.Observe(u)
	ix.b.Observe(u)
	ix.c.Observe(u)
}

// First returns the first child's query handle.
func (ix *Zip3Index[T, A, B, C]) First() A { return ix.a }

// Second returns the second child's query handle.
func (ix *Zip3Index[T, A, B, C]) Second() B { return ix.b }

// Third returns the third child's query handle.
func (ix *Zip3Index[T, A, B, C]) Third() C { return ix.c }

// Zip4Index is Zip2 generalized to four children.
type Zip4Index[T any, A composable.Index[T], B composable.Index[T], C composable.Index[T], D composable.Index[T]] struct {
	a A
	b B
	c C
	d D
}

// Zip4 builds a Template composing four independently maintained
// indexes over the same value type.
func Zip4[T any, A composable.Index[T], B composable.Index[T], C composable.Index[T], D composable.Index[T]](
	a composable.Template[T, A],
	b composable.Template[T, B],
	c composable.Template[T, C],
	d composable.Template[T, D],
) composable.Template[T, *Zip4Index[T, A, B, C, D]] {
	return func() *Zip4Index[T, A, B, C, D] {
		return &Zip4Index[T, A, B, C, D]{a: a(), b: b(), c: c(), d: d()}
	}
}

func (ix *Zip4Index[T, A, B, C, D]) Observe(u composable.Update[T]) {
	ix.a.Observe(u)
	ix.b.Observe(u)
	ix.c.Observe(u)
	ix.d.Observe(u)
}

// First returns the first child's query handle.
func (ix *Zip4Index[T, A, B, C, D]) First() A { return ix.a }

// Second returns the second child's query handle.
func (ix *Zip4Index[T, A, B, C, D]) Second() B { return ix.b }

// Third returns the third child's query handle.
func (ix *Zip4Index[T, A, B, C, D]) Third() C { return ix.c }

// Fourth returns the fourth child's query handle.
func (ix *Zip4Index[T, A, B, C, D]) Fourth() D { return ix.d }
