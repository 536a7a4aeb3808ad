package composable

// Collection wires a Store[T] to a root Index[T] and exposes the
// mutation API described in spec.md §4.6. Every mutating method follows
// the same dispatch order: (1) update the store, (2) synthesize the
// Update event from the captured old/new values, (3) invoke the root
// index's Observe synchronously. The event is fully applied before the
// method returns, so no query performed after a mutation can observe a
// half-updated index tree.
//
// The zero value is not usable; construct with New.
type Collection[T any, Ix Index[T]] struct {
	store *Store[T]
	root  Ix
}

// New instantiates tmpl and wires it to a fresh, empty Store[T].
func New[T any, Ix Index[T]](tmpl Template[T, Ix]) *Collection[T, Ix] {
	return &Collection[T, Ix]{
		store: NewStore[T](),
		root:  tmpl(),
	}
}

// Insert appends value to the store and dispatches an Add event to the
// root index, returning the freshly allocated id.
func (c *Collection[T, Ix]) Insert(value T) Id {
	id := c.store.Insert(value)
	c.root.Observe(NewAdd(id, value))
	return id
}

// Get delegates to the store; it never touches the index tree.
func (c *Collection[T, Ix]) Get(id Id) (T, bool) {
	return c.store.Get(id)
}

// Update replaces the value stored under id and dispatches a Change
// event carrying both the old and new values. Calling Update on an
// unknown id is a contract violation (spec.md §7).
func (c *Collection[T, Ix]) Update(id Id, newValue T) {
	old := c.store.Replace(id, newValue)
	c.root.Observe(NewChange(id, old, newValue))
}

// Adjust reads the current value for id, applies f to produce a
// replacement, and dispatches a Change event. The old value is captured
// before the replace so the event carries both sides, matching Update's
// contract. Calling Adjust on an unknown id is a contract violation.
func (c *Collection[T, Ix]) Adjust(id Id, f func(T) T) {
	old, ok := c.store.Get(id)
	if !ok {
		violate("adjust", id, "unknown id")
	}
	newValue := f(old)
	c.store.Replace(id, newValue)
	c.root.Observe(NewChange(id, old, newValue))
}

// Remove deletes id from the store and dispatches a Remove event,
// returning the value it held. Calling Remove on an unknown id is a
// contract violation.
func (c *Collection[T, Ix]) Remove(id Id) T {
	old := c.store.Remove(id)
	c.root.Observe(NewRemove(id, old))
	return old
}

// Len reports the number of items currently in the collection.
func (c *Collection[T, Ix]) Len() int {
	return c.store.Len()
}

// Query grants f borrowed access to the store and the root index's
// query handle in one call, so it can join index lookups (ids) back
// against store values (e.g. via Envelope) without racing a concurrent
// mutation — the collection is single-writer and f runs to completion
// before Query returns. f, and anything it returns, must not retain
// store or root past the call.
//
// Query is a package-level function rather than a method because Go
// methods cannot introduce additional type parameters: A varies per
// call site while T and Ix are fixed by c.
func Query[T any, Ix Index[T], A any](c *Collection[T, Ix], f func(store *Store[T], root Ix) A) A {
	return f(c.store, c.root)
}
