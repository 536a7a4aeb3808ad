// Package session is the worked demo domain the cmd binaries exercise:
// a session store keyed by a random reference, grouped by user and
// ordered by last-seen time, mirroring the original composable-indexes
// crate's session/session_im examples.
package session

import (
	"github.com/google/uuid"

	composable "github.com/utdemir/composable-indexes"
	"github.com/utdemir/composable-indexes/indexes"
	"github.com/utdemir/composable-indexes/snapshot"
)

// Session is one active login. Ref is a random opaque handle a client
// presents on subsequent requests instead of the internal sequential
// Id, the same separation nanostore draws between its internal row id
// and its externally handed-out document key.
type Session struct {
	Ref      uuid.UUID
	UserID   string
	LastSeen int64 // Unix seconds
}

// GroupedByUser tracks, per user, the set of ids for that user's
// currently live sessions.
type GroupedByUser = *indexes.GroupedIndex[string, Session, *indexes.KeysIndex[Session]]

// ByLastSeen orders every session by its last-seen timestamp, so the
// oldest sessions (eviction candidates) sit at the front of the tree.
type ByLastSeen = *indexes.PremapIndex[Session, int64, *indexes.BTreeIndex[int64]]

// ByRef resolves a session's public reference back to its internal id.
type ByRef = *indexes.PremapIndex[Session, uuid.UUID, *indexes.HashUniqueIndex[uuid.UUID]]

// RootIndex is the composed index tree every Store wires up: a session
// is simultaneously grouped by user, ordered by recency and looked up
// by reference, none of the three children aware of the other two.
type RootIndex = *indexes.Zip3Index[Session, GroupedByUser, ByLastSeen, ByRef]

// Store is a Collection specialized to the Session domain.
type Store = composable.Collection[Session, RootIndex]

// NewStore builds an empty session store with the grouped/ordered/keyed
// index tree wired up.
func NewStore() *Store {
	tmpl := indexes.Zip3(
		indexes.Grouped(func(s Session) string { return s.UserID }, indexes.Keys[Session]()),
		indexes.Premap(func(s Session) int64 { return s.LastSeen }, indexes.BTree[int64]()),
		indexes.Premap(func(s Session) uuid.UUID { return s.Ref }, indexes.HashUnique[uuid.UUID]()),
	)
	return composable.New[Session, RootIndex](tmpl)
}

// Open starts a new session for user, returning its internal id and
// public reference.
func Open(store *Store, userID string, now int64) (composable.Id, uuid.UUID) {
	ref := uuid.New()
	id := store.Insert(Session{Ref: ref, UserID: userID, LastSeen: now})
	return id, ref
}

// Touch bumps a session's last-seen timestamp, keeping it out of
// eviction range. id must name a live session.
func Touch(store *Store, id composable.Id, now int64) {
	store.Adjust(id, func(s Session) Session {
		s.LastSeen = now
		return s
	})
}

// lookupResult bundles Lookup's result so it can cross composable.Query's
// single-return-value boundary in one value.
type lookupResult struct {
	item composable.Item[Session]
	ok   bool
}

// Lookup resolves a public reference to the live session it names.
func Lookup(store *Store, ref uuid.UUID) (composable.Item[Session], bool) {
	r := composable.Query[Session, RootIndex](store, func(s *composable.Store[Session], root RootIndex) lookupResult {
		id, ok := root.Third().Inner().Get(ref)
		if !ok {
			return lookupResult{composable.Item[Session]{}, false}
		}
		item, ok := composable.Envelope(s, id)
		return lookupResult{item, ok}
	})
	return r.item, r.ok
}

// SessionsForUser lists every currently live session belonging to
// userID.
func SessionsForUser(store *Store, userID string) []composable.Item[Session] {
	return composable.Query[Session, RootIndex](store, func(s *composable.Store[Session], root RootIndex) []composable.Item[Session] {
		group, ok := root.First().Get(userID)
		if !ok {
			return nil
		}
		var out []composable.Item[Session]
		for _, id := range group.Ids() {
			if item, ok := composable.Envelope(s, id); ok {
				out = append(out, item)
			}
		}
		return out
	})
}

// StaleBefore lists every session last seen strictly before cutoff, in
// ascending last-seen order — the natural eviction sweep order.
func StaleBefore(store *Store, cutoff int64) []composable.Item[Session] {
	return composable.Query[Session, RootIndex](store, func(s *composable.Store[Session], root RootIndex) []composable.Item[Session] {
		ids := root.Second().Inner().Range(indexes.Unbound[int64](), indexes.Exclusive(cutoff))
		out := make([]composable.Item[Session], 0, len(ids))
		for _, id := range ids {
			if item, ok := composable.Envelope(s, id); ok {
				out = append(out, item)
			}
		}
		return out
	})
}

// ActiveUserCount returns the number of distinct users with at least
// one live session.
func ActiveUserCount(store *Store) int {
	return composable.Query[Session, RootIndex](store, func(_ *composable.Store[Session], root RootIndex) int {
		return root.First().KeyCount()
	})
}

// SaveTo exports every currently live session to b. The underlying
// *composable.Store is never allowed to escape the Query callback; the
// export happens synchronously within it.
func SaveTo(store *Store, b *snapshot.Bolt) error {
	return composable.Query[Session, RootIndex](store, func(s *composable.Store[Session], _ RootIndex) error {
		return snapshot.Save(b, s)
	})
}

// LoadInto restores every session persisted in b into store via
// repeated Insert, which also rebuilds the grouped/ordered/keyed index
// tree the same way live inserts do. It returns the number restored.
func LoadInto(store *Store, b *snapshot.Bolt) (int, error) {
	values, err := snapshot.Load[Session](b)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		store.Insert(v)
	}
	return len(values), nil
}
