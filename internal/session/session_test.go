package session

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utdemir/composable-indexes/snapshot"
)

func TestOpenLookupTouch(t *testing.T) {
	store := NewStore()

	id, ref := Open(store, "u1", 1000)

	item, ok := Lookup(store, ref)
	require.True(t, ok)
	assert.Equal(t, id, item.Id)
	assert.Equal(t, "u1", item.Value.UserID)
	assert.Equal(t, int64(1000), item.Value.LastSeen)

	Touch(store, id, 2000)

	item, ok = Lookup(store, ref)
	require.True(t, ok)
	assert.Equal(t, int64(2000), item.Value.LastSeen)
}

func TestSessionsForUserAndActiveUserCount(t *testing.T) {
	store := NewStore()

	Open(store, "u1", 1000)
	Open(store, "u1", 1001)
	Open(store, "u2", 1002)

	assert.Len(t, SessionsForUser(store, "u1"), 2)
	assert.Len(t, SessionsForUser(store, "u2"), 1)
	assert.Nil(t, SessionsForUser(store, "unknown"))
	assert.Equal(t, 2, ActiveUserCount(store))
}

func TestStaleBeforeOrdersByLastSeen(t *testing.T) {
	store := NewStore()

	_, oldRef := Open(store, "u1", 100)
	_, midRef := Open(store, "u2", 200)
	Open(store, "u3", 300)

	stale := StaleBefore(store, 250)
	require.Len(t, stale, 2)
	assert.Equal(t, oldRef, stale[0].Value.Ref)
	assert.Equal(t, midRef, stale[1].Value.Ref)
}

func TestSaveToAndLoadIntoRoundTrip(t *testing.T) {
	path := "test_sessions_snapshot.db"
	defer os.Remove(path)

	store := NewStore()
	Open(store, "u1", 100)
	Open(store, "u2", 200)

	b, err := snapshot.Open(path)
	require.NoError(t, err)
	require.NoError(t, SaveTo(store, b))
	require.NoError(t, b.Close())

	restored := NewStore()
	b2, err := snapshot.Open(path)
	require.NoError(t, err)
	defer b2.Close()

	n, err := LoadInto(restored, b2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, ActiveUserCount(restored))
}
