// Package snapshot is the explicit, out-of-core-mutation-path
// collaborator that serializes a Store's current contents to disk. It
// never sits between a Collection and its index tree: a caller invokes
// Save/Load explicitly, and index state is never persisted — reloading
// replays Insert for every stored value, which rebuilds every index the
// same way a fresh Collection would.
//
// One bucket, JSON-encoded values, Open/Close plus Save/Load.
package snapshot

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	composable "github.com/utdemir/composable-indexes"
)

var bucketItems = []byte("items")

// Bolt is a bbolt-backed export target for a Store[T].
type Bolt struct {
	db *bbolt.DB
}

// Open opens (creating if necessary) a bbolt file at path.
func Open(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketItems)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: init bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Save writes every (id, value) pair currently in store, overwriting
// whatever this file previously held. It performs no locking of store
// itself: callers must not mutate the collection concurrently with a
// Save, the same single-writer discipline Collection.Query assumes.
func Save[T any](b *Bolt, store *composable.Store[T]) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketItems); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("snapshot: clear bucket: %w", err)
		}
		bkt, err := tx.CreateBucket(bucketItems)
		if err != nil {
			return fmt.Errorf("snapshot: recreate bucket: %w", err)
		}

		var saveErr error
		store.Iter(func(id composable.Id, v T) bool {
			data, err := json.Marshal(v)
			if err != nil {
				saveErr = fmt.Errorf("snapshot: marshal id=%s: %w", id, err)
				return false
			}
			if err := bkt.Put(idKey(id), data); err != nil {
				saveErr = fmt.Errorf("snapshot: put id=%s: %w", id, err)
				return false
			}
			return true
		})
		return saveErr
	})
}

// Load reads every persisted (id, value) pair back into a fresh
// map[Id]T. Reconstructing a Store (and thus a Collection) from that
// map is the caller's job, via repeated Insert calls, since replaying
// inserts is also how the collection's indexes get rebuilt.
func Load[T any](b *Bolt) (map[composable.Id]T, error) {
	out := make(map[composable.Id]T)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket(bucketItems)
		return bkt.ForEach(func(k, v []byte) error {
			id, err := parseIdKey(k)
			if err != nil {
				return fmt.Errorf("snapshot: bad key %q: %w", k, err)
			}
			var value T
			if err := json.Unmarshal(v, &value); err != nil {
				return fmt.Errorf("snapshot: unmarshal id=%s: %w", id, err)
			}
			out[id] = value
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close releases the underlying bbolt file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

func idKey(id composable.Id) []byte {
	return []byte(strconv.FormatInt(int64(id), 10))
}

func parseIdKey(k []byte) (composable.Id, error) {
	n, err := strconv.ParseInt(string(k), 10, 64)
	if err != nil {
		return 0, err
	}
	return composable.Id(n), nil
}
