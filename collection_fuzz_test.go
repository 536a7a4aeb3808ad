package composable_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
	"github.com/utdemir/composable-indexes/indexes"
)

// TestCollectionMatchesReferenceModel drives a random sequence of
// insert/update/remove against both a Collection rooted at a KeysIndex
// and a plain map[Id]int, then cross-checks every query — the
// "Mechanical fuzz" property of spec.md §8.
func TestCollectionMatchesReferenceModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	c := composable.New[int, *indexes.KeysIndex[int]](indexes.Keys[int]())
	reference := make(map[composable.Id]int)
	var liveIds []composable.Id

	const ops = 2000
	for i := 0; i < ops; i++ {
		switch {
		case len(liveIds) == 0 || rng.Intn(3) == 0:
			v := rng.Intn(1000)
			id := c.Insert(v)
			reference[id] = v
			liveIds = append(liveIds, id)

		case rng.Intn(2) == 0:
			idx := rng.Intn(len(liveIds))
			id := liveIds[idx]
			v := rng.Intn(1000)
			c.Update(id, v)
			reference[id] = v

		default:
			idx := rng.Intn(len(liveIds))
			id := liveIds[idx]
			c.Remove(id)
			delete(reference, id)
			liveIds = append(liveIds[:idx], liveIds[idx+1:]...)
		}

		if i%97 != 0 {
			continue
		}

		assert.Equal(t, len(reference), c.Len())

		composable.Query(c, func(_ *composable.Store[int], root *indexes.KeysIndex[int]) struct{} {
			assert.Equal(t, len(reference), root.Count())
			for id := range reference {
				assert.True(t, root.Contains(id))
			}
			return struct{}{}
		})

		for id := range reference {
			v, ok := c.Get(id)
			assert.True(t, ok)
			assert.Equal(t, reference[id], v)
		}
	}
}
