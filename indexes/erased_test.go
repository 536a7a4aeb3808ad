package indexes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestErasedForwardsObserve(t *testing.T) {
	concrete := NewKeysIndex[int]()
	erased := Erase[int, *KeysIndex[int]](concrete)

	erased.Observe(composable.NewAdd(composable.Id(1), 1))

	assert.True(t, concrete.Contains(composable.Id(1)))
}

func TestErasedRegistryHoldsHeterogeneousConcreteTypes(t *testing.T) {
	keys := NewKeysIndex[int]()
	tree := NewBTreeIndex[int]()

	registry := map[string]Erased[int]{
		"keys":  Erase[int, *KeysIndex[int]](keys),
		"btree": Erase[int, *BTreeIndex[int]](tree),
	}

	for _, ix := range registry {
		ix.Observe(composable.NewAdd(composable.Id(1), 42))
	}

	assert.True(t, keys.Contains(composable.Id(1)))
	assert.Equal(t, 1, tree.Count())
}
