package indexes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestKeysIndex(t *testing.T) {
	ix := NewKeysIndex[string]()

	ix.Observe(composable.NewAdd(composable.Id(1), "a"))
	ix.Observe(composable.NewAdd(composable.Id(2), "b"))

	assert.True(t, ix.Contains(composable.Id(1)))
	assert.Equal(t, 2, ix.Count())
	assert.ElementsMatch(t, []composable.Id{1, 2}, ix.Ids())

	ix.Observe(composable.NewRemove(composable.Id(1), "a"))
	assert.False(t, ix.Contains(composable.Id(1)))
	assert.Equal(t, 1, ix.Count())
}

func TestKeysIndexChangeDoesNotAffectMembership(t *testing.T) {
	ix := NewKeysIndex[string]()
	ix.Observe(composable.NewAdd(composable.Id(1), "a"))
	ix.Observe(composable.NewChange(composable.Id(1), "a", "b"))

	assert.True(t, ix.Contains(composable.Id(1)))
	assert.Equal(t, 1, ix.Count())
}
