package indexes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestFilteredForwardsOnlyInScope(t *testing.T) {
	tmpl := Filtered(func(x int) bool { return x%2 == 0 }, Keys[int]())
	ix := tmpl()

	ix.Observe(composable.NewAdd(composable.Id(1), 1))
	ix.Observe(composable.NewAdd(composable.Id(2), 2))

	assert.Equal(t, 1, ix.Inner().Count())
	assert.True(t, ix.Inner().Contains(composable.Id(2)))
	assert.False(t, ix.Inner().Contains(composable.Id(1)))
}

func TestFilteredHandlesScopeTransitions(t *testing.T) {
	tmpl := Filtered(func(x int) bool { return x%2 == 0 }, Keys[int]())
	ix := tmpl()

	id := composable.Id(1)
	ix.Observe(composable.NewAdd(id, 1)) // odd: out of scope
	assert.False(t, ix.Inner().Contains(id))

	ix.Observe(composable.NewChange(id, 1, 2)) // enters scope
	assert.True(t, ix.Inner().Contains(id))

	ix.Observe(composable.NewChange(id, 2, 4)) // stays in scope
	assert.True(t, ix.Inner().Contains(id))

	ix.Observe(composable.NewChange(id, 4, 5)) // leaves scope
	assert.False(t, ix.Inner().Contains(id))

	ix.Observe(composable.NewChange(id, 5, 7)) // stays out of scope
	assert.False(t, ix.Inner().Contains(id))
}

func TestFilteredRemoveOutOfScopeIsNoop(t *testing.T) {
	tmpl := Filtered(func(x int) bool { return x%2 == 0 }, Keys[int]())
	ix := tmpl()

	id := composable.Id(1)
	ix.Observe(composable.NewAdd(id, 1))
	ix.Observe(composable.NewRemove(id, 1))

	assert.Equal(t, 0, ix.Inner().Count())
}
