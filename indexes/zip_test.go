package indexes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestZip2BroadcastsIndependently(t *testing.T) {
	tmpl := Zip2(Keys[int](), BTree[int]())
	ix := tmpl()

	id := composable.Id(1)
	ix.Observe(composable.NewAdd(id, 5))

	assert.True(t, ix.First().Contains(id))
	assert.Equal(t, 1, ix.Second().Count())

	ix.Observe(composable.NewRemove(id, 5))
	assert.False(t, ix.First().Contains(id))
	assert.Equal(t, 0, ix.Second().Count())
}

func TestZip4AllChildrenSeeEveryEvent(t *testing.T) {
	tmpl := Zip4(Keys[int](), Keys[int](), Keys[int](), Keys[int]())
	ix := tmpl()

	id := composable.Id(7)
	ix.Observe(composable.NewAdd(id, 1))

	assert.True(t, ix.First().Contains(id))
	assert.True(t, ix.Second().Contains(id))
	assert.True(t, ix.Third().Contains(id))
	assert.True(t, ix.Fourth().Contains(id))
}
