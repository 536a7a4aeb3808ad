package aggregations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestMinMaxIndex(t *testing.T) {
	ix := NewMinMaxIndex[int]()

	ix.Observe(composable.NewAdd(composable.Id(1), 5))
	ix.Observe(composable.NewAdd(composable.Id(2), 2))
	ix.Observe(composable.NewAdd(composable.Id(3), 9))

	assert.Equal(t, 2, ix.Min())
	assert.Equal(t, 9, ix.Max())

	ix.Observe(composable.NewRemove(composable.Id(3), 9))
	assert.Equal(t, 5, ix.Max())
}

func TestMinMaxIndexEmptyPanics(t *testing.T) {
	ix := NewMinMaxIndex[int]()
	assert.Panics(t, func() { ix.Min() })
	assert.Panics(t, func() { ix.Max() })
}
