package aggregations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestSumIndex(t *testing.T) {
	ix := NewSumIndex[int]()

	ix.Observe(composable.NewAdd(composable.Id(1), 10))
	ix.Observe(composable.NewAdd(composable.Id(2), 20))
	assert.Equal(t, 30, ix.Value())

	ix.Observe(composable.NewChange(composable.Id(1), 10, 15))
	assert.Equal(t, 35, ix.Value())

	ix.Observe(composable.NewRemove(composable.Id(2), 20))
	assert.Equal(t, 15, ix.Value())
}

func TestSumIndexFloat(t *testing.T) {
	ix := NewSumIndex[float64]()
	ix.Observe(composable.NewAdd(composable.Id(1), 1.5))
	ix.Observe(composable.NewAdd(composable.Id(2), 2.5))
	assert.Equal(t, 4.0, ix.Value())
}
