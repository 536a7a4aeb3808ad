package aggregations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestCountIndex(t *testing.T) {
	ix := NewCountIndex[string]()

	ix.Observe(composable.NewAdd(composable.Id(1), "a"))
	ix.Observe(composable.NewAdd(composable.Id(2), "b"))
	assert.Equal(t, 2, ix.Value())

	ix.Observe(composable.NewChange(composable.Id(1), "a", "c"))
	assert.Equal(t, 2, ix.Value())

	ix.Observe(composable.NewRemove(composable.Id(1), "c"))
	assert.Equal(t, 1, ix.Value())
}
