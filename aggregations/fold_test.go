package aggregations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	composable "github.com/utdemir/composable-indexes"
)

func TestFoldAccumulatesInvertibly(t *testing.T) {
	ix := NewFold(0, func(s, v int) int { return s + v }, func(s, v int) int { return s - v })

	ix.Observe(composable.NewAdd(composable.Id(1), 3))
	ix.Observe(composable.NewAdd(composable.Id(2), 4))
	assert.Equal(t, 7, ix.Value())

	ix.Observe(composable.NewChange(composable.Id(1), 3, 10))
	assert.Equal(t, 14, ix.Value())

	ix.Observe(composable.NewRemove(composable.Id(2), 4))
	assert.Equal(t, 10, ix.Value())
}

func TestFoldTemplateBuildsFreshState(t *testing.T) {
	tmpl := FoldTemplate(0, func(s, v int) int { return s + v }, func(s, v int) int { return s - v })

	a := tmpl()
	b := tmpl()

	a.Observe(composable.NewAdd(composable.Id(1), 5))
	assert.Equal(t, 5, a.Value())
	assert.Equal(t, 0, b.Value())
}
