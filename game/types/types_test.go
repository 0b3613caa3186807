package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionToPoint(t *testing.T) {
	assert.Equal(t, Point{X: 0, Y: -20}, Up.ToPoint())
	assert.Equal(t, Point{X: 20, Y: 0}, Right.ToPoint())
	assert.Equal(t, Point{X: 0, Y: 20}, Down.ToPoint())
	assert.Equal(t, Point{X: -20, Y: 0}, Left.ToPoint())
	assert.Equal(t, Point{}, None.ToPoint())
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, o := range pairs {
		assert.True(t, d.IsOpposite(o), "%s vs %s", d, o)
		assert.False(t, d.IsOpposite(d), "%s vs itself", d)
	}
	assert.False(t, Right.IsOpposite(Up))
	assert.False(t, None.IsOpposite(None))
}

func TestGridContains(t *testing.T) {
	g := DefaultGrid
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 580, Y: 380}))
	assert.False(t, g.Contains(Point{X: 600, Y: 100}))
	assert.False(t, g.Contains(Point{X: 100, Y: 400}))
	assert.False(t, g.Contains(Point{X: -20, Y: 0}))
	assert.False(t, g.Contains(Point{X: 0, Y: -20}))

	cols, rows := g.Cells()
	assert.Equal(t, 30, cols)
	assert.Equal(t, 20, rows)
}
