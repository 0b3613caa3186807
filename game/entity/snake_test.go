package entity

import (
	"testing"

	"classic-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBody() []types.Point {
	return []types.Point{{X: 100, Y: 100}, {X: 90, Y: 100}, {X: 80, Y: 100}}
}

func TestNewSnakeCopiesBody(t *testing.T) {
	body := startBody()
	s := NewSnake(body, types.Right)
	body[0] = types.Point{X: 0, Y: 0}

	assert.Equal(t, types.Point{X: 100, Y: 100}, s.GetHead())
	assert.Equal(t, 3, s.Len())
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(startBody(), types.Right)

	next := s.NextHead()
	require.Equal(t, types.Point{X: 120, Y: 100}, next)

	s.Move(next)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, next, s.GetHead())

	s.RemoveTail()
	assert.Equal(t, []types.Point{{X: 120, Y: 100}, {X: 100, Y: 100}, {X: 90, Y: 100}}, s.Body)
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	s := NewSnake(startBody(), types.Right)

	assert.False(t, s.SetDirection(types.Left))
	assert.Equal(t, types.Right, s.Direction)

	assert.True(t, s.SetDirection(types.Up))
	assert.Equal(t, types.Up, s.Direction)

	assert.False(t, s.SetDirection(types.None))
	assert.Equal(t, types.Up, s.Direction)
}

func TestSetDirectionSingleCellMayReverse(t *testing.T) {
	s := NewSnake([]types.Point{{X: 40, Y: 40}}, types.Right)
	assert.True(t, s.SetDirection(types.Left))
	assert.Equal(t, types.Left, s.Direction)
}

func TestCellsIsACopy(t *testing.T) {
	s := NewSnake(startBody(), types.Right)
	cells := s.Cells()
	cells[0] = types.Point{}

	assert.True(t, s.Contains(types.Point{X: 100, Y: 100}))
	assert.False(t, s.Contains(types.Point{}))
}
