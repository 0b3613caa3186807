package entity

import (
	"slices"

	"classic-snake/game/types"
)

// Snake is the player's body, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(body []types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      slices.Clone(body),
		Direction: dir,
	}
}

// Move prepends newHead to the body.
func (s *Snake) Move(newHead types.Point) {
	s.Body = slices.Insert(s.Body, 0, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead is where the head lands after one step in the current direction.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.ToPoint())
}

func (s *Snake) Contains(p types.Point) bool {
	return slices.Contains(s.Body, p)
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection changes the heading unless it would reverse a body longer
// than one cell into itself. It reports whether the change was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None {
		return false
	}
	if len(s.Body) > 1 && s.Direction.IsOpposite(dir) {
		return false
	}
	s.Direction = dir
	return true
}

// Cells returns a copy of the body safe to hand to a renderer.
func (s *Snake) Cells() []types.Point {
	return slices.Clone(s.Body)
}
