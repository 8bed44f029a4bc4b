package entity

import (
	"classic-snake/game/types"
)

// Snake keeps its body in a buffer sized once for the whole board. Body[0]
// is the head and only the first Length cells are occupied.
type Snake struct {
	Body      []types.Point
	Length    int
	Capacity  int
	Direction types.Direction
	// Moved is the heading used by the last move.
	Moved types.Direction
}

// NewSnake allocates the body buffer and stacks every cell on start. The
// buffer has one spare slot past capacity because a move writes Body[Length].
func NewSnake(start types.Point, length, capacity int) *Snake {
	if length > capacity {
		length = capacity
	}
	body := make([]types.Point, capacity+1)
	for i := range body {
		body[i] = start
	}
	return &Snake{
		Body:      body,
		Length:    length,
		Capacity:  capacity,
		Direction: types.RIGHT, // Start moving right
		Moved:     types.RIGHT,
	}
}

// Move shifts every occupied cell one slot toward the tail and advances the
// head by one unit in the current direction.
func (s *Snake) Move(unit int) {
	for i := s.Length; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Direction.ToPoint(unit))
	s.Moved = s.Direction
}

// Grow extends the snake over the slot its tail just vacated.
func (s *Snake) Grow() {
	if s.Length < s.Capacity {
		s.Length++
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Occupied returns the live part of the body. The slice aliases the buffer.
func (s *Snake) Occupied() []types.Point {
	return s.Body[:s.Length]
}

// SetDirection changes heading unless dir is NONE or the reverse of the
// current heading. Several changes between two moves cannot add up to a
// reversal either: dir is also checked against the last move.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.NONE || dir == s.Direction.Opposite() || dir == s.Moved.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
