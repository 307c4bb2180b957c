package entity

import (
	"snake-game/game/types"
)

type Color struct {
	R, G, B uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	Red   = Color{R: 230, G: 41, B: 55}
)

// Snake is an ordered body, head first, plus the direction it is heading.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	Color     Color
}

func NewSnake(startPos types.Point, color Color) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.Point{}, // not moving until the first key press
		Color:     color,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is the position the head would take on the next move.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction)
}

// SetDirection overwrites the direction. Reversing into the body is allowed.
func (s *Snake) SetDirection(dir types.Point) {
	s.Direction = dir
}

// Move shifts every segment onto the cell its predecessor occupied and puts
// the head at newHead. It returns where the tail was before the shift.
func (s *Snake) Move(newHead types.Point) types.Point {
	oldTail := s.GetTail()
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = newHead
	return oldTail
}

// Grow appends a segment at tail, normally the tail returned by Move.
func (s *Snake) Grow(tail types.Point) {
	s.Body = append(s.Body, tail)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
