package entity

import (
	"snake-rules/game/types"
)

// Snake is the ordered body, head first. It does no bounds checking;
// collisions are judged by the caller after Advance.
type Snake struct {
	body      []types.Point
	direction types.Direction
	growing   bool
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		body:      []types.Point{startPos},
		direction: dir,
	}
}

// NewSnakeFromBody builds a snake from an explicit body, head first.
// An empty body is not a valid snake and yields nil.
func NewSnakeFromBody(body []types.Point, dir types.Direction) *Snake {
	if len(body) == 0 {
		return nil
	}
	s := &Snake{
		body:      make([]types.Point, len(body)),
		direction: dir,
	}
	copy(s.body, body)
	return s
}

// SetDirection overwrites the heading, reversals included.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.None {
		return
	}
	s.direction = dir
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Advance moves the head one cell along the heading. A pending growth keeps
// the tail in place once.
func (s *Snake) Advance() {
	newHead := s.GetHead().Add(s.direction)
	if s.growing {
		s.growing = false
		s.body = append(s.body, types.Point{})
		copy(s.body[1:], s.body[:len(s.body)-1])
	} else {
		copy(s.body[1:], s.body[:len(s.body)-1])
	}
	s.body[0] = newHead
}

// Grow marks the next Advance as growing.
func (s *Snake) Grow() {
	s.growing = true
}

func (s *Snake) Growing() bool {
	return s.growing
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Occupies reports whether any segment lies on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}
