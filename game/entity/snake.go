package entity

import (
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
)

// headAndNeck is the number of leading segments exempt from self-collision.
// The neck is always adjacent to the head, so touching it is not a crash.
const headAndNeck = 2

type Snake struct {
	Body         []types.Point // head first
	direction    types.Direction
	pending      types.Direction
	targetLength int
	lastVacated  types.Point
	hasVacated   bool
}

// NewSnake creates a one-segment snake in the middle of the grid heading in dir.
func NewSnake(grid types.Grid, dir types.Direction) *Snake {
	if !dir.Valid() {
		dir = types.Right
	}
	s := &Snake{}
	s.init(grid, dir)
	return s
}

// init allocates fresh state so no two snakes, or two lives of one snake,
// ever share a body slice.
func (s *Snake) init(grid types.Grid, dir types.Direction) {
	s.Body = []types.Point{grid.Center()}
	s.direction = dir
	s.pending = types.None
	s.targetLength = 1
	s.lastVacated = types.Point{}
	s.hasVacated = false
}

// Reset puts the snake back to a single centre cell with a random heading.
func (s *Snake) Reset(grid types.Grid, rng types.Rand) {
	s.init(grid, types.Directions[rng.Intn(len(types.Directions))])
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	copy(out, s.Body)
	return out
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the direction queued for the next tick, or None.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

// LastVacated returns the tail cell most recently dropped by TrimToTarget.
func (s *Snake) LastVacated() (types.Point, bool) {
	return s.lastVacated, s.hasVacated
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

// SetNextDirection queues dir for the next tick. A 180 degree turn is refused.
func (s *Snake) SetNextDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.direction.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// ApplyPendingDirection consumes the queued direction, if any.
func (s *Snake) ApplyPendingDirection() {
	if s.pending != types.None {
		s.direction = s.pending
		s.pending = types.None
	}
}

// Advance pushes a new head one step ahead, wrapping at the grid edges.
// The body always grows by one here; TrimToTarget shrinks it back.
func (s *Snake) Advance(grid types.Grid) {
	newHead := grid.Wrap(s.GetHead().Add(s.direction.Vector()))
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// TrimToTarget drops tail segments until the body is no longer than the target.
func (s *Snake) TrimToTarget() {
	for len(s.Body) > s.targetLength {
		s.lastVacated = s.Body[len(s.Body)-1]
		s.hasVacated = true
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow raises the target length by one segment.
func (s *Snake) Grow() {
	s.targetLength++
}

// HasSelfCollision reports whether the head overlaps the body past the neck.
func (s *Snake) HasSelfCollision() bool {
	if len(s.Body) <= headAndNeck {
		return false
	}
	head := s.GetHead()
	for _, part := range s.Body[headAndNeck:] {
		if part == head {
			return true
		}
	}
	return false
}

// Draw erases the trailing cell, then paints body and head.
func (s *Snake) Draw(c Canvas) {
	if s.hasVacated {
		c.EraseCell(s.lastVacated)
	}
	for _, p := range s.Body[1:] {
		c.DrawCell(p, BodyColor)
	}
	c.DrawCell(s.GetHead(), BodyColor)
}
