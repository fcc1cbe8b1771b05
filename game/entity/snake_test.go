package entity

import (
	"testing"

	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	"golang.org/x/exp/rand"
)

var grid = types.Grid{Width: 32, Height: 24}

func TestNewSnakeStartsAtCenter(t *testing.T) {
	s := NewSnake(grid, types.Right)
	if s.Len() != 1 || s.GetHead() != (types.Point{X: 16, Y: 12}) {
		t.Fatalf("body = %v, want [(16,12)]", s.Body)
	}
	if s.TargetLength() != 1 || s.Direction() != types.Right || s.Pending() != types.None {
		t.Errorf("unexpected initial state: target=%d dir=%v pending=%v", s.TargetLength(), s.Direction(), s.Pending())
	}
	if _, ok := s.LastVacated(); ok {
		t.Error("new snake must not have a vacated cell")
	}
}

func TestSnakesDoNotShareBodies(t *testing.T) {
	a := NewSnake(grid, types.Right)
	b := NewSnake(grid, types.Right)
	a.Advance(grid)
	if b.Len() != 1 || b.GetHead() != grid.Center() {
		t.Fatalf("advancing one snake changed another: %v", b.Body)
	}

	rng := rand.New(rand.NewSource(1))
	before := a.Body
	a.Reset(grid, rng)
	before[0] = types.Point{X: 99, Y: 99}
	if a.GetHead() != grid.Center() {
		t.Error("Reset reused the previous body slice")
	}
}

func TestSetNextDirection(t *testing.T) {
	for _, cur := range types.Directions {
		for _, next := range types.Directions {
			s := NewSnake(grid, cur)
			accepted := s.SetNextDirection(next)
			s.ApplyPendingDirection()
			if next == cur.Opposite() {
				if accepted || s.Direction() != cur {
					t.Errorf("%v -> %v: reversal accepted, direction now %v", cur, next, s.Direction())
				}
				continue
			}
			if !accepted || s.Direction() != next {
				t.Errorf("%v -> %v: direction = %v", cur, next, s.Direction())
			}
			if s.Pending() != types.None {
				t.Errorf("pending direction not consumed")
			}
		}
	}
}

func TestSetNextDirectionRejectsNone(t *testing.T) {
	s := NewSnake(grid, types.Up)
	if s.SetNextDirection(types.None) {
		t.Error("None accepted as a heading")
	}
}

func TestApplyPendingWithoutRequestKeepsDirection(t *testing.T) {
	s := NewSnake(grid, types.Left)
	s.ApplyPendingDirection()
	if s.Direction() != types.Left {
		t.Errorf("direction = %v, want left", s.Direction())
	}
}

func TestAdvanceWraps(t *testing.T) {
	s := NewSnake(grid, types.Right)
	s.Body = []types.Point{{X: 31, Y: 12}}
	s.Advance(grid)
	if got := s.GetHead(); got != (types.Point{X: 0, Y: 12}) {
		t.Errorf("head = %v, want (0,12)", got)
	}
	if s.Len() != 2 {
		t.Errorf("Advance must grow by one, len = %d", s.Len())
	}

	s = NewSnake(grid, types.Up)
	s.Body = []types.Point{{X: 0, Y: 0}}
	s.Advance(grid)
	if got := s.GetHead(); got != (types.Point{X: 0, Y: 23}) {
		t.Errorf("head = %v, want (0,23)", got)
	}
}

func TestTrimToTargetIsIdempotent(t *testing.T) {
	s := NewSnake(grid, types.Right)
	s.Grow()
	for i := 0; i < 4; i++ {
		s.Advance(grid)
	}
	s.TrimToTarget()
	first := s.Segments()
	vacated, ok := s.LastVacated()
	if !ok || vacated != (types.Point{X: 18, Y: 12}) {
		t.Errorf("last vacated = %v,%v want (18,12)", vacated, ok)
	}
	s.TrimToTarget()
	second := s.Segments()
	if len(first) != 2 || len(first) != len(second) {
		t.Fatalf("segments changed: %v -> %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("segments changed: %v -> %v", first, second)
		}
	}
}

func TestGrowthConverges(t *testing.T) {
	s := NewSnake(grid, types.Right)
	const k = 5
	for i := 0; i < k; i++ {
		s.Grow()
	}
	for tick := 0; tick < 3*k; tick++ {
		prev := s.Len()
		s.Advance(grid)
		s.TrimToTarget()
		if s.Len() > prev+1 {
			t.Fatalf("grew by more than one segment in a tick")
		}
	}
	if s.Len() != 1+k {
		t.Errorf("len = %d, want %d", s.Len(), 1+k)
	}
}

func TestHasSelfCollision(t *testing.T) {
	tests := []struct {
		name string
		body []types.Point
		want bool
	}{
		{"single", []types.Point{{X: 1, Y: 1}}, false},
		{"head on neck", []types.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, false},
		{"head on index 2", []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}, true},
		{"head on tail", []types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}}, true},
		{"straight line", []types.Point{{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(grid, types.Right)
			s.Body = tc.body
			if got := s.HasSelfCollision(); got != tc.want {
				t.Errorf("HasSelfCollision() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResetPicksEveryDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSnake(grid, types.Right)
	seen := map[types.Direction]bool{}
	for i := 0; i < 200; i++ {
		s.Grow()
		s.Advance(grid)
		s.TrimToTarget()
		s.SetNextDirection(types.Up)
		s.Reset(grid, rng)
		if s.Len() != 1 || s.TargetLength() != 1 || s.Pending() != types.None {
			t.Fatalf("reset left state behind: %+v", s)
		}
		if _, ok := s.LastVacated(); ok {
			t.Fatal("reset kept the vacated cell")
		}
		seen[s.Direction()] = true
	}
	if len(seen) != 4 {
		t.Errorf("reset produced only %v", seen)
	}
}

type recordingCanvas struct {
	drawn  []types.Point
	erased []types.Point
	colors []Color
}

func (c *recordingCanvas) DrawCell(p types.Point, col Color) {
	c.drawn = append(c.drawn, p)
	c.colors = append(c.colors, col)
}

func (c *recordingCanvas) EraseCell(p types.Point) {
	c.erased = append(c.erased, p)
}

func TestSnakeDrawOrder(t *testing.T) {
	s := NewSnake(grid, types.Right)
	s.Grow()
	s.Advance(grid)
	s.Advance(grid)
	s.TrimToTarget()

	var c recordingCanvas
	s.Draw(&c)
	if len(c.erased) != 1 || c.erased[0] != (types.Point{X: 16, Y: 12}) {
		t.Errorf("erased = %v, want [(16,12)]", c.erased)
	}
	want := []types.Point{{X: 17, Y: 12}, {X: 18, Y: 12}}
	if len(c.drawn) != len(want) {
		t.Fatalf("drawn = %v, want %v", c.drawn, want)
	}
	for i := range want {
		if c.drawn[i] != want[i] || c.colors[i] != BodyColor {
			t.Errorf("drawn[%d] = %v %v", i, c.drawn[i], c.colors[i])
		}
	}
}
