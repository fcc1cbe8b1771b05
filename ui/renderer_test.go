package ui

import (
	"strings"
	"testing"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/input"
	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRendererKeepsCells(t *testing.T) {
	r := NewRenderer(types.Grid{Width: 4, Height: 3}, 20)
	a, b := types.Point{X: 1, Y: 1}, types.Point{X: 3, Y: 2}

	r.DrawCell(a, entity.BodyColor)
	r.DrawCell(b, entity.FoodColor)
	r.DrawCell(a, entity.FoodColor)
	if len(r.cells) != 2 || r.cells[a] != entity.FoodColor {
		t.Fatalf("cells = %v", r.cells)
	}

	r.EraseCell(b)
	if _, ok := r.cells[b]; ok {
		t.Error("erased cell still drawn")
	}

	r.Clear()
	if len(r.cells) != 0 {
		t.Errorf("Clear left %d cells", len(r.cells))
	}
}

func TestCellOrigin(t *testing.T) {
	r := NewRenderer(types.Grid{Width: 32, Height: 24}, 20)
	x, y := r.cellOrigin(types.Point{X: 31, Y: 12})
	if x != 620 || y != 240 {
		t.Errorf("origin = %d,%d want 620,240", x, y)
	}
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key  int32
		want input.Event
		ok   bool
	}{
		{rl.KeyUp, input.Press(input.KeyUp), true},
		{rl.KeyS, input.Press(input.KeyDown), true},
		{rl.KeyLeft, input.Press(input.KeyLeft), true},
		{rl.KeyD, input.Press(input.KeyRight), true},
		{rl.KeyEscape, input.QuitEvent(), true},
		{rl.KeySpace, input.Event{}, false},
	}
	for _, tc := range tests {
		got, ok := keyEvent(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Errorf("keyEvent(%d) = %v,%v want %v,%v", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStatusLine(t *testing.T) {
	line := statusLine(manager.Snapshot{Length: 3, BestLength: 9, FoodsEaten: 12, Resets: 2})
	for _, want := range []string{"Length: 3", "Best: 9", "Food: 12", "Resets: 2"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q misses %q", line, want)
		}
	}
}

func TestToRaylib(t *testing.T) {
	c := toRaylib(entity.OutlineColor)
	if c.R != 93 || c.G != 216 || c.B != 228 || c.A != 255 {
		t.Errorf("toRaylib = %v", c)
	}
}
