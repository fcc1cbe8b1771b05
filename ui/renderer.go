package ui

import (
	"fmt"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	statusBarHeight = 24 // strip under the board for session stats
	statusFontSize  = 16
	statusPadding   = 4
)

// Renderer keeps what has been drawn on the board. raylib redraws the whole
// frame each time, so erasing a cell means forgetting it.
type Renderer struct {
	cellSize int32
	grid     types.Grid
	cells    map[types.Point]entity.Color
	status   manager.Snapshot
	hasStats bool
}

func NewRenderer(grid types.Grid, cellSize int) *Renderer {
	return &Renderer{
		cellSize: int32(cellSize),
		grid:     grid,
		cells:    make(map[types.Point]entity.Color, grid.Area()),
	}
}

func (r *Renderer) DrawCell(p types.Point, c entity.Color) {
	r.cells[p] = c
}

func (r *Renderer) EraseCell(p types.Point) {
	delete(r.cells, p)
}

func (r *Renderer) Clear() {
	clear(r.cells)
}

func (r *Renderer) ShowStatus(s manager.Snapshot) {
	r.status = s
	r.hasStats = true
}

// Flush presents the frame. EndDrawing also waits for the target FPS and
// polls input, which is what paces the desktop loop.
func (r *Renderer) Flush() error {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(entity.BackgroundColor))

	for p, c := range r.cells {
		x, y := r.cellOrigin(p)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toRaylib(c))
		rl.DrawRectangleLinesEx(
			rl.NewRectangle(float32(x), float32(y), float32(r.cellSize), float32(r.cellSize)),
			entity.OutlineWidth,
			toRaylib(entity.OutlineColor))
	}

	if r.hasStats {
		r.drawStatusBar()
	}

	rl.EndDrawing()
	return nil
}

func (r *Renderer) drawStatusBar() {
	top := r.cellSize * int32(r.grid.Height)
	width := r.cellSize * int32(r.grid.Width)
	rl.DrawRectangle(0, top, width, statusBarHeight, rl.DarkGray)
	rl.DrawText(statusLine(r.status), statusPadding, top+statusPadding, statusFontSize, rl.White)
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y) * r.cellSize
}

func statusLine(s manager.Snapshot) string {
	return fmt.Sprintf("Length: %d   Best: %d   Food: %d   Resets: %d",
		s.Length, s.BestLength, s.FoodsEaten, s.Resets)
}

func toRaylib(c entity.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
