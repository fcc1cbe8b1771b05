// Package ui is the desktop frontend: a raylib window acting as render sink,
// input source and frame pacer.
package ui

import (
	"context"

	"github.com/AkhtemKurtiev/feed-the-python/game/input"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "Feed the Python"

// Window owns the raylib window for the lifetime of a game.
type Window struct {
	*Renderer
}

// OpenWindow creates a window big enough for the grid plus the status bar and
// caps the frame rate at ticksPerSecond.
func OpenWindow(grid types.Grid, cellSize, ticksPerSecond int) *Window {
	w := int32(grid.Width * cellSize)
	h := int32(grid.Height*cellSize) + statusBarHeight
	rl.InitWindow(w, h, windowTitle)
	rl.SetTargetFPS(int32(ticksPerSecond))
	return &Window{Renderer: NewRenderer(grid, cellSize)}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

// Drain returns the key presses queued since the last frame. Closing the
// window or pressing Esc/Q yields a quit event.
func (w *Window) Drain() []input.Event {
	var events []input.Event
	if rl.WindowShouldClose() {
		return append(events, input.QuitEvent())
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if ev, ok := keyEvent(key); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Wait only honours cancellation; EndDrawing in Flush already blocks until
// the next frame is due.
func (w *Window) Wait(ctx context.Context) error {
	return ctx.Err()
}

func keyEvent(key int32) (input.Event, bool) {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return input.Press(input.KeyUp), true
	case rl.KeyDown, rl.KeyS:
		return input.Press(input.KeyDown), true
	case rl.KeyLeft, rl.KeyA:
		return input.Press(input.KeyLeft), true
	case rl.KeyRight, rl.KeyD:
		return input.Press(input.KeyRight), true
	case rl.KeyQ, rl.KeyEscape:
		return input.QuitEvent(), true
	default:
		return input.Event{}, false
	}
}
