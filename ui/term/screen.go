// Package term is the terminal frontend built on tcell. Every grid cell is two
// terminal columns wide so the board keeps roughly square cells.
package term

import (
	"fmt"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/input"
	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth   = 2
	cellRune    = '█'
	eventBuffer = 64
)

// Screen is a tcell-backed render sink and input source.
type Screen struct {
	screen tcell.Screen
	grid   types.Grid
	events chan input.Event
	bg     tcell.Style
}

// Open initialises the controlling terminal.
func Open(grid types.Grid) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	return NewScreen(s, grid), nil
}

// NewScreen wraps an already initialised tcell screen and starts reading its events.
func NewScreen(s tcell.Screen, grid types.Grid) *Screen {
	t := &Screen{
		screen: s,
		grid:   grid,
		events: make(chan input.Event, eventBuffer),
		bg:     tcell.StyleDefault.Background(toTcell(entity.BackgroundColor)),
	}
	go t.pollEvents()
	return t
}

// pollEvents forwards key presses until the screen is finalised, at which
// point PollEvent returns nil.
func (t *Screen) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		in, ok := translateEvent(ev)
		if !ok {
			continue
		}
		select {
		case t.events <- in:
		default:
			// full: the player is mashing keys faster than the game ticks
		}
	}
}

// Drain returns every event received since the previous call.
func (t *Screen) Drain() []input.Event {
	var out []input.Event
	for {
		select {
		case ev := <-t.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (t *Screen) DrawCell(p types.Point, c entity.Color) {
	style := t.bg.Foreground(toTcell(c))
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(p.X*cellWidth+i, p.Y, cellRune, nil, style)
	}
}

func (t *Screen) EraseCell(p types.Point) {
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(p.X*cellWidth+i, p.Y, ' ', nil, t.bg)
	}
}

func (t *Screen) Clear() {
	t.screen.Clear()
	for y := 0; y < t.grid.Height; y++ {
		for x := 0; x < t.grid.Width; x++ {
			t.EraseCell(types.Point{X: x, Y: y})
		}
	}
}

// ShowStatus writes the session line right under the board.
func (t *Screen) ShowStatus(s manager.Snapshot) {
	line := fmt.Sprintf(" length %d  best %d  food %d  resets %d  (arrows/wasd, q quits) ",
		s.Length, s.BestLength, s.FoodsEaten, s.Resets)
	style := tcell.StyleDefault.Foreground(toTcell(entity.OutlineColor))
	width := t.grid.Width * cellWidth
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		t.screen.SetContent(x, t.grid.Height, r, nil, style)
	}
}

func (t *Screen) Flush() error {
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Screen) Close() {
	t.screen.Fini()
}

func translateEvent(ev tcell.Event) (input.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return input.Event{}, false
	}
	switch key.Key() {
	case tcell.KeyUp:
		return input.Press(input.KeyUp), true
	case tcell.KeyDown:
		return input.Press(input.KeyDown), true
	case tcell.KeyLeft:
		return input.Press(input.KeyLeft), true
	case tcell.KeyRight:
		return input.Press(input.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.QuitEvent(), true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'W':
			return input.Press(input.KeyUp), true
		case 's', 'S':
			return input.Press(input.KeyDown), true
		case 'a', 'A':
			return input.Press(input.KeyLeft), true
		case 'd', 'D':
			return input.Press(input.KeyRight), true
		case 'q', 'Q':
			return input.QuitEvent(), true
		}
	}
	return input.Event{}, false
}

func toTcell(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
