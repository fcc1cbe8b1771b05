// Package input models raw player events and turns them into snake headings.
package input

import "github.com/AkhtemKurtiev/feed-the-python/game/types"

// Key is a frontend-independent directional key.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "KeyUp"
	case KeyDown:
		return "KeyDown"
	case KeyLeft:
		return "KeyLeft"
	case KeyRight:
		return "KeyRight"
	default:
		return "KeyNone"
	}
}

// EventType distinguishes quit requests from key presses.
type EventType int

const (
	KeyPress EventType = iota
	Quit
)

// Event is one raw item produced by an input source.
type Event struct {
	Type EventType
	Key  Key
}

// Press builds a key press event.
func Press(k Key) Event {
	return Event{Type: KeyPress, Key: k}
}

// QuitEvent builds a quit request.
func QuitEvent() Event {
	return Event{Type: Quit}
}

// KeyFor maps a heading back to the key that requests it.
func KeyFor(d types.Direction) Key {
	switch d {
	case types.Up:
		return KeyUp
	case types.Down:
		return KeyDown
	case types.Left:
		return KeyLeft
	case types.Right:
		return KeyRight
	default:
		return KeyNone
	}
}
