package web

import (
	"fmt"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
)

// Op is one draw command sent to browsers.
type Op struct {
	Op    string `json:"op"` // draw, erase or clear
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color,omitempty"`
}

// Frame carries the commands issued between two flushes.
// Example: {"type":"frame","ops":[{"op":"draw","x":3,"y":4,"color":"#00ff00"}]}
type Frame struct {
	Type   string            `json:"type"`
	Ops    []Op              `json:"ops"`
	Status *manager.Snapshot `json:"status,omitempty"`
}

// Hello is the first message of a connection: board geometry and palette
// plus every cell currently drawn.
type Hello struct {
	Type         string `json:"type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	CellSize     int    `json:"cell"`
	Background   string `json:"background"`
	Outline      string `json:"outline"`
	OutlineWidth int    `json:"outlineWidth"`
	Cells        []Op   `json:"cells"`
}

// InputMessage is what browsers send.
// Example: {"type":"move","command":"up"} or {"type":"quit"}
type InputMessage struct {
	Type    string `json:"type"`
	Command string `json:"command,omitempty"`
}

func hexColor(c entity.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
