package entity

import "github.com/AkhtemKurtiev/feed-the-python/game/types"

// Canvas is the part of a render sink a Drawable needs.
type Canvas interface {
	DrawCell(p types.Point, c Color)
	EraseCell(p types.Point)
}

// Drawable is implemented by everything that shows up on the grid.
type Drawable interface {
	Draw(c Canvas)
}
