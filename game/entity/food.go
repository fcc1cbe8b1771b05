package entity

import "github.com/AkhtemKurtiev/feed-the-python/game/types"

// Food is the single cell the snake is chasing.
type Food struct {
	position types.Point
}

// NewFood returns food parked at the origin; call RandomizePosition before use.
func NewFood() *Food {
	return &Food{}
}

// Position returns the current food cell.
func (f *Food) Position() types.Point {
	return f.position
}

// SetPosition moves the food to p.
func (f *Food) SetPosition(p types.Point) {
	f.position = p
}

// RandomizePosition draws column and row independently and uniformly from the
// grid, stores the result and returns it.
func (f *Food) RandomizePosition(grid types.Grid, rng types.Rand) types.Point {
	f.position = types.Point{
		X: rng.Intn(grid.Width),
		Y: rng.Intn(grid.Height),
	}
	return f.position
}

// Draw paints the food cell.
func (f *Food) Draw(c Canvas) {
	c.DrawCell(f.position, FoodColor)
}
