package types

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when a grid is built with a non-positive dimension.
var ErrInvalidGrid = errors.New("invalid grid")

// Point addresses one cell of the grid: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewGrid returns a grid of width x height cells.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Wrap maps any point onto the torus. Each axis wraps on its own, so a step
// that leaves the grid through a corner is corrected on both axes.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrapAxis(p.X, g.Width), Y: wrapAxis(p.Y, g.Height)}
}

func wrapAxis(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Contains reports whether p lies inside [0,Width)x[0,Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell the snake starts from.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Rand is the slice of a random source the game needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}
