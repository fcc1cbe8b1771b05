package types

import "strings"

// Direction is one of the four cardinal headings.
type Direction int

const (
	None Direction = iota // no direction; never a snake heading
	Up
	Right
	Down
	Left
)

// Directions lists the four headings a snake can travel in.
var Directions = [...]Direction{Up, Down, Left, Right}

// Vector converts a Direction into its unit displacement. Rows grow downwards.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the heading a 180 degree turn would produce.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// ParseDirection is the inverse of String. Unknown names yield None.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up
	case "right":
		return Right
	case "down":
		return Down
	case "left":
		return Left
	default:
		return None
	}
}
