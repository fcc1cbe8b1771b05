package entity

// Color is a plain RGB triple; frontends convert it to their own type.
type Color struct {
	R, G, B uint8
}

// Fixed palette.
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BodyColor       = Color{R: 0, G: 255, B: 0}
	FoodColor       = Color{R: 255, G: 0, B: 0}
	OutlineColor    = Color{R: 93, G: 216, B: 228}
)

// OutlineWidth is the border thickness, in pixels, of every drawn cell.
const OutlineWidth = 1
