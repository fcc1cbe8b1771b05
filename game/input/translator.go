package input

import "github.com/AkhtemKurtiev/feed-the-python/game/types"

// turn is a row of the turn table: pressing key yields result unless the
// snake is currently travelling towards guard.
type turn struct {
	key   Key
	guard types.Direction
}

var turns = map[turn]types.Direction{
	{KeyUp, types.Down}:    types.Up,
	{KeyDown, types.Up}:    types.Down,
	{KeyLeft, types.Right}: types.Left,
	{KeyRight, types.Left}: types.Right,
}

// guards indexes the table by key.
var guards = func() map[Key]turn {
	m := make(map[Key]turn, len(turns))
	for t := range turns {
		m[t.key] = t
	}
	return m
}()

// Translator turns raw keys into validated headings. It is stateless.
type Translator struct{}

// NewTranslator returns the fixed arrow-key translator.
func NewTranslator() Translator {
	return Translator{}
}

// Translate returns the heading requested by key, or false when the key is
// unknown or would reverse the snake onto itself.
func (Translator) Translate(key Key, current types.Direction) (types.Direction, bool) {
	t, ok := guards[key]
	if !ok || current == t.guard {
		return types.None, false
	}
	return turns[t], true
}
