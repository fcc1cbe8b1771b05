package game

import (
	"context"
	"fmt"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/input"
	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	"go.uber.org/zap"
)

// Renderer is a render sink. The game never reads back from it.
type Renderer interface {
	DrawCell(p types.Point, c entity.Color)
	EraseCell(p types.Point)
	// Clear paints the whole board with the background colour.
	Clear()
	// Flush presents everything drawn since the previous Flush.
	Flush() error
}

// StatusSink is implemented by renderers that can show session statistics.
type StatusSink interface {
	ShowStatus(s manager.Snapshot)
}

// InputSource hands over every event that arrived since the last call
// without blocking.
type InputSource interface {
	Drain() []input.Event
}

// Pacer blocks until the next tick is due.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Run draws the first frame and then ticks at the pacer's rate until a quit
// event arrives (nil error), ctx is cancelled, or the renderer fails.
func (g *Game) Run(ctx context.Context, src InputSource, r Renderer, p Pacer) error {
	g.log.Info("game loop started")
	if err := g.Draw(r); err != nil {
		return fmt.Errorf("draw first frame: %w", err)
	}

	for {
		if err := p.Wait(ctx); err != nil {
			g.log.Info("game loop stopped", zap.Error(err))
			return err
		}

		res := g.Tick(src.Drain())
		if res.Quit {
			snap := g.stats.Snapshot()
			g.log.Info("game loop finished",
				zap.Int("best_length", snap.BestLength),
				zap.Int("foods", snap.FoodsEaten),
				zap.Int("resets", snap.Resets),
				zap.Int64("ticks", snap.Ticks),
			)
			return nil
		}

		if err := g.Draw(r); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}
	}
}
