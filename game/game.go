package game

import (
	"time"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/input"
	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// TickResult summarises what happened during one tick.
type TickResult struct {
	Ate    bool
	Reset  bool
	Quit   bool
	Length int
}

// Game owns the snake, the food and the per-tick rules. It is driven from a
// single goroutine and is not safe for concurrent use.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	snake        *entity.Snake
	food         *entity.Food
	translator   input.Translator
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stats        *manager.StatsManager
	rng          types.Rand
	log          *zap.Logger

	needsClear bool
}

// NewRand returns the random source used for food and reset headings.
// A zero seed picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// NewGame sets up a snake moving right from the centre and places the first food.
func NewGame(grid types.Grid, policy manager.FoodPolicy, rng types.Rand, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	gameUUID := uuid.New().String()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(grid, types.Right),
		food:         entity.NewFood(),
		translator:   input.NewTranslator(),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, policy, rng, collisionMgr),
		stats:        manager.NewStatsManager(gameUUID),
		rng:          rng,
		log:          log.With(zap.String("session", gameUUID)),
		needsClear:   true,
	}
	g.foodMgr.Respawn(g.food, g.snake)

	g.log.Info("game created",
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Stringer("food_policy", policy),
		zap.Stringer("food", g.food.Position()),
	)
	return g
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() *entity.Food {
	return g.food
}

// Stats returns a copy of the session statistics.
func (g *Game) Stats() manager.Snapshot {
	return g.stats.Snapshot()
}

// Tick runs one step of the game with the events gathered since the last one.
// A quit event stops the tick before anything is mutated.
func (g *Game) Tick(events []input.Event) TickResult {
	start := time.Now()

	for _, ev := range events {
		switch ev.Type {
		case input.Quit:
			g.log.Info("quit requested", zap.Int("length", g.snake.Len()))
			return TickResult{Quit: true, Length: g.snake.Len()}
		case input.KeyPress:
			if dir, ok := g.translator.Translate(ev.Key, g.snake.Direction()); ok {
				g.snake.SetNextDirection(dir)
			}
		}
	}

	var res TickResult
	g.snake.ApplyPendingDirection()
	g.snake.Advance(g.Grid)

	if g.collisionMgr.IsFoodCollision(g.snake.GetHead(), g.food) {
		g.snake.Grow()
		g.stats.RecordFood()
		eatenAt := g.food.Position()
		g.foodMgr.Respawn(g.food, g.snake)
		res.Ate = true
		g.log.Debug("food eaten",
			zap.Stringer("at", eatenAt),
			zap.Int("target_length", g.snake.TargetLength()),
			zap.Stringer("next_food", g.food.Position()),
		)
	}

	g.snake.TrimToTarget()

	if g.collisionMgr.CheckSelfCollision(g.snake) == manager.SelfCollision {
		finalLength := g.snake.Len()
		g.snake.Reset(g.Grid, g.rng)
		g.foodMgr.Respawn(g.food, g.snake)
		g.stats.RecordReset(finalLength)
		g.needsClear = true
		res.Reset = true
		g.log.Info("self collision, snake reset",
			zap.Int("final_length", finalLength),
			zap.Stringer("direction", g.snake.Direction()),
		)
	}

	res.Length = g.snake.Len()
	g.stats.RecordTick(time.Since(start), res.Length)
	return res
}

// Draw sends the current frame to r: a clear after a reset, the vacated tail
// cell, the body, the head, then the food.
func (g *Game) Draw(r Renderer) error {
	if g.needsClear {
		r.Clear()
		g.needsClear = false
	}
	for _, d := range []entity.Drawable{g.snake, g.food} {
		d.Draw(r)
	}
	if s, ok := r.(StatusSink); ok {
		s.ShowStatus(g.stats.Snapshot())
	}
	return r.Flush()
}
