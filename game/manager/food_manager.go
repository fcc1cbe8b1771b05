package manager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
)

// ErrUnknownFoodPolicy is returned by ParseFoodPolicy.
var ErrUnknownFoodPolicy = errors.New("unknown food policy")

// FoodPolicy decides whether food may land on the snake.
type FoodPolicy int

const (
	// AllowOverlap places food anywhere on the grid, snake included.
	AllowOverlap FoodPolicy = iota
	// NoOverlap only places food on cells the snake does not occupy.
	NoOverlap
)

func (p FoodPolicy) String() string {
	if p == NoOverlap {
		return "strict"
	}
	return "allow"
}

// ParseFoodPolicy accepts "allow" or "strict".
func ParseFoodPolicy(s string) (FoodPolicy, error) {
	switch strings.ToLower(s) {
	case "allow", "":
		return AllowOverlap, nil
	case "strict":
		return NoOverlap, nil
	default:
		return AllowOverlap, fmt.Errorf("%w: %q", ErrUnknownFoodPolicy, s)
	}
}

// maxSpawnTries bounds rejection sampling before falling back to a scan of
// free cells.
const maxSpawnTries = 64

type FoodManager struct {
	grid         types.Grid
	policy       FoodPolicy
	rng          types.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, policy FoodPolicy, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		policy:       policy,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Policy() FoodPolicy {
	return fm.policy
}

// Respawn moves food to a new cell according to the policy and returns it.
// Under NoOverlap a full grid leaves no free cell; food then goes anywhere.
func (fm *FoodManager) Respawn(food *entity.Food, snake *entity.Snake) types.Point {
	if fm.policy == AllowOverlap || snake == nil {
		return food.RandomizePosition(fm.grid, fm.rng)
	}

	for i := 0; i < maxSpawnTries; i++ {
		p := food.RandomizePosition(fm.grid, fm.rng)
		if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
			return p
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return food.RandomizePosition(fm.grid, fm.rng)
	}
	p := free[fm.rng.Intn(len(free))]
	food.SetPosition(p)
	return p
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, fm.grid.Area())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	return free
}
