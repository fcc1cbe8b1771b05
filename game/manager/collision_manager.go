package manager

import (
	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	FoodCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case FoodCollision:
		return "food"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return pos == food.Position()
}

// CheckSelfCollision reports a head that ran into the body past its neck.
func (cm *CollisionManager) CheckSelfCollision(snake *entity.Snake) CollisionType {
	if snake.HasSelfCollision() {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks that pos is on the grid and not under the snake.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}
