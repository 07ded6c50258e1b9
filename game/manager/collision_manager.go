package manager

import (
	"snake-rules/game/entity"
	"snake-rules/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Terminal reports whether the collision ends the session
func (c CollisionType) Terminal() bool {
	return c != NoCollision
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check judges the snake after a committed move. Walls win over self
// collision when both hold.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(snake.Body()) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision compares the head with every other segment
func (cm *CollisionManager) isSelfCollision(body []types.Point) bool {
	head := body[0]
	for _, part := range body[1:] {
		if part == head {
			return true
		}
	}
	return false
}
