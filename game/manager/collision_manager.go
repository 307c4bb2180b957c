package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
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

type CollisionManager struct {
	grid   types.Grid
	policy types.BoundaryPolicy
}

func NewCollisionManager(grid types.Grid, policy types.BoundaryPolicy) *CollisionManager {
	return &CollisionManager{
		grid:   grid,
		policy: policy,
	}
}

// CheckCollision reports whether the snake's head hit itself or a wall.
// Self collision wins when both apply.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isSelfCollision(snake) {
		return SelfCollision
	}
	if cm.IsWallCollision(snake.GetHead()) {
		return WallCollision
	}
	return NoCollision
}

// IsWallCollision checks if a position lies outside the grid under the
// configured boundary policy.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	if pos.X < 0 || pos.Y < 0 {
		return true
	}
	if cm.policy == types.BoundaryLenient {
		return pos.X > cm.grid.Width || pos.Y > cm.grid.Height
	}
	return pos.X >= cm.grid.Width || pos.Y >= cm.grid.Height
}

// isSelfCollision checks whether the head shares a cell with any other segment.
func (cm *CollisionManager) isSelfCollision(snake *entity.Snake) bool {
	head := snake.GetHead()
	for _, part := range snake.Body[1:] {
		if head.X == part.X && head.Y == part.Y {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a position is inside the grid and free of
// the snake. A nil snake only checks the grid.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if pos.X < 0 || pos.X >= cm.grid.Width || pos.Y < 0 || pos.Y >= cm.grid.Height {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
