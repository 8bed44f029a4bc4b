package manager

import (
	"classic-snake/game/entity"
	"classic-snake/game/types"
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
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports what the snake's head ran into, if anything.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	head := snake.GetHead()
	if cm.isSnakeCollision(head, snake) {
		return SelfCollision
	}
	if cm.isWallCollision(head) {
		return WallCollision
	}
	return NoCollision
}

// isWallCollision uses a strict bound on the far edges: a head sitting
// exactly on x == Width or y == Height is still in play for that tick.
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return pos.X < 0 || pos.X > cm.grid.Width || pos.Y < 0 || pos.Y > cm.grid.Height
}

// isSnakeCollision checks the head against every other occupied cell.
func (cm *CollisionManager) isSnakeCollision(pos types.Point, snake *entity.Snake) bool {
	for i := snake.Length - 1; i > 0; i-- {
		if pos == snake.Body[i] {
			return true
		}
	}
	return false
}
