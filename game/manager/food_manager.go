package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

// maxFoodAttempts bounds the random draws before falling back to a scan of
// the free cells, which keeps a nearly full grid from spinning.
const maxFoodAttempts = 64

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	policy       types.FoodPolicy
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, policy types.FoodPolicy, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		policy:       policy,
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random cell for the next food. With
// FoodResample the cell is never under the snake; ok is false when the snake
// fills the whole grid and there is nowhere left to put it.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	if fm.policy == types.FoodAnywhere {
		return fm.randomCell(), true
	}

	for i := 0; i < maxFoodAttempts; i++ {
		food = fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}

	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}
