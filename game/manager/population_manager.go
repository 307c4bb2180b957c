package manager

import (
	"fmt"

	"snake-game/game/entity"
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

// PopulationManager spawns the player's snake.
type PopulationManager struct {
	grid   types.Grid
	margin int
	rng    *rand.Rand
	color  entity.Color
}

func NewPopulationManager(grid types.Grid, margin int, rng *rand.Rand, color entity.Color) *PopulationManager {
	return &PopulationManager{
		grid:   grid,
		margin: margin,
		rng:    rng,
		color:  color,
	}
}

// CanSpawn reports whether the grid leaves at least one cell that is margin
// cells away from every border.
func (pm *PopulationManager) CanSpawn() bool {
	return pm.grid.Width-2*pm.margin > 0 && pm.grid.Height-2*pm.margin > 0
}

// SpawnSnake creates a one-segment snake at a random cell in
// [margin, size-margin) on both axes.
func (pm *PopulationManager) SpawnSnake() (*entity.Snake, error) {
	if !pm.CanSpawn() {
		return nil, fmt.Errorf("grid %dx%d has no cell %d away from the borders", pm.grid.Width, pm.grid.Height, pm.margin)
	}

	pos := types.Point{
		X: pm.margin + pm.rng.Intn(pm.grid.Width-2*pm.margin),
		Y: pm.margin + pm.rng.Intn(pm.grid.Height-2*pm.margin),
	}
	return entity.NewSnake(pos, pm.color), nil
}
