package game

import (
	"errors"
	"fmt"
	"time"

	"snake-game/game/types"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrGridTooSmall  = errors.New("grid too small")
)

// Config holds the fixed parameters of a game. There are no flags or config
// files; main runs with DefaultConfig.
type Config struct {
	Grid         types.Grid
	Scale        int // pixels per cell
	TickInterval time.Duration
	Margin       int // minimum distance of the spawn cell from every border
	Boundary     types.BoundaryPolicy
	Food         types.FoodPolicy
	Seed         uint64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Grid:         types.Grid{Width: 40, Height: 40},
		Scale:        16,
		TickInterval: 200 * time.Millisecond,
		Margin:       3,
		Boundary:     types.BoundaryExclusive,
		Food:         types.FoodResample,
	}
}

func (c Config) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %d", ErrInvalidConfig, c.Scale)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.Margin < 0 {
		return fmt.Errorf("%w: margin %d", ErrInvalidConfig, c.Margin)
	}
	if c.Grid.Width <= 2*c.Margin || c.Grid.Height <= 2*c.Margin {
		return fmt.Errorf("%w: %dx%d leaves no cell %d away from the borders", ErrGridTooSmall, c.Grid.Width, c.Grid.Height, c.Margin)
	}
	return nil
}
