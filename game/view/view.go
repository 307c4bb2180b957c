// Package view paints a game snapshot onto any surface that can fill grid
// cells and print centered text.
package view

import (
	"fmt"

	"snake-game/game"
	"snake-game/game/entity"
	"snake-game/game/types"
)

var (
	FoodColor = entity.Red
	TextColor = entity.Red
)

// Surface is the drawing side of the presentation layer.
type Surface interface {
	// FillCell paints one grid cell.
	FillCell(pos types.Point, color entity.Color)
	// DrawCenteredText prints text, one line per \n, centered on the surface.
	DrawCenteredText(text string, color entity.Color)
}

// Paint draws the snake, then the food, then the game over overlay if the
// session has ended.
func Paint(s Surface, snap game.Snapshot) {
	for _, p := range snap.Body {
		s.FillCell(p, snap.SnakeColor)
	}
	s.FillCell(snap.Food, FoodColor)

	if snap.Over {
		s.DrawCenteredText(GameOverText(snap.Length), TextColor)
	}
}

func GameOverText(score int) string {
	return fmt.Sprintf("Game Over\nScore: %d\nPress ESC to restart", score)
}
