package view

import (
	"testing"

	"snake-game/game"
	"snake-game/game/entity"
	"snake-game/game/types"

	"github.com/stretchr/testify/assert"
)

type cell struct {
	pos   types.Point
	color entity.Color
}

type fakeSurface struct {
	cells []cell
	texts []string
}

func (f *fakeSurface) FillCell(pos types.Point, color entity.Color) {
	f.cells = append(f.cells, cell{pos: pos, color: color})
}

func (f *fakeSurface) DrawCenteredText(text string, _ entity.Color) {
	f.texts = append(f.texts, text)
}

func TestPaint(t *testing.T) {
	snap := game.Snapshot{
		Body:       []types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:       types.Point{X: 7, Y: 7},
		Length:     2,
		SnakeColor: entity.Black,
	}

	t.Run("running", func(t *testing.T) {
		s := &fakeSurface{}
		Paint(s, snap)
		assert.Equal(t, []cell{
			{pos: types.Point{X: 2, Y: 2}, color: entity.Black},
			{pos: types.Point{X: 1, Y: 2}, color: entity.Black},
			{pos: types.Point{X: 7, Y: 7}, color: FoodColor},
		}, s.cells)
		assert.Empty(t, s.texts)
	})

	t.Run("over", func(t *testing.T) {
		s := &fakeSurface{}
		over := snap
		over.Over = true
		Paint(s, over)
		assert.Len(t, s.cells, 3)
		assert.Equal(t, []string{"Game Over\nScore: 2\nPress ESC to restart"}, s.texts)
	})
}
