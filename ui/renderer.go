package ui

import (
	"strings"

	"snake-game/game"
	"snake-game/game/entity"
	"snake-game/game/types"
	"snake-game/game/view"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize    = 28
	lineSpacing = 6
)

// Renderer paints snapshots into the raylib window. It implements
// view.Surface and must be used from the thread that opened the window.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	background   rl.Color
}

func NewRenderer(cellSize int) *Renderer {
	r := &Renderer{
		cellSize:   int32(cellSize),
		background: rl.RayWhite,
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame of the given snapshot.
func (r *Renderer) Draw(snap game.Snapshot) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(r.background)
	view.Paint(r, snap)
}

// FillCell leaves a one pixel gap on the right and bottom of every cell so
// adjacent segments stay distinguishable.
func (r *Renderer) FillCell(pos types.Point, color entity.Color) {
	rl.DrawRectangle(
		int32(pos.X)*r.cellSize,
		int32(pos.Y)*r.cellSize,
		r.cellSize-1, r.cellSize-1,
		toRaylib(color))
}

func (r *Renderer) DrawCenteredText(text string, color entity.Color) {
	lines := strings.Split(text, "\n")
	blockHeight := int32(len(lines))*(fontSize+lineSpacing) - lineSpacing
	y := (r.screenHeight - blockHeight) / 2

	for _, line := range lines {
		width := rl.MeasureText(line, fontSize)
		rl.DrawText(line, (r.screenWidth-width)/2, y, fontSize, toRaylib(color))
		y += fontSize + lineSpacing
	}
}

func toRaylib(c entity.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
