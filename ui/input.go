package ui

import (
	"snake-game/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key   int32
	event game.KeyEvent
}{
	{rl.KeyUp, game.MoveUp},
	{rl.KeyDown, game.MoveDown},
	{rl.KeyLeft, game.MoveLeft},
	{rl.KeyRight, game.MoveRight},
	{rl.KeyEscape, game.ResetIfOver},
}

// PollKeys returns the key events pressed since the previous frame, in
// binding order.
func PollKeys() []game.KeyEvent {
	var events []game.KeyEvent
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			events = append(events, b.event)
		}
	}
	return events
}
