package game

import "snake-game/game/types"

// KeyEvent is a discrete input signal from the presentation layer.
type KeyEvent int

const (
	KeyNone KeyEvent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	ResetIfOver
)

// Direction maps a movement key to its direction. ok is false for keys that
// do not steer.
func (k KeyEvent) Direction() (dir types.Direction, ok bool) {
	switch k {
	case MoveUp:
		return types.Up, true
	case MoveDown:
		return types.Down, true
	case MoveLeft:
		return types.Left, true
	case MoveRight:
		return types.Right, true
	default:
		return types.None, false
	}
}
