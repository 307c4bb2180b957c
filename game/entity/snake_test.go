package entity

import (
	"testing"

	"snake-game/game/types"

	"github.com/stretchr/testify/assert"
)

func TestSnake_Move(t *testing.T) {
	tests := []struct {
		name     string
		body     []types.Point
		dir      types.Point
		wantBody []types.Point
		wantTail types.Point
	}{
		{
			name:     "single segment",
			body:     []types.Point{{X: 5, Y: 5}},
			dir:      types.Right.ToPoint(),
			wantBody: []types.Point{{X: 6, Y: 5}},
			wantTail: types.Point{X: 5, Y: 5},
		},
		{
			name:     "segments follow their predecessor",
			body:     []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
			dir:      types.Down.ToPoint(),
			wantBody: []types.Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 5}},
			wantTail: types.Point{X: 3, Y: 5},
		},
		{
			name:     "not moving",
			body:     []types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}},
			dir:      types.Point{},
			wantBody: []types.Point{{X: 2, Y: 2}, {X: 2, Y: 2}},
			wantTail: types.Point{X: 2, Y: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Snake{Body: append([]types.Point(nil), tt.body...), Direction: tt.dir}
			tail := s.Move(s.NextHead())
			assert.Equal(t, tt.wantBody, s.Body)
			assert.Equal(t, tt.wantTail, tail)
		})
	}
}

func TestSnake_Grow(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, Black)
	s.SetDirection(types.Right.ToPoint())

	tail := s.Move(s.NextHead())
	s.Grow(tail)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.GetHead())
	assert.Equal(t, types.Point{X: 5, Y: 5}, s.GetTail())
	assert.True(t, s.Occupies(types.Point{X: 5, Y: 5}))
	assert.False(t, s.Occupies(types.Point{X: 7, Y: 5}))
}
