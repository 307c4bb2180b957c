package game

import (
	"context"
	"testing"
	"time"

	"snake-game/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "zero width", mutate: func(c *Config) { c.Grid.Width = 0 }, wantErr: ErrInvalidConfig},
		{name: "zero scale", mutate: func(c *Config) { c.Scale = 0 }, wantErr: ErrInvalidConfig},
		{name: "zero interval", mutate: func(c *Config) { c.TickInterval = 0 }, wantErr: ErrInvalidConfig},
		{name: "negative margin", mutate: func(c *Config) { c.Margin = -1 }, wantErr: ErrInvalidConfig},
		{name: "no room for margin", mutate: func(c *Config) { c.Grid = types.Grid{Width: 6, Height: 40} }, wantErr: ErrGridTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := NewGame(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.Grid{Width: 40, Height: 40}, cfg.Grid)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval)
}

func TestGame_ResetRequiresGameOver(t *testing.T) {
	g, err := NewGame(testConfig(10, 10))
	require.NoError(t, err)

	assert.ErrorIs(t, g.Reset(), ErrNotStarted)

	require.NoError(t, g.Start(context.Background()))
	defer g.Stop()
	assert.ErrorIs(t, g.Start(context.Background()), ErrLoopRunning)

	assert.ErrorIs(t, g.Reset(), ErrNotOver)
	g.HandleKey(ResetIfOver)
	assert.False(t, g.Snapshot().Over)
}

func TestGame_PlayAndReset(t *testing.T) {
	g, err := NewGame(testConfig(10, 10))
	require.NoError(t, err)
	first := g.Snapshot()

	g.HandleKey(MoveLeft)
	require.NoError(t, g.Start(context.Background()))
	defer g.Stop()

	select {
	case <-g.Redraw():
	case <-time.After(time.Second):
		t.Fatal("no redraw requested")
	}

	require.Eventually(t, func() bool { return g.Stats().GamesPlayed == 1 }, time.Second, time.Millisecond)
	over := g.Snapshot()
	require.True(t, over.Over)
	assert.Equal(t, first.SessionID, over.SessionID)
	assert.Equal(t, types.Point{}, over.Direction)
	assert.Equal(t, over.Length, over.HighScore)

	// steering a finished game changes nothing
	g.HandleKey(MoveUp)
	assert.Equal(t, types.Point{}, g.Snapshot().Direction)

	g.HandleKey(ResetIfOver)
	next := g.Snapshot()
	assert.NotEqual(t, first.SessionID, next.SessionID)
	assert.False(t, next.Over)
	assert.Equal(t, 1, next.Length)
	assert.Equal(t, types.Point{}, next.Direction)
	head := next.Body[0]
	assert.True(t, head.X >= 3 && head.X < 7 && head.Y >= 3 && head.Y < 7)
	assert.Equal(t, 1, g.Stats().GamesPlayed)
}
