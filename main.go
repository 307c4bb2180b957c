package main

import (
	"context"
	"os"
	"time"

	"snake-game/game"
	"snake-game/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := game.DefaultConfig()
	g, err := game.NewGame(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create game")
	}

	rl.InitWindow(int32(cfg.Scale*cfg.Grid.Width), int32(cfg.Scale*cfg.Grid.Height), "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull) // ESC restarts, closing the window quits
	rl.SetTargetFPS(60)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := g.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start game loop")
	}
	defer g.Stop()

	renderer := ui.NewRenderer(cfg.Scale)
	snapshot := g.Snapshot()

	for !rl.WindowShouldClose() {
		for _, ev := range ui.PollKeys() {
			g.HandleKey(ev)
		}

		select {
		case <-g.Redraw():
			snapshot = g.Snapshot()
		default:
		}

		renderer.Draw(snapshot)
	}

	stats := g.Stats()
	log.Info().
		Int("games", stats.GamesPlayed).
		Int("high_score", stats.HighScore).
		Msg("Window closed")
}
