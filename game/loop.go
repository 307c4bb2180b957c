package game

import (
	"context"
	"time"
)

// Loop drives a single session at a fixed cadence until the snake crashes or
// the context is cancelled. A Loop runs once; a reset starts a new one.
type Loop struct {
	session    *Session
	interval   time.Duration
	onRedraw   func()
	onGameOver func(Snapshot)
}

// LoopOptions contains options for creating a new Loop.
type LoopOptions struct {
	Session  *Session
	Interval time.Duration
	// OnRedraw is called after every tick and once more after game over.
	OnRedraw func()
	// OnGameOver is called once with the final state, before the last redraw.
	OnGameOver func(Snapshot)
}

func NewLoop(opts LoopOptions) *Loop {
	l := &Loop{
		session:    opts.Session,
		interval:   opts.Interval,
		onRedraw:   opts.OnRedraw,
		onGameOver: opts.OnGameOver,
	}
	if l.onRedraw == nil {
		l.onRedraw = func() {}
	}
	if l.onGameOver == nil {
		l.onGameOver = func(Snapshot) {}
	}
	return l
}

// Run ticks until game over or ctx is done. It returns ctx.Err() when
// cancelled and nil when the game ended.
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		l.session.Advance()
		if l.session.IsGameOver() {
			snapshot := l.session.finish()
			l.session.logger.Info().
				Int("length", snapshot.Length).
				Str("cause", snapshot.Cause.String()).
				Msg("Game over")
			l.onGameOver(snapshot)
			l.onRedraw()
			return nil
		}
		l.onRedraw()

		wait := l.interval - time.Since(start)
		if wait < 0 {
			l.session.logger.Warn().
				Dur("overrun", -wait).
				Msg("Tick took longer than the interval")
			wait = 0
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}
