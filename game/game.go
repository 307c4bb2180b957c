package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"snake-game/game/manager"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrNotOver     = errors.New("game is not over")
	ErrLoopRunning = errors.New("game loop already running")
	ErrNotStarted  = errors.New("game not started")
)

// Game owns the current session and the loop ticking it. Reset replaces both.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	stats  *manager.StateManager
	redraw chan struct{}

	// epoch identifies the current session. Callbacks from a loop whose
	// session has been replaced are dropped.
	epoch atomic.Uint64

	mu      sync.Mutex
	ctx     context.Context
	session *Session
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewGame validates cfg and prepares the first session. Call Start to begin
// ticking.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	session, err := NewSession(cfg, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &Game{
		cfg:     cfg,
		rng:     rng,
		stats:   manager.NewStateManager(),
		redraw:  make(chan struct{}, 1),
		session: session,
	}, nil
}

// Start launches the loop for the current session in the background. The
// context bounds this loop and every loop started by a later Reset.
func (g *Game) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.done != nil {
		return ErrLoopRunning
	}
	g.ctx = ctx
	g.startLocked()
	return nil
}

func (g *Game) startLocked() {
	ctx, cancel := context.WithCancel(g.ctx)
	done := make(chan struct{})
	epoch := g.epoch.Load()
	session := g.session

	loop := NewLoop(LoopOptions{
		Session:  session,
		Interval: g.cfg.TickInterval,
		OnRedraw: g.requestRedraw,
		OnGameOver: func(s Snapshot) {
			g.recordGameOver(epoch, s)
		},
	})

	g.cancel = cancel
	g.done = done
	go func() {
		defer close(done)
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Str("session", session.ID()).Msg("Game loop stopped")
		}
	}()
}

// stopLocked cancels the running loop and waits for it to exit.
func (g *Game) stopLocked() {
	if g.done == nil {
		return
	}
	g.cancel()
	g.session.retire()
	<-g.done
	g.cancel = nil
	g.done = nil
}

// Stop halts the loop. The current session stays readable.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopLocked()
}

// Reset discards a finished session and starts a new one with its own loop.
// The previous loop has fully exited before the new session is created.
func (g *Game) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ctx == nil {
		return ErrNotStarted
	}
	if !g.session.IsOver() {
		return ErrNotOver
	}

	g.stopLocked()
	session, err := NewSession(g.cfg, g.rng)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	g.epoch.Add(1)
	g.session = session
	log.Info().Str("session", session.ID()).Msg("Game reset")

	g.startLocked()
	g.requestRedraw()
	return nil
}

// HandleKey applies a key event. Movement keys steer the snake; the reset
// key only does something once the game is over.
func (g *Game) HandleKey(ev KeyEvent) {
	if dir, ok := ev.Direction(); ok {
		g.currentSession().SetDirection(dir)
		return
	}
	if ev != ResetIfOver {
		return
	}
	if err := g.Reset(); err != nil && !errors.Is(err, ErrNotOver) {
		log.Error().Err(err).Msg("Failed to reset game")
	}
}

// Snapshot returns a copy of the current session, including the best score
// of this process.
func (g *Game) Snapshot() Snapshot {
	s := g.currentSession().Snapshot()
	s.HighScore = g.stats.GetHighScore()
	return s
}

// Redraw delivers a value whenever the state changed since the last receive.
func (g *Game) Redraw() <-chan struct{} {
	return g.redraw
}

func (g *Game) Stats() manager.GameStats {
	return g.stats.GetStats()
}

func (g *Game) currentSession() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

func (g *Game) requestRedraw() {
	select {
	case g.redraw <- struct{}{}:
	default:
		// a redraw is already pending
	}
}

func (g *Game) recordGameOver(epoch uint64, s Snapshot) {
	if epoch != g.epoch.Load() {
		return
	}
	if g.stats.RecordGame(s.Length) {
		log.Info().Str("session", s.SessionID).Int("high_score", s.Length).Msg("New high score")
	}
}
