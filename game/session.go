package game

import (
	"fmt"
	"sync"

	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Snapshot is a copy of a session's state, safe to read without locks.
type Snapshot struct {
	SessionID  string
	Grid       types.Grid
	Body       []types.Point
	Food       types.Point
	Direction  types.Point
	Length     int
	Over       bool
	Cause      manager.CollisionType
	SnakeColor entity.Color
	HighScore  int
}

// Session is one playthrough. The mutex guards every field below it: the
// input thread writes the direction, the tick loop moves the snake and the
// render thread reads snapshots.
type Session struct {
	id           string
	grid         types.Grid
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	logger       zerolog.Logger

	mutex   sync.RWMutex
	snake   *entity.Snake
	food    types.Point
	length  int
	over    bool
	retired bool
	cause   manager.CollisionType
}

// NewSession places a fresh one-segment snake at least cfg.Margin cells from
// every border, standing still, and drops the first food.
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	popMgr := manager.NewPopulationManager(cfg.Grid, cfg.Margin, rng, entity.Black)
	snake, err := popMgr.SpawnSnake()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGridTooSmall, err)
	}

	s := newSession(cfg, rng, snake)
	if food, ok := s.foodMgr.GenerateFood(snake); ok {
		s.food = food
	}

	s.logger.Info().
		Int("head_x", snake.GetHead().X).
		Int("head_y", snake.GetHead().Y).
		Int("food_x", s.food.X).
		Int("food_y", s.food.Y).
		Msg("Session started")
	return s, nil
}

func newSession(cfg Config, rng *rand.Rand, snake *entity.Snake) *Session {
	id := uuid.New().String()
	collisionMgr := manager.NewCollisionManager(cfg.Grid, cfg.Boundary)
	return &Session{
		id:           id,
		grid:         cfg.Grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, rng, cfg.Food, collisionMgr),
		logger:       log.With().Str("session", id).Logger(),
		snake:        snake,
		length:       snake.Len(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// SetDirection overwrites the heading; the last call before a tick wins.
// It has no effect once the game is over.
func (s *Session) SetDirection(dir types.Direction) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.over || s.retired {
		return
	}
	s.snake.SetDirection(dir.ToPoint())
}

// Advance applies one tick: the head moves by the current direction and the
// other segments follow. Reaching the food grows the snake at the old tail
// cell, moves the food and returns true.
func (s *Session) Advance() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.over || s.retired {
		return false
	}

	newHead := s.snake.NextHead()
	oldTail := s.snake.Move(newHead)
	if !s.collisionMgr.IsFoodCollision(newHead, s.food) {
		return false
	}

	s.snake.Grow(oldTail)
	s.length++
	if food, ok := s.foodMgr.GenerateFood(s.snake); ok {
		s.food = food
	} else {
		s.logger.Warn().Int("length", s.length).Msg("No free cell left for food")
	}

	s.logger.Debug().
		Int("length", s.length).
		Int("food_x", s.food.X).
		Int("food_y", s.food.Y).
		Msg("Food eaten")
	return true
}

// IsGameOver reports whether the head overlaps another segment or left the
// grid. It does not change any state.
func (s *Session) IsGameOver() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.collisionMgr.CheckCollision(s.snake) != manager.NoCollision
}

// finish halts the snake and marks the session over.
func (s *Session) finish() Snapshot {
	s.mutex.Lock()
	s.cause = s.collisionMgr.CheckCollision(s.snake)
	s.snake.SetDirection(types.Point{})
	s.over = true
	s.mutex.Unlock()

	return s.Snapshot()
}

// retire makes every later Advance and SetDirection a no-op.
func (s *Session) retire() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.retired = true
}

func (s *Session) IsOver() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.over
}

func (s *Session) Length() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.length
}

func (s *Session) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	// Copy values while holding lock to minimize lock time
	body := make([]types.Point, len(s.snake.Body))
	copy(body, s.snake.Body)
	return Snapshot{
		SessionID:  s.id,
		Grid:       s.grid,
		Body:       body,
		Food:       s.food,
		Direction:  s.snake.Direction,
		Length:     s.length,
		Over:       s.over,
		Cause:      s.cause,
		SnakeColor: s.snake.Color,
	}
}
