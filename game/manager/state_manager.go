package manager

import "sync"

// maxScoreHistory caps how many finished games are remembered.
const maxScoreHistory = 50

type GameStats struct {
	HighScore    int
	GamesPlayed  int
	ScoreHistory []int
}

// StateManager keeps the scores of the games finished since the process
// started. Nothing is written to disk.
type StateManager struct {
	mu           sync.RWMutex
	highScore    int
	gamesPlayed  int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0),
	}
}

// RecordGame stores the final score of a finished game and reports whether
// it set a new high score.
func (sm *StateManager) RecordGame(score int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.gamesPlayed++
	if len(sm.scoreHistory) >= maxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)

	if score > sm.highScore {
		sm.highScore = score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.highScore
}

func (sm *StateManager) GetStats() GameStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return GameStats{
		HighScore:    sm.highScore,
		GamesPlayed:  sm.gamesPlayed,
		ScoreHistory: history,
	}
}
