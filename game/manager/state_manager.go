package manager

import (
	"time"
)

const maxHistory = 200 // Finished sessions kept in memory

// GameRecord describes one finished session
type GameRecord struct {
	SessionID string
	Score     int
	Length    int
	Moves     int
	Cause     CollisionType
	Started   time.Duration
	Ended     time.Duration
}

// Duration is the host time the session was alive
func (r GameRecord) Duration() time.Duration {
	return r.Ended - r.Started
}

// StateManager holds the state that outlives a single session: the high
// score and the recent score history. It lives in memory for the process
// lifetime and needs no teardown.
type StateManager struct {
	highScore    int
	gamesPlayed  int
	totalScore   int
	scoreHistory []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]GameRecord, 0),
	}
}

// RecordGameOver applies a finished session. The high score only grows.
func (sm *StateManager) RecordGameOver(rec GameRecord) {
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
	sm.gamesPlayed++
	sm.totalScore += rec.Score
	if len(sm.scoreHistory) >= maxHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, rec)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	out := make([]GameRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// AverageScore over every game played, 0 before the first
func (sm *StateManager) AverageScore() float64 {
	if sm.gamesPlayed == 0 {
		return 0
	}
	return float64(sm.totalScore) / float64(sm.gamesPlayed)
}

func (sm *StateManager) GamesPlayed() int {
	return sm.gamesPlayed
}
