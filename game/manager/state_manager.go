package manager

import (
	"sync"
	"time"

	"classic-snake/game/types"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string
	Score     int
	StartTime time.Time
	EndTime   time.Time
	Cause     types.CollisionType
}

// Duration is how long the round lasted.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps in-memory statistics for the current session. Nothing
// outlives the process.
type StateManager struct {
	mutex     sync.RWMutex
	rounds    []RoundRecord
	highScore int
}

func NewStateManager() *StateManager {
	return &StateManager{
		rounds: make([]RoundRecord, 0),
	}
}

// AddRound records a finished round and updates the session best.
func (sm *StateManager) AddRound(r RoundRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.rounds = append(sm.rounds, r)
	if r.Score > sm.highScore {
		sm.highScore = r.Score
	}
}

func (sm *StateManager) GetHighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

func (sm *StateManager) GetRoundsPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.rounds)
}

// GetRounds returns a copy of the recorded rounds, oldest first.
func (sm *StateManager) GetRounds() []RoundRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]RoundRecord, len(sm.rounds))
	copy(out, sm.rounds)
	return out
}

// GetAverageScore returns the mean score over all rounds, 0 when none.
func (sm *StateManager) GetAverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}

// GetAverageDuration returns the mean round length, 0 when none.
func (sm *StateManager) GetAverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.rounds {
		total += r.Duration()
	}
	return total / time.Duration(len(sm.rounds))
}

// Summary is a point-in-time view for renderers and logs.
type Summary struct {
	RoundsPlayed    int
	HighScore       int
	AverageScore    float64
	AverageDuration time.Duration
}

func (sm *StateManager) Summary() Summary {
	return Summary{
		RoundsPlayed:    sm.GetRoundsPlayed(),
		HighScore:       sm.GetHighScore(),
		AverageScore:    sm.GetAverageScore(),
		AverageDuration: sm.GetAverageDuration(),
	}
}
