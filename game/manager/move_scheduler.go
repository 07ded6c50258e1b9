package manager

import (
	"time"

	"snake-rules/game/types"
)

// MoveScheduler runs the two move cadences. Input moves fire as soon as a
// key is pressed, rate limited by MinMoveInterval. Timer moves fire every
// BaseUpdateInterval on ticks without input.
type MoveScheduler struct {
	updateTimer  time.Duration
	lastMoveTime time.Duration
}

func NewMoveScheduler() *MoveScheduler {
	return &MoveScheduler{}
}

// Update accumulates delta and reports whether a move happens at now.
// An input tick that is still cooling down does not fall back to the timer.
func (ms *MoveScheduler) Update(delta, now time.Duration, input bool) bool {
	ms.updateTimer += delta

	move := (input && now-ms.lastMoveTime >= types.MinMoveInterval) ||
		(!input && ms.updateTimer >= types.BaseUpdateInterval)
	if !move {
		return false
	}

	ms.lastMoveTime = now
	if input {
		ms.updateTimer = 0
	} else {
		// Decrement rather than reset so overshoot carries into the next interval
		ms.updateTimer -= types.BaseUpdateInterval
	}
	return true
}

func (ms *MoveScheduler) Timer() time.Duration {
	return ms.updateTimer
}

func (ms *MoveScheduler) LastMoveTime() time.Duration {
	return ms.lastMoveTime
}
