package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Ticker is anything advanced one fixed step at a time
type Ticker interface {
	AdvanceOneTick()
}

// ClockScheduler drives a Ticker on a fixed interval
// Deadline-based scheduling corrects drift; pause stops ticking without busy-wait
type ClockScheduler struct {
	target       Ticker
	tickInterval time.Duration
	tickLimit    uint64 // 0 = unlimited

	tickCount atomic.Uint64
	isPaused  atomic.Bool
	stepReq   chan struct{}

	// Non-blocking notification after each tick, consumed by presentation
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler for target with specified tick interval
// Returns the scheduler and a receive channel signalled after every tick
func NewClockScheduler(target Ticker, tickInterval time.Duration) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)
	cs := &ClockScheduler{
		target:       target,
		tickInterval: tickInterval,
		stepReq:      make(chan struct{}, 1),
		updateDone:   updateDone,
	}
	return cs, updateDone
}

// SetTickLimit stops Run after n ticks, 0 disables the limit; must be called before Run
func (cs *ClockScheduler) SetTickLimit(n uint64) {
	cs.tickLimit = n
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// SetPaused suspends or resumes ticking
func (cs *ClockScheduler) SetPaused(paused bool) {
	cs.isPaused.Store(paused)
}

// TogglePause flips pause state and returns the new state
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.isPaused.Load()
		if cs.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsPaused reports pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.isPaused.Load()
}

// Step requests a single tick while paused; ignored if a step is already pending
func (cs *ClockScheduler) Step() {
	select {
	case cs.stepReq <- struct{}{}:
	default:
	}
}

// Run executes ticks until ctx is cancelled or the tick limit is reached
// Returns nil on limit, ctx.Err() on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	nextTickDeadline := time.Now().Add(cs.tickInterval)

	for {
		if cs.tickLimit > 0 && cs.tickCount.Load() >= cs.tickLimit {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-cs.stepReq:
			if cs.isPaused.Load() {
				cs.processTick()
			}

		case <-timer.C:
			now := time.Now()
			if !cs.isPaused.Load() {
				cs.processTick()
			}

			nextTickDeadline = nextTickDeadline.Add(cs.tickInterval)
			// Fell too far behind, skip instead of bursting
			if now.Sub(nextTickDeadline) > cs.tickInterval*2 {
				nextTickDeadline = now.Add(cs.tickInterval)
			}

			sleepDuration := time.Until(nextTickDeadline)
			if sleepDuration < 0 {
				sleepDuration = 0
			}
			timer.Reset(sleepDuration)
		}
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	cs.target.AdvanceOneTick()
	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}
