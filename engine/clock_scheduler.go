package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/Caizj-lg/block-breaker-game/core"
)

// Clock supplies the scheduler's notion of now
type Clock interface {
	Now() time.Time
}

// ClockScheduler runs a tick function on a fixed interval
// Cancellable and pausable; a tick in flight is never interrupted
type ClockScheduler struct {
	clock Clock
	tick  func()

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction
	mu               sync.Mutex

	// Tick counter for debugging and tests
	tickCount atomic.Uint64
	paused    atomic.Bool

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// updateDone signals adapters that a tick finished and a frame can be drawn
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler that calls tick every tickInterval
// Returns the scheduler and the channel signalled after each tick
func NewClockScheduler(tick func(), tickInterval time.Duration, clock Clock) (*ClockScheduler, <-chan struct{}) {
	if clock == nil {
		clock = NewTimeProvider()
	}
	cs := &ClockScheduler{
		clock:        clock,
		tick:         tick,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   make(chan struct{}, 1),
	}
	return cs, cs.updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// Pause suspends ticking without stopping the loop
func (cs *ClockScheduler) Pause() {
	cs.paused.Store(true)
}

// Resume restarts ticking one interval from now
func (cs *ClockScheduler) Resume() {
	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()
	cs.paused.Store(false)
}

// SetRunning maps a running flag onto Pause/Resume, matching the Game clock hook
func (cs *ClockScheduler) SetRunning(running bool) {
	if running {
		cs.Resume()
	} else {
		cs.Pause()
	}
}

func (cs *ClockScheduler) IsPaused() bool {
	return cs.paused.Load()
}

func (cs *ClockScheduler) IsRunning() bool {
	return cs.running.Load()
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.paused.Load() {
			// Increase sleep interval while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			now := cs.clock.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !now.Before(deadline) {
				cs.tick()
				cs.tickCount.Add(1)

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Skip missed ticks instead of bursting to catch up
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = deadline.Sub(cs.clock.Now())
			} else {
				sleepDuration = deadline.Sub(now)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}
