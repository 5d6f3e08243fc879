// Package loop drives a per-frame step function off a [Scheduler].
//
// A Loop counts ticks and measures the wall time between consecutive
// frames. Once cancelled, no further step runs, even if the scheduler
// delivers a callback that was already in flight.
package loop

import (
	"sync"
	"time"
)

// Frame is what a step receives for one animation frame.
type Frame struct {
	Tick    uint64
	Now     time.Time
	DeltaMs float64
}

type StepFunc func(f Frame)

type Loop struct {
	sched Scheduler
	step  StepFunc

	mu      sync.Mutex
	running bool
	gen     uint64
	handle  Handle
	tick    uint64
	last    time.Time
}

func New(sched Scheduler, step StepFunc) *Loop {
	return &Loop{sched: sched, step: step}
}

// Start begins requesting frames. The tick counter resets to 0 and the
// first frame reports a zero delta. Starting a running loop does nothing.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return
	}
	l.running = true
	l.gen++
	l.tick = 0
	l.last = time.Time{}
	l.requestLocked()
}

// Cancel stops requesting frames and cancels the pending frame. It is idempotent.
func (l *Loop) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	l.running = false
	l.gen++
	if l.handle != nil {
		l.handle.Cancel()
		l.handle = nil
	}
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Tick is the number of frames run since the last Start.
func (l *Loop) Tick() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tick
}

func (l *Loop) requestLocked() {
	gen := l.gen
	l.handle = l.sched.Request(func(now time.Time) { l.frame(gen, now) })
}

func (l *Loop) frame(gen uint64, now time.Time) {
	l.mu.Lock()
	if !l.running || gen != l.gen {
		l.mu.Unlock()
		return
	}
	var dt float64
	if !l.last.IsZero() {
		dt = float64(now.Sub(l.last)) / float64(time.Millisecond)
		if dt < 0 {
			dt = 0
		}
	}
	l.last = now
	f := Frame{Tick: l.tick, Now: now, DeltaMs: dt}
	l.tick++
	l.mu.Unlock()

	l.step(f)

	l.mu.Lock()
	if l.running && gen == l.gen {
		l.requestLocked()
	}
	l.mu.Unlock()
}
