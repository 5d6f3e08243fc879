package loop

import (
	"sync"
	"time"
)

// Scheduler hands out one-shot frame callbacks, the way a display host
// signals that it is ready for the next frame.
type Scheduler interface {
	Request(fn func(now time.Time)) Handle
}

// Handle cancels a pending request. Cancel is safe to call more than once
// and after the callback has already run.
type Handle interface {
	Cancel()
}

// TimerScheduler fires each request after a fixed frame interval.
type TimerScheduler struct {
	interval time.Duration
}

func NewTimerScheduler(fps int) *TimerScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &TimerScheduler{interval: time.Second / time.Duration(fps)}
}

func (s *TimerScheduler) Interval() time.Duration { return s.interval }

func (s *TimerScheduler) Request(fn func(now time.Time)) Handle {
	return timerHandle{time.AfterFunc(s.interval, func() { fn(time.Now()) })}
}

type timerHandle struct{ t *time.Timer }

func (h timerHandle) Cancel() { h.t.Stop() }

// ManualScheduler queues requests until Pump is called. Hosts that own
// their own frame loop (terminal, raylib, ebiten) pump it once per frame.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*manualHandle
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

type manualHandle struct {
	mu        sync.Mutex
	fn        func(time.Time)
	cancelled bool
}

func (h *manualHandle) Cancel() {
	h.mu.Lock()
	h.cancelled = true
	h.mu.Unlock()
}

func (s *ManualScheduler) Request(fn func(now time.Time)) Handle {
	h := &manualHandle{fn: fn}
	s.mu.Lock()
	s.pending = append(s.pending, h)
	s.mu.Unlock()
	return h
}

// Pending reports how many live requests are queued.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, h := range s.pending {
		h.mu.Lock()
		if !h.cancelled {
			n++
		}
		h.mu.Unlock()
	}
	return n
}

// Pump runs every request queued before the call. Requests made by the
// callbacks themselves wait for the next Pump. It returns how many
// callbacks ran.
func (s *ManualScheduler) Pump(now time.Time) int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	ran := 0
	for _, h := range batch {
		h.mu.Lock()
		live := !h.cancelled
		h.cancelled = true
		h.mu.Unlock()
		if live {
			h.fn(now)
			ran++
		}
	}
	return ran
}
