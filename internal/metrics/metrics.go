// Package metrics observes finished sphere frames.
package metrics

import (
	"sync"

	"github.com/san-kum/neurosphere/internal/sphere"
)

type Metric interface {
	Name() string
	Observe(f sphere.FrameInfo)
	Value() float64
	Reset()
}

type Reading struct {
	Name  string
	Value float64
}

// Set fans one frame out to several metrics. It is safe to observe from the
// animation goroutine while a UI reads it.
type Set struct {
	mu      sync.Mutex
	metrics []Metric
}

func NewSet(ms ...Metric) *Set { return &Set{metrics: ms} }

// Default is the FPS, draw-call and cull set shown by the hosts.
func Default() *Set {
	return NewSet(NewFPS(60), NewDrawCalls(), NewCulled())
}

func (s *Set) Observe(f sphere.FrameInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.metrics {
		m.Observe(f)
	}
}

// Hook adapts the set for sphere.WithFrameHook.
func (s *Set) Hook() func(sphere.FrameInfo) { return s.Observe }

func (s *Set) Readings() []Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reading, len(s.metrics))
	for i, m := range s.metrics {
		out[i] = Reading{Name: m.Name(), Value: m.Value()}
	}
	return out
}

func (s *Set) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.metrics {
		m.Reset()
	}
}
