package metrics

import "github.com/san-kum/neurosphere/internal/sphere"

// FPS is the frame rate over a sliding window of frame deltas.
type FPS struct {
	name   string
	window []float64
	next   int
	filled int
	sum    float64
}

func NewFPS(window int) *FPS {
	if window < 1 {
		window = 1
	}
	return &FPS{
		name:   "fps",
		window: make([]float64, window),
	}
}

func (f *FPS) Name() string { return f.name }

// Observe ignores zero deltas, which only the first frame of a loop has.
func (f *FPS) Observe(fi sphere.FrameInfo) {
	if fi.DeltaMs <= 0 {
		return
	}
	f.sum += fi.DeltaMs - f.window[f.next]
	f.window[f.next] = fi.DeltaMs
	f.next = (f.next + 1) % len(f.window)
	if f.filled < len(f.window) {
		f.filled++
	}
}

func (f *FPS) Value() float64 {
	if f.filled == 0 || f.sum <= 0 {
		return 0
	}
	return 1000 * float64(f.filled) / f.sum
}

func (f *FPS) Reset() {
	for i := range f.window {
		f.window[i] = 0
	}
	f.next, f.filled, f.sum = 0, 0, 0
}
