package sphere

// Tracker turns polled pointer samples into pointer events, for hosts that
// report a position and button state once per frame instead of events.
type Tracker struct {
	inside       bool
	down         bool
	lastX, lastY float64
}

// Sample feeds one frame of pointer state in surface pixels.
func (t *Tracker) Sample(s *Sphere, x, y float64, down bool) {
	size := float64(s.RenderConfig().CanvasSize)
	in := x >= 0 && y >= 0 && x < size && y < size

	switch {
	case in && !t.inside:
		t.inside = true
		t.lastX, t.lastY = x, y
		s.PointerEnter()
	case !in && t.inside:
		t.inside = false
		s.PointerLeave()
	}
	if !in {
		t.down = down
		return
	}

	switch {
	case down && !t.down:
		s.PointerDown(x, y)
	case !down && t.down:
		s.PointerUp()
	}
	t.down = down

	if x != t.lastX || y != t.lastY {
		s.PointerMove(x, y)
		t.lastX, t.lastY = x, y
	}
}
