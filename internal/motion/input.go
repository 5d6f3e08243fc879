package motion

// Normalize maps a surface pixel position to [-1, 1] on both axes relative
// to the surface centre.
func Normalize(px, py, width, height float64) (x, y float64) {
	hw, hh := width/2, height/2
	if hw <= 0 || hh <= 0 {
		return 0, 0
	}
	return (px - hw) / hw, (py - hh) / hh
}

// PointerEnter starts hovering. Ignored in voice mode.
func (s *State) PointerEnter() {
	if s.Voice {
		return
	}
	s.Hovering = true
}

// PointerDown starts a drag at the normalized position. Ignored in voice mode.
func (s *State) PointerDown(x, y float64) {
	if s.Voice {
		return
	}
	s.Drag = DragSession{Active: true, LastX: x, LastY: y}
}

// PointerMove applies a drag delta or, without a drag, aims the target at
// the pointer. Ignored in voice mode.
func (s *State) PointerMove(x, y float64) {
	if s.Voice {
		return
	}
	if !s.Drag.Active {
		s.Target = Rotation{X: -y * HoverSensitivity, Y: x * HoverSensitivity}
		return
	}
	dx, dy := x-s.Drag.LastX, y-s.Drag.LastY
	s.Velocity = Velocity{X: dy * DragSensitivity, Y: dx * DragSensitivity}
	s.Target.X += dy * DragSensitivity
	s.Target.Y += dx * DragSensitivity
	s.Drag.LastX, s.Drag.LastY = x, y
}

// PointerUp ends the drag. It also runs in voice mode so a release is never lost.
func (s *State) PointerUp() { s.Drag.Active = false }

// PointerLeave ends both hover and drag.
func (s *State) PointerLeave() {
	s.Hovering = false
	s.Drag.Active = false
}
