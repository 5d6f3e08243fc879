// Package motion holds the sphere's orientation state and the pointer state
// machine that drives it.
//
// A [State] is owned by exactly one sphere instance. Pointer handlers write
// into it between ticks and [State.Step] advances it once per tick.
//
// # Modes
//
//	VoiceReactive  rotation follows tick count only, pointers ignored
//	Dragging       pointer delta sets velocity and target rotation
//	Hovering       pointer offset from centre sets target rotation
//	Idle           momentum decays, a slow automatic drift is added
package motion

import "math"

const (
	Friction         = 0.95
	LerpFactor       = 0.1
	VelocityScale    = 0.001
	DragSensitivity  = 2.0
	HoverSensitivity = 0.5
	AutoBlend        = 0.1
)

type Mode int

const (
	Idle Mode = iota
	Hovering
	Dragging
	VoiceReactive
)

func (m Mode) String() string {
	switch m {
	case Hovering:
		return "hovering"
	case Dragging:
		return "dragging"
	case VoiceReactive:
		return "voice"
	default:
		return "idle"
	}
}

// Rotation is an orientation in radians about the X, Y and Z axes.
type Rotation struct {
	X, Y, Z float64
}

func (r Rotation) Add(o Rotation) Rotation { return Rotation{r.X + o.X, r.Y + o.Y, r.Z + o.Z} }

// Lerp moves r toward target by factor.
func (r Rotation) Lerp(target Rotation, factor float64) Rotation {
	return Rotation{
		X: r.X + (target.X-r.X)*factor,
		Y: r.Y + (target.Y-r.Y)*factor,
		Z: r.Z + (target.Z-r.Z)*factor,
	}
}

// Velocity is the angular momentum applied to the target rotation when the
// sphere is released.
type Velocity struct {
	X, Y float64
}

func (v Velocity) Scale(s float64) Velocity { return Velocity{v.X * s, v.Y * s} }
func (v Velocity) Magnitude() float64     { return math.Hypot(v.X, v.Y) }

type DragSession struct {
	Active       bool
	LastX, LastY float64
}

type State struct {
	Current  Rotation
	Target   Rotation
	Velocity Velocity
	Drag     DragSession
	Hovering bool
	Voice    bool
}

func New() *State { return &State{} }

// Mode resolves the active mode by priority: voice, drag, hover, idle.
func (s *State) Mode() Mode {
	switch {
	case s.Voice:
		return VoiceReactive
	case s.Drag.Active:
		return Dragging
	case s.Hovering:
		return Hovering
	default:
		return Idle
	}
}

// SetVoice toggles voice-reactive mode. Pointer state is kept as is.
func (s *State) SetVoice(on bool) { s.Voice = on }

// Step advances physics by one tick and returns the rotation to project with.
// dtMs is the time since the previous tick in milliseconds.
func (s *State) Step(tick uint64, dtMs float64) Rotation {
	if !s.Drag.Active && !s.Voice {
		s.Velocity = s.Velocity.Scale(Friction)
		s.Target.X += s.Velocity.X * dtMs * VelocityScale
		s.Target.Y += s.Velocity.Y * dtMs * VelocityScale
	}
	s.Current = s.Current.Lerp(s.Target, LerpFactor)

	t := float64(tick)
	switch s.Mode() {
	case VoiceReactive:
		return VoiceRotation(tick)
	case Dragging, Hovering:
		return s.Current
	default:
		return s.Current.Add(Rotation{
			X: math.Sin(t*0.0005) * 0.05 * AutoBlend,
			Y: t * 0.0003 * AutoBlend,
		})
	}
}

// VoiceRotation is the pure time-based orientation used in voice mode.
func VoiceRotation(tick uint64) Rotation {
	t := float64(tick)
	return Rotation{X: math.Sin(t*0.001) * 0.2, Y: t * 0.0005}
}
