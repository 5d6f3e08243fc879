// Package particles computes the energy particles that travel along
// connections. Particles have no state: every position is a function of the
// tick and the particle index.
package particles

import (
	"math"

	"github.com/san-kum/neurosphere/internal/geometry"
	"github.com/san-kum/neurosphere/internal/projection"
)

const (
	ProgressRate  = 0.002
	SelectRate    = 0.001
	SelectStride  = 13.7
	OpacityGain   = 0.4
	SizeFloor     = 0.5
	RadiusFloor   = 1.0
	RadiusPerSize = 3.0
)

type Particle struct {
	Index      int
	Connection int
	Progress   float64
	X, Y       float64
	Depth      float64
	Opacity    float64
	Radius     float64
}

func (p Particle) Visible() bool { return projection.Visible(p.Depth) }

// Progress is the position of particle p along its edge, in [0, 1).
func Progress(tick uint64, p, count int) float64 {
	return math.Mod(float64(tick)*ProgressRate+float64(p)/float64(count), 1)
}

// ConnectionIndex picks the edge particle p travels this tick.
func ConnectionIndex(tick uint64, p, connCount int) int {
	idx := int(math.Floor(math.Mod(float64(tick)*SelectRate+float64(p)*SelectStride, float64(connCount))))
	if idx >= connCount {
		idx = connCount - 1
	}
	return idx
}

// Opacity is a triangular pulse peaking mid-edge, scaled by depth.
func Opacity(progress, depth float64) float64 {
	return math.Max(0, (depth+1)*OpacityGain*(1-math.Abs(progress-0.5)*2))
}

// Radius is the drawn radius at progress, never below RadiusFloor.
func Radius(progress float64) float64 {
	size := math.Max(SizeFloor, 2+math.Sin(progress*math.Pi)*1.5)
	return math.Max(RadiusFloor, size*RadiusPerSize)
}

// Schedule fills dst with count particles for this tick. Hidden particles are
// included; callers cull with Visible.
func Schedule(tick uint64, count int, conns []geometry.Connection, pts []projection.Point, dst []Particle) []Particle {
	dst = dst[:0]
	if count <= 0 || len(conns) == 0 {
		return dst
	}
	for p := 0; p < count; p++ {
		progress := Progress(tick, p, count)
		ci := ConnectionIndex(tick, p, len(conns))
		c := conns[ci]
		if c.I >= len(pts) || c.J >= len(pts) {
			continue
		}
		a, b := pts[c.I], pts[c.J]
		depth := a.Depth + (b.Depth-a.Depth)*progress
		dst = append(dst, Particle{
			Index:      p,
			Connection: ci,
			Progress:   progress,
			X:          a.X + (b.X-a.X)*progress,
			Y:          a.Y + (b.Y-a.Y)*progress,
			Depth:      depth,
			Opacity:    Opacity(progress, depth),
			Radius:     Radius(progress),
		})
	}
	return dst
}
