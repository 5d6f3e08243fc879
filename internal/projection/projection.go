// Package projection rotates sphere-space nodes and maps them orthographically
// onto the drawing surface.
package projection

import (
	"math"

	"github.com/san-kum/neurosphere/internal/geometry"
	"github.com/san-kum/neurosphere/internal/motion"
)

const (
	// VisibleDepth is the cull threshold: anything at or below it is hidden.
	VisibleDepth = -0.5

	// ScaleFloor is the smallest per-node projection scale.
	ScaleFloor = 1.0

	BreathAmplitude   = 0.05
	AudioRadiusGain   = 30.0
	AudioReactiveGain = 0.3
)

type Vec3 struct {
	X, Y, Z float64
}

// Point is a node after rotation and projection.
type Point struct {
	X, Y            float64
	Depth           float64
	AudioReactivity float64
}

func Visible(depth float64) bool { return depth > VisibleDepth }

// RotateZYX rotates v about Z, then Y, then X. The order is fixed.
func RotateZYX(v Vec3, r motion.Rotation) Vec3 {
	cz, sz := math.Cos(r.Z), math.Sin(r.Z)
	v.X, v.Y = v.X*cz-v.Y*sz, v.X*sz+v.Y*cz

	cy, sy := math.Cos(r.Y), math.Sin(r.Y)
	v.X, v.Z = v.X*cy-v.Z*sy, v.X*sy+v.Z*cy

	cx, sx := math.Cos(r.X), math.Sin(r.X)
	v.Y, v.Z = v.Y*cx-v.Z*sx, v.Y*sx+v.Z*cx
	return v
}

// ClampLevel sanitizes an audio level: non-finite values become 0 and the
// rest is clamped to [0, 1].
func ClampLevel(level float64) float64 {
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return 0
	}
	return math.Max(0, math.Min(1, level))
}

// Projector maps rotated nodes around a fixed surface centre.
type Projector struct {
	CenterX, CenterY float64
	BaseRadius       float64
}

// Params is the per-tick input that varies independently of the geometry.
type Params struct {
	Rotation   motion.Rotation
	Tick       uint64
	Voice      bool
	AudioLevel float64
}

// Scale is the breathing, audio-modulated projection scale of node i.
func (p Projector) Scale(i int, prm Params) float64 {
	base := p.BaseRadius
	if prm.Voice {
		base += ClampLevel(prm.AudioLevel) * AudioRadiusGain
	}
	wave := math.Sin(float64(prm.Tick)*0.002+float64(i)*0.1) * BreathAmplitude
	return math.Max(ScaleFloor, base*(1+wave))
}

// AudioReactivity is the per-node pulse contribution; zero outside voice mode.
func AudioReactivity(i int, prm Params) float64 {
	if !prm.Voice {
		return 0
	}
	t := float64(prm.Tick)
	return math.Abs(math.Sin(t*0.005+float64(i)*0.2)) * ClampLevel(prm.AudioLevel) * AudioReactiveGain
}

// Project writes one Point per node into dst, reusing its capacity.
func (p Projector) Project(nodes []geometry.Node, prm Params, dst []Point) []Point {
	dst = dst[:0]
	for i, n := range nodes {
		r := RotateZYX(Vec3{n.X, n.Y, n.Z}, prm.Rotation)
		s := p.Scale(i, prm)
		dst = append(dst, Point{
			X:               p.CenterX + r.X*s,
			Y:               p.CenterY + r.Y*s,
			Depth:           r.Z,
			AudioReactivity: AudioReactivity(i, prm),
		})
	}
	return dst
}
