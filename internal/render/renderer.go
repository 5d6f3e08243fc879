// Package render composites a projected sphere onto a [Surface].
//
// A frame is drawn in layers: optional backdrop glow, connections, nodes
// back to front, then particles. Every element whose depth is at or below
// [projection.VisibleDepth] is skipped, and every radius is clamped to its
// floor before it reaches the surface.
package render

import (
	"math"
	"sort"

	"github.com/san-kum/neurosphere/internal/geometry"
	"github.com/san-kum/neurosphere/internal/particles"
	"github.com/san-kum/neurosphere/internal/projection"
)

const (
	GlowFloor     = 1.0
	CoreFloor     = 0.5
	ParticleFloor = particles.RadiusFloor
	PulseFloor    = 1.0

	LineWidth      = 1.5
	HoverHighlight = 1.3
	BaseNodeSize   = 3.0
	HueBase        = 240.0
	HueBand        = 60.0
)

var (
	particleWhite  = RGBA8(255, 255, 255, 1)
	particleViolet = RGBA8(123, 97, 255, 1)
	particleBlue   = RGBA8(59, 130, 246, 1)
)

// Scene is everything one frame needs, already projected.
type Scene struct {
	Points      []projection.Point
	Connections []geometry.Connection
	Particles   []particles.Particle
	Tick        uint64
	Hovering    bool
	CanvasSize  int
}

// Stats counts what the last frame drew and skipped.
type Stats struct {
	Connections int
	Nodes       int
	Particles   int
	Backdrop    int
	Culled      int
}

func (s Stats) DrawCalls() int { return s.Connections + 2*s.Nodes + s.Particles + s.Backdrop }

type Option func(*Renderer)

// WithBackdrop draws the soft pulsing glow layers behind the sphere.
func WithBackdrop(on bool) Option { return func(r *Renderer) { r.backdrop = on } }

// WithFadeIn ramps every alpha from 0 to 1 over the first ticks of a loop.
func WithFadeIn(ticks int) Option { return func(r *Renderer) { r.fadeTicks = ticks } }

type Renderer struct {
	backdrop  bool
	fadeTicks int
	order     []int
	line      [3]Stop
	glow      [4]Stop
	core      [3]Stop
	spark     [3]Stop
}

func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NodeSize is the depth-scaled, twinkling node size before audio pulse.
func NodeSize(depth float64, i int, tick uint64) float64 {
	depthScale := math.Max(0.1, (depth+1.5)/2.5)
	return math.Max(1, BaseNodeSize*depthScale+math.Sin(float64(tick)*0.003+float64(i)*0.3)*0.8)
}

// NodeRadii returns the clamped glow and core radii for node i.
func NodeRadii(p projection.Point, i int, tick uint64, hovering bool) (glow, core float64) {
	highlight := 1.0
	if hovering {
		highlight = HoverHighlight
	}
	pulse := math.Max(PulseFloor, NodeSize(p.Depth, i, tick)+p.AudioReactivity*3)
	return math.Max(GlowFloor, pulse*4*highlight), math.Max(CoreFloor, pulse)
}

// Draw clears s and renders sc onto it. A nil surface draws nothing.
func (r *Renderer) Draw(s Surface, sc Scene) Stats {
	var st Stats
	if s == nil {
		return st
	}
	s.Clear()

	fade := r.fade(sc.Tick)
	if r.backdrop {
		st.Backdrop = r.drawBackdrop(s, sc, fade)
	}

	highlight, boost := 1.0, 0.0
	if sc.Hovering {
		highlight, boost = HoverHighlight, 10
	}
	t := float64(sc.Tick)

	for _, c := range sc.Connections {
		if c.I >= len(sc.Points) || c.J >= len(sc.Points) {
			continue
		}
		a, b := sc.Points[c.I], sc.Points[c.J]
		if !projection.Visible(a.Depth) || !projection.Visible(b.Depth) {
			st.Culled++
			continue
		}
		avg := (a.Depth + b.Depth) / 2
		opacity := math.Max(0.1, (avg+1)*0.3) * highlight
		hue := math.Mod(t*0.1+float64(c.I)*10, HueBand) + HueBase
		edge := HSLA(hue, 80, 65+boost, opacity*0.4)
		r.line[0] = Stop{0, edge}
		r.line[1] = Stop{0.5, HSLA(hue+20, 75, 60+boost, opacity*0.6)}
		r.line[2] = Stop{1, edge}
		s.StrokeLine(a.X, a.Y, b.X, b.Y, LineWidth, Gradient{Stops: r.line[:], Alpha: opacity * fade})
		st.Connections++
	}

	for _, i := range r.sortByDepth(sc.Points) {
		p := sc.Points[i]
		if !projection.Visible(p.Depth) {
			st.Culled++
			continue
		}
		depthScale := math.Max(0.1, (p.Depth+1.5)/2.5)
		opacity := math.Max(0.3, depthScale)
		hue := math.Mod(t*0.1+p.Depth*50+float64(i)*5, HueBand) + HueBase
		glowR, coreR := NodeRadii(p, i, sc.Tick, sc.Hovering)

		r.glow[0] = Stop{0, HSLA(hue, 85, 70+boost, opacity*0.6*highlight)}
		r.glow[1] = Stop{0.3, HSLA(hue, 80, 65+boost, opacity*0.4*highlight)}
		r.glow[2] = Stop{0.6, HSLA(hue, 75, 60+boost, opacity*0.2*highlight)}
		r.glow[3] = Stop{1, HSLA(hue, 70, 55, 0)}
		s.FillCircle(p.X, p.Y, glowR, Gradient{Stops: r.glow[:], Alpha: opacity * 0.8 * fade})

		r.core[0] = Stop{0, HSLA(hue, 100, 95+boost/2, opacity*highlight)}
		r.core[1] = Stop{0.5, HSLA(hue, 90, 75+boost, opacity*0.8*highlight)}
		r.core[2] = Stop{1, HSLA(hue, 85, 65+boost, opacity*0.4*highlight)}
		s.FillCircle(p.X, p.Y, coreR, Gradient{Stops: r.core[:], Alpha: opacity * fade})
		st.Nodes++
	}

	for _, p := range sc.Particles {
		if !p.Visible() {
			st.Culled++
			continue
		}
		r.spark[0] = Stop{0, particleWhite.WithAlpha(p.Opacity)}
		r.spark[1] = Stop{0.5, particleViolet.WithAlpha(p.Opacity * 0.6)}
		r.spark[2] = Stop{1, particleBlue.WithAlpha(0)}
		s.FillCircle(p.X, p.Y, math.Max(ParticleFloor, p.Radius), Gradient{Stops: r.spark[:], Alpha: p.Opacity * fade})
		st.Particles++
	}
	return st
}

// sortByDepth orders node indices back to front.
func (r *Renderer) sortByDepth(pts []projection.Point) []int {
	r.order = r.order[:0]
	for i := range pts {
		r.order = append(r.order, i)
	}
	sort.SliceStable(r.order, func(a, b int) bool { return pts[r.order[a]].Depth < pts[r.order[b]].Depth })
	return r.order
}

func (r *Renderer) fade(tick uint64) float64 {
	if r.fadeTicks <= 0 || tick >= uint64(r.fadeTicks) {
		return 1
	}
	k := 1 - float64(tick)/float64(r.fadeTicks)
	return 1 - k*k*k
}
