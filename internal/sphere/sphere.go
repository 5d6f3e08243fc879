package sphere

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/geometry"
	"github.com/san-kum/neurosphere/internal/loop"
	"github.com/san-kum/neurosphere/internal/motion"
	"github.com/san-kum/neurosphere/internal/particles"
	"github.com/san-kum/neurosphere/internal/projection"
	"github.com/san-kum/neurosphere/internal/render"
)

// LevelSource supplies a live audio level in [0, 1]. It is polled once per
// tick while voice mode is on.
type LevelSource interface {
	Level() float64
}

// FrameInfo describes one finished tick.
type FrameInfo struct {
	Tick    uint64
	DeltaMs float64
	Mode    motion.Mode
	Level   float64
	Stats   render.Stats
}

type Option func(*Sphere)

func WithLogger(l *log.Logger) Option { return func(s *Sphere) { s.log = l } }

func WithBackdrop(on bool) Option {
	return func(s *Sphere) { s.renderOpts = append(s.renderOpts, render.WithBackdrop(on)) }
}

func WithFadeIn(ticks int) Option {
	return func(s *Sphere) { s.renderOpts = append(s.renderOpts, render.WithFadeIn(ticks)) }
}

// WithLevelSource polls src for the audio level each voice-mode tick,
// replacing values given to SetAudioLevel.
func WithLevelSource(src LevelSource) Option { return func(s *Sphere) { s.source = src } }

// WithFrameHook calls fn after every drawn tick, outside the component lock.
func WithFrameHook(fn func(FrameInfo)) Option { return func(s *Sphere) { s.hook = fn } }

// epoch is everything that changes together on a size change.
type epoch struct {
	tier      config.Tier
	cfg       config.RenderConfig
	geo       *geometry.Geometry
	projector projection.Projector
}

func newEpoch(t config.Tier) (*epoch, error) {
	cfg, err := config.Lookup(t)
	if err != nil {
		return nil, err
	}
	c := cfg.Center()
	return &epoch{
		tier:      t,
		cfg:       cfg,
		geo:       geometry.Generate(geometry.NodeCount),
		projector: projection.Projector{CenterX: c, CenterY: c, BaseRadius: cfg.BaseRadius},
	}, nil
}

type Sphere struct {
	mu         sync.Mutex
	log        *log.Logger
	sched      loop.Scheduler
	surface    render.Surface
	renderer   *render.Renderer
	renderOpts []render.Option
	source     LevelSource
	hook       func(FrameInfo)

	epoch   atomic.Pointer[epoch]
	motion  *motion.State
	voice   bool
	level   float64
	loop    *loop.Loop
	mounted bool
	warned  bool
	points  []projection.Point
	parts   []particles.Particle
	last    FrameInfo
}

// New builds an unmounted sphere for the given size tier. The only error is
// an unknown tier.
func New(t config.Tier, surface render.Surface, sched loop.Scheduler, opts ...Option) (*Sphere, error) {
	ep, err := newEpoch(t)
	if err != nil {
		return nil, err
	}
	s := &Sphere{
		log:     log.Default(),
		sched:   sched,
		surface: surface,
		motion:  motion.New(),
	}
	for _, o := range opts {
		o(s)
	}
	s.renderer = render.New(s.renderOpts...)
	s.epoch.Store(ep)
	if r, ok := surface.(render.Resizer); ok {
		r.Resize(ep.cfg.CanvasSize)
	}
	return s, nil
}

// Mount starts the animation loop. Mounting twice does nothing.
func (s *Sphere) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mounted {
		return
	}
	s.mounted = true
	s.startLocked()
}

// Unmount cancels the loop. No draw happens after it returns. It is
// idempotent.
func (s *Sphere) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted {
		return
	}
	s.mounted = false
	s.stopLocked()
}

// SetSize switches the size tier: the running loop is cancelled, geometry
// and projection are replaced in one step, and a fresh loop starts.
func (s *Sphere) SetSize(t config.Tier) error {
	ep, err := newEpoch(t)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.epoch.Store(ep)
	if r, ok := s.surface.(render.Resizer); ok {
		r.Resize(ep.cfg.CanvasSize)
	}
	if s.mounted {
		s.startLocked()
	}
	return nil
}

func (s *Sphere) SetVoiceMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voice = on
	s.motion.SetVoice(on)
}

// SetAudioLevel stores a sanitized level: non-finite becomes 0, the rest is
// clamped to [0, 1].
func (s *Sphere) SetAudioLevel(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = projection.ClampLevel(level)
}

func (s *Sphere) PointerEnter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.motion.PointerEnter()
}

// PointerDown takes surface pixel coordinates.
func (s *Sphere) PointerDown(px, py float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, y := s.normalizeLocked(px, py)
	s.motion.PointerDown(x, y)
}

// PointerMove takes surface pixel coordinates.
func (s *Sphere) PointerMove(px, py float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, y := s.normalizeLocked(px, py)
	s.motion.PointerMove(x, y)
}

func (s *Sphere) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.motion.PointerUp()
}

func (s *Sphere) PointerLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.motion.PointerLeave()
}

func (s *Sphere) Mode() motion.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.motion.Mode()
}

func (s *Sphere) Motion() motion.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.motion
}

func (s *Sphere) AudioLevel() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

func (s *Sphere) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop != nil && s.loop.Running()
}

// LastFrame reports the most recent drawn tick.
func (s *Sphere) LastFrame() FrameInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Points copies the projection of the most recent tick.
func (s *Sphere) Points() []projection.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]projection.Point, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Sphere) Tier() config.Tier                 { return s.epoch.Load().tier }
func (s *Sphere) RenderConfig() config.RenderConfig { return s.epoch.Load().cfg }
func (s *Sphere) Geometry() *geometry.Geometry      { return s.epoch.Load().geo }

func (s *Sphere) normalizeLocked(px, py float64) (float64, float64) {
	size := float64(s.epoch.Load().cfg.CanvasSize)
	return motion.Normalize(px, py, size, size)
}

func (s *Sphere) startLocked() {
	if s.surface == nil {
		if !s.warned {
			s.log.Printf("sphere: no drawing surface, rendering disabled")
			s.warned = true
		}
		return
	}
	var l *loop.Loop
	l = loop.New(s.sched, func(f loop.Frame) { s.step(l, f) })
	s.loop = l
	l.Start()
}

func (s *Sphere) stopLocked() {
	if s.loop != nil {
		s.loop.Cancel()
		s.loop = nil
	}
}

// step runs one tick for loop l. Frames from a loop that has since been
// replaced or cancelled are dropped.
func (s *Sphere) step(l *loop.Loop, f loop.Frame) {
	s.mu.Lock()
	if !s.mounted || s.loop != l {
		s.mu.Unlock()
		return
	}
	if s.source != nil && s.voice {
		s.level = projection.ClampLevel(s.source.Level())
	}
	ep := s.epoch.Load()
	rot := s.motion.Step(f.Tick, f.DeltaMs)
	s.points = ep.projector.Project(ep.geo.Nodes, projection.Params{
		Rotation:   rot,
		Tick:       f.Tick,
		Voice:      s.voice,
		AudioLevel: s.level,
	}, s.points)
	s.parts = particles.Schedule(f.Tick, ep.cfg.ParticleCount, ep.geo.Connections, s.points, s.parts)
	st := s.renderer.Draw(s.surface, render.Scene{
		Points:      s.points,
		Connections: ep.geo.Connections,
		Particles:   s.parts,
		Tick:        f.Tick,
		Hovering:    s.motion.Hovering,
		CanvasSize:  ep.cfg.CanvasSize,
	})
	s.last = FrameInfo{Tick: f.Tick, DeltaMs: f.DeltaMs, Mode: s.motion.Mode(), Level: s.level, Stats: st}
	info, hook := s.last, s.hook
	s.mu.Unlock()

	if hook != nil {
		hook(info)
	}
}
