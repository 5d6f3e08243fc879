// Package gui hosts the sphere in a native window, through raylib or ebiten.
//
// Both hosts pump a manual scheduler once per rendered frame, so the sphere
// steps on the window's own frame loop, and poll the mouse into a
// [sphere.Tracker].
package gui

import (
	"fmt"
	"log"
	"time"

	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/loop"
	"github.com/san-kum/neurosphere/internal/metrics"
	"github.com/san-kum/neurosphere/internal/render"
	"github.com/san-kum/neurosphere/internal/sphere"
)

const (
	BackendRaylib = "raylib"
	BackendEbiten = "ebiten"
)

type Options struct {
	Tier     config.Tier
	Voice    bool
	Level    sphere.LevelSource
	FPS      int
	Backdrop bool
	HUD      bool
	Logger   *log.Logger
}

// Run opens a window with the named backend and blocks until it closes.
func Run(backend string, o Options) error {
	switch backend {
	case BackendRaylib, "":
		return RunRaylib(o)
	case BackendEbiten:
		return RunEbiten(o)
	default:
		return fmt.Errorf("%w: backend %q", config.ErrInvalidConfig, backend)
	}
}

// host is the sphere plumbing both backends share.
type host struct {
	sphere  *sphere.Sphere
	sched   *loop.ManualScheduler
	stats   *metrics.Set
	tracker sphere.Tracker
	voice   bool
	hud     bool
}

func newHost(o Options, surface render.Surface) (*host, error) {
	h := &host{
		sched: loop.NewManualScheduler(),
		stats: metrics.Default(),
		voice: o.Voice,
		hud:   o.HUD,
	}
	opts := []sphere.Option{
		sphere.WithBackdrop(o.Backdrop),
		sphere.WithFadeIn(render.FadeInTicks),
		sphere.WithFrameHook(h.stats.Hook()),
	}
	if o.Logger != nil {
		opts = append(opts, sphere.WithLogger(o.Logger))
	}
	if o.Level != nil {
		opts = append(opts, sphere.WithLevelSource(o.Level))
	}
	s, err := sphere.New(o.Tier, surface, h.sched, opts...)
	if err != nil {
		return nil, err
	}
	s.SetVoiceMode(o.Voice)
	s.Mount()
	h.sphere = s
	return h, nil
}

func (h *host) toggleVoice() {
	h.voice = !h.voice
	h.sphere.SetVoiceMode(h.voice)
}

func (h *host) frame() { h.sched.Pump(time.Now()) }

func (h *host) status() []string {
	lines := []string{
		fmt.Sprintf("%s  %s", h.sphere.Tier(), h.sphere.Mode()),
		fmt.Sprintf("level %.2f", h.sphere.AudioLevel()),
	}
	for _, r := range h.stats.Readings() {
		lines = append(lines, fmt.Sprintf("%s %.1f", r.Name, r.Value))
	}
	return append(lines, "V voice  1/2/3 size  H hud")
}
