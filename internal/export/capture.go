// Package export renders the sphere headlessly and writes PNG, SVG and GIF
// files.
package export

import (
	"errors"
	"image"
	"time"

	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/loop"
	"github.com/san-kum/neurosphere/internal/raster"
	"github.com/san-kum/neurosphere/internal/render"
	"github.com/san-kum/neurosphere/internal/sphere"
)

var ErrNoFrames = errors.New("no frames captured")

type CaptureOptions struct {
	Tier       config.Tier
	Ticks      int
	FPS        int
	Scale      float64
	Voice      bool
	Level      sphere.LevelSource
	Backdrop   bool
	FadeIn     bool
	Background render.Color
}

// Frame is one captured tick. Image and Calls are reused between frames.
type Frame struct {
	Index int
	Image *image.RGBA
	Calls []render.Call
	Info  sphere.FrameInfo
}

// Capture runs a sphere for opts.Ticks ticks on a manual clock and calls fn
// after each one. A non-nil error from fn stops the capture.
func Capture(opts CaptureOptions, fn func(f Frame) error) error {
	if opts.Ticks <= 0 {
		return ErrNoFrames
	}
	cfg, err := config.Lookup(opts.Tier)
	if err != nil {
		return err
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	img := raster.New(cfg.CanvasSize, opts.Scale, raster.WithBackground(opts.Background))
	rec := render.NewRecorder(cfg.CanvasSize)
	sched := loop.NewManualScheduler()

	var info sphere.FrameInfo
	sopts := []sphere.Option{
		sphere.WithBackdrop(opts.Backdrop),
		sphere.WithFrameHook(func(fi sphere.FrameInfo) { info = fi }),
	}
	if opts.FadeIn {
		sopts = append(sopts, sphere.WithFadeIn(render.FadeInTicks))
	}
	if opts.Level != nil {
		sopts = append(sopts, sphere.WithLevelSource(opts.Level))
	}
	s, err := sphere.New(opts.Tier, render.Multi{img, rec}, sched, sopts...)
	if err != nil {
		return err
	}
	s.SetVoiceMode(opts.Voice)
	s.Mount()
	defer s.Unmount()

	clock := time.Unix(0, 0)
	step := time.Second / time.Duration(fps)
	for i := 0; i < opts.Ticks; i++ {
		sched.Pump(clock)
		clock = clock.Add(step)
		if err := fn(Frame{Index: i, Image: img.Image(), Calls: rec.Calls, Info: info}); err != nil {
			return err
		}
	}
	return nil
}
