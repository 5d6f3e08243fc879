package render

import "math"

const (
	// TicksPerSecond converts ticks to seconds for the backdrop cycles.
	TicksPerSecond = 60.0
	// FadeInTicks is one second of mount fade at TicksPerSecond.
	FadeInTicks = 60
)

// glowLayer is one soft radial layer behind the sphere. Scale and opacity
// ease from their "from" value to their "to" value and back every period
// seconds; a zero period holds the "from" values.
type glowLayer struct {
	diameter               float64
	period, delay          float64
	scaleFrom, scaleTo     float64
	opacityFrom, opacityTo float64
	stops                  []Stop
}

var (
	haloStops = []Stop{
		{0, RGBA8(123, 97, 255, 0.6)},
		{0.33, RGBA8(59, 130, 246, 0.4)},
		{0.66, RGBA8(219, 39, 119, 0.2)},
		{1, RGBA8(219, 39, 119, 0)},
	}
	breathStops = []Stop{
		{0, RGBA8(123, 97, 255, 0.3)},
		{0.5, RGBA8(59, 130, 246, 0.15)},
		{1, RGBA8(59, 130, 246, 0)},
	}
	counterStops = []Stop{
		{0, RGBA8(59, 130, 246, 0.25)},
		{0.5, RGBA8(123, 97, 255, 0.1)},
		{1, RGBA8(123, 97, 255, 0)},
	}

	backdropLayers = []glowLayer{
		{diameter: 0.8, scaleFrom: 1, scaleTo: 1, opacityFrom: 0.4, opacityTo: 0.4, stops: haloStops},
		{diameter: 0.6, period: 4, scaleFrom: 1, scaleTo: 1.3, opacityFrom: 0.4, opacityTo: 0.6, stops: breathStops},
		{diameter: 0.7, period: 5, delay: 0.5, scaleFrom: 1.2, scaleTo: 1, opacityFrom: 0.3, opacityTo: 0.5, stops: counterStops},
	}
)

// pulse is an eased 0→1→0 cycle over period seconds.
func pulse(sec, period, delay float64) float64 {
	if period <= 0 || sec < delay {
		return 0
	}
	phase := math.Mod(sec-delay, period) / period
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

func (r *Renderer) drawBackdrop(s Surface, sc Scene, fade float64) int {
	if sc.CanvasSize <= 0 {
		return 0
	}
	size := float64(sc.CanvasSize)
	c := size / 2
	sec := float64(sc.Tick) / TicksPerSecond
	for _, l := range backdropLayers {
		k := pulse(sec, l.period, l.delay)
		scale := l.scaleFrom + (l.scaleTo-l.scaleFrom)*k
		opacity := l.opacityFrom + (l.opacityTo-l.opacityFrom)*k
		radius := math.Max(GlowFloor, size*l.diameter/2*scale)
		s.FillCircle(c, c, radius, Gradient{Stops: l.stops, Alpha: opacity * fade})
	}
	return len(backdropLayers)
}
