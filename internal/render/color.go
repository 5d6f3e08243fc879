package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha colour with every channel in [0, 1].
type Color struct {
	R, G, B, A float64
}

// HSLA builds a colour the way CSS hsla() does: hue in degrees, saturation
// and lightness in percent, alpha in [0, 1]. Out-of-range inputs are clamped.
func HSLA(h, s, l, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := colorful.Hsl(h, clamp01(s/100), clamp01(l/100)).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// RGBA8 builds a colour from 8-bit channels and a [0, 1] alpha.
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: clamp01(a)}
}

func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGBA returns the premultiplied form used by image/draw.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R * c.A), G: to8(c.G * c.A), B: to8(c.B * c.A), A: to8(c.A)}
}

// Hex is the #rrggbb form, alpha dropped.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func Lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is an ordered list of stops plus a global alpha applied on top of
// every stop, like a canvas globalAlpha.
type Gradient struct {
	Stops []Stop
	Alpha float64
}

// At samples the gradient at t in [0, 1] with the global alpha applied.
func (g Gradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return Color{}
	}
	t = clamp01(t)
	c := g.Stops[len(g.Stops)-1].Color
	if t <= g.Stops[0].Offset {
		c = g.Stops[0].Color
	} else {
		for i := 1; i < len(g.Stops); i++ {
			a, b := g.Stops[i-1], g.Stops[i]
			if t <= b.Offset {
				span := b.Offset - a.Offset
				if span <= 0 {
					c = b.Color
				} else {
					c = Lerp(a.Color, b.Color, (t-a.Offset)/span)
				}
				break
			}
		}
	}
	return c.WithAlpha(c.A * g.Alpha)
}

// Peak is the highest effective alpha reached anywhere on the gradient.
func (g Gradient) Peak() float64 {
	peak := 0.0
	for _, s := range g.Stops {
		peak = math.Max(peak, s.Color.A)
	}
	return clamp01(peak * g.Alpha)
}

// Extent is the largest offset at which the effective alpha is still at
// least threshold, or 0 when it never is.
func (g Gradient) Extent(threshold float64) float64 {
	for t := 1.0; t > 0; t -= 0.05 {
		if g.At(t).A >= threshold {
			return t
		}
	}
	if g.At(0).A >= threshold {
		return 0.05
	}
	return 0
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func to8(v float64) uint8 { return uint8(math.Round(clamp01(v) * 255)) }
