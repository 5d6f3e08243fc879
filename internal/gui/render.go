package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/neurosphere/internal/render"
)

// RaylibSurface draws into the current raylib frame. It must only be used
// between BeginDrawing and EndDrawing.
type RaylibSurface struct {
	bg rl.Color
}

func NewRaylibSurface(bg rl.Color) *RaylibSurface { return &RaylibSurface{bg: bg} }

func toRL(c render.Color) rl.Color {
	n := c.NRGBA()
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func (s *RaylibSurface) Clear() { rl.ClearBackground(s.bg) }

// StrokeLine draws one segment per gradient band, each in its mid colour.
func (s *RaylibSurface) StrokeLine(x0, y0, x1, y1, width float64, g render.Gradient) {
	dx, dy := x1-x0, y1-y0
	for _, b := range g.Bands() {
		from := rl.NewVector2(float32(x0+dx*b.From), float32(y0+dy*b.From))
		to := rl.NewVector2(float32(x0+dx*b.To), float32(y0+dy*b.To))
		rl.DrawLineEx(from, to, float32(width), toRL(b.Mid()))
	}
}

// FillCircle draws the bands outermost first as two-colour radial discs.
func (s *RaylibSurface) FillCircle(cx, cy, r float64, g render.Gradient) {
	bands := g.Bands()
	x, y := int32(math.Round(cx)), int32(math.Round(cy))
	rl.BeginBlendMode(rl.BlendAdditive)
	for i := len(bands) - 1; i >= 0; i-- {
		b := bands[i]
		rl.DrawCircleGradient(x, y, float32(r*b.To), toRL(b.Inner), toRL(b.Outer))
	}
	rl.EndBlendMode()
}
