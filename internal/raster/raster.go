// Package raster is an offscreen, anti-aliased [render.Surface] backed by an
// *image.RGBA. Coverage comes from golang.org/x/image/vector; colour comes
// from sampling the call's gradient per pixel.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/san-kum/neurosphere/internal/render"
	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for discs.
const circleSegments = 48

type Surface struct {
	img   *image.RGBA
	size  int
	scale float64
	bg    color.RGBA
	z     vector.Rasterizer
}

type Option func(*Surface)

// WithBackground sets the colour Clear fills with. The default is transparent.
func WithBackground(c render.Color) Option { return func(s *Surface) { s.bg = c.RGBA() } }

// New allocates a size×size logical surface. scale is the device pixel
// ratio: the backing image is size·scale pixels square and every coordinate
// is multiplied by it.
func New(size int, scale float64, opts ...Option) *Surface {
	if scale <= 0 {
		scale = 1
	}
	s := &Surface{scale: scale}
	for _, o := range opts {
		o(s)
	}
	s.Resize(size)
	return s
}

func (s *Surface) Resize(size int) {
	if size < 0 {
		size = 0
	}
	s.size = size
	px := int(math.Ceil(float64(size) * s.scale))
	s.img = image.NewRGBA(image.Rect(0, 0, px, px))
	s.Clear()
}

func (s *Surface) Image() *image.RGBA { return s.img }
func (s *Surface) Size() int          { return s.size }
func (s *Surface) Scale() float64     { return s.scale }

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.bg), image.Point{}, draw.Src)
}

func (s *Surface) FillCircle(cx, cy, r float64, g render.Gradient) {
	cx, cy, r = cx*s.scale, cy*s.scale, r*s.scale
	box := s.clip(cx-r, cy-r, cx+r, cy+r)
	if box.Empty() {
		return
	}
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	s.z.Reset(box.Dx(), box.Dy())
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		x := float32(cx+r*math.Cos(a)) - ox
		y := float32(cy+r*math.Sin(a)) - oy
		if i == 0 {
			s.z.MoveTo(x, y)
		} else {
			s.z.LineTo(x, y)
		}
	}
	s.z.ClosePath()
	s.z.Draw(s.img, box, &radial{cx: cx, cy: cy, r: r, g: g}, box.Min)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, g render.Gradient) {
	x0, y0, x1, y1, width = x0*s.scale, y0*s.scale, x1*s.scale, y1*s.scale, width*s.scale
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	box := s.clip(
		math.Min(x0, x1)-width, math.Min(y0, y1)-width,
		math.Max(x0, x1)+width, math.Max(y0, y1)+width,
	)
	if box.Empty() {
		return
	}
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	s.z.Reset(box.Dx(), box.Dy())
	s.z.MoveTo(float32(x0+nx)-ox, float32(y0+ny)-oy)
	s.z.LineTo(float32(x1+nx)-ox, float32(y1+ny)-oy)
	s.z.LineTo(float32(x1-nx)-ox, float32(y1-ny)-oy)
	s.z.LineTo(float32(x0-nx)-ox, float32(y0-ny)-oy)
	s.z.ClosePath()
	s.z.Draw(s.img, box, &linear{x0: x0, y0: y0, dx: dx, dy: dy, len2: length * length, g: g}, box.Min)
}

func (s *Surface) clip(x0, y0, x1, y1 float64) image.Rectangle {
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	return r.Intersect(s.img.Bounds())
}

// radial samples a gradient by distance from a centre.
type radial struct {
	cx, cy, r float64
	g         render.Gradient
}

func (p *radial) ColorModel() color.Model { return color.RGBAModel }
func (p *radial) Bounds() image.Rectangle { return unbounded }
func (p *radial) At(x, y int) color.Color {
	d := math.Hypot(float64(x)+0.5-p.cx, float64(y)+0.5-p.cy)
	return p.g.At(d / p.r).RGBA()
}

// linear samples a gradient by projection onto a segment.
type linear struct {
	x0, y0, dx, dy, len2 float64
	g                    render.Gradient
}

func (p *linear) ColorModel() color.Model { return color.RGBAModel }
func (p *linear) Bounds() image.Rectangle { return unbounded }
func (p *linear) At(x, y int) color.Color {
	t := ((float64(x)+0.5-p.x0)*p.dx + (float64(y)+0.5-p.y0)*p.dy) / p.len2
	return p.g.At(t).RGBA()
}

var unbounded = image.Rect(-1e9, -1e9, 1e9, 1e9)
