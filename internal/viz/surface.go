package viz

import (
	"math"

	"github.com/san-kum/neurosphere/internal/render"
)

// DotThreshold is the lowest effective alpha that lights a Braille dot.
const DotThreshold = 0.08

// BrailleSurface draws sphere frames onto a Canvas. Logical surface pixels
// are scaled uniformly to fit the dot grid and centred in it.
type BrailleSurface struct {
	canvas *Canvas
	size   int
	scale  float64
	offX   float64
	offY   float64
}

func NewBrailleSurface(cols, rows, size int) *BrailleSurface {
	s := &BrailleSurface{canvas: NewCanvas(cols, rows), size: size}
	s.fit()
	return s
}

func (s *BrailleSurface) Canvas() *Canvas { return s.canvas }

// Resize follows a size tier change.
func (s *BrailleSurface) Resize(size int) {
	s.size = size
	s.fit()
}

// Reshape follows a terminal resize.
func (s *BrailleSurface) Reshape(cols, rows int) {
	s.canvas = NewCanvas(cols, rows)
	s.fit()
}

func (s *BrailleSurface) fit() {
	if s.size <= 0 {
		s.scale, s.offX, s.offY = 0, 0, 0
		return
	}
	w, h := float64(s.canvas.SubWidth()), float64(s.canvas.SubHeight())
	s.scale = math.Min(w, h) / float64(s.size)
	s.offX = (w - float64(s.size)*s.scale) / 2
	s.offY = (h - float64(s.size)*s.scale) / 2
}

// ToDots maps a logical pixel to dot coordinates.
func (s *BrailleSurface) ToDots(x, y float64) (float64, float64) {
	return s.offX + x*s.scale, s.offY + y*s.scale
}

// CellToLogical maps the centre of a terminal cell to a logical pixel.
func (s *BrailleSurface) CellToLogical(col, row int) (float64, float64) {
	if s.scale == 0 {
		return 0, 0
	}
	dx, dy := float64(col*2)+1, float64(row*4)+2
	return (dx - s.offX) / s.scale, (dy - s.offY) / s.scale
}

// Contains reports whether a logical pixel lies on the surface.
func (s *BrailleSurface) Contains(x, y float64) bool {
	n := float64(s.size)
	return x >= 0 && y >= 0 && x < n && y < n
}

func (s *BrailleSurface) Clear() { s.canvas.Clear() }

func (s *BrailleSurface) StrokeLine(x0, y0, x1, y1, width float64, g render.Gradient) {
	peak := g.Peak()
	if peak < DotThreshold {
		return
	}
	ax, ay := s.ToDots(x0, y0)
	bx, by := s.ToDots(x1, y1)
	s.canvas.DrawLine(int(math.Floor(ax)), int(math.Floor(ay)), int(math.Floor(bx)), int(math.Floor(by)), peak)
}

func (s *BrailleSurface) FillCircle(cx, cy, r float64, g render.Gradient) {
	extent := g.Extent(DotThreshold)
	if extent == 0 {
		return
	}
	x, y := s.ToDots(cx, cy)
	s.canvas.FillDisc(x, y, r*extent*s.scale, g.Peak())
}
