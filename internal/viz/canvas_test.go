package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/neurosphere/internal/render"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.Lit(3, 3) || c.Lit(2, 3) {
		t.Error("unexpected lit state")
	}

	c.Unset(3, 3)
	c.Unset(3, 3)
	if c.Grid[0][1] != blank {
		t.Errorf("expected blank cell, got %U", c.Grid[0][1])
	}

	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	if c.Grid[0][0] != 0x2801 {
		t.Error("out-of-range sets must be ignored")
	}
}

func TestCanvasHeat(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Plot(0, 0, 0.2)
	c.Plot(1, 1, 0.7)
	c.Plot(0, 2, 0.4)
	if c.Heat[0][0] != 0.7 {
		t.Errorf("expected peak heat 0.7, got %f", c.Heat[0][0])
	}
	c.Clear()
	if c.Heat[0][0] != 0 || c.Grid[0][0] != blank {
		t.Error("expected clear to reset dots and heat")
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 11, 1)
	if !c.Lit(0, 0) || !c.Lit(19, 11) {
		t.Error("expected both endpoints lit")
	}
	c.Clear()
	c.DrawLine(5, 5, 5, 5, 1)
	if !c.Lit(5, 5) {
		t.Error("expected a zero-length line to light one dot")
	}
}

func TestFillDisc(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillDisc(10, 10, 3, 1)
	if !c.Lit(10, 10) || !c.Lit(8, 10) {
		t.Error("expected dots inside the disc lit")
	}
	if c.Lit(14, 10) || c.Lit(10, 14) {
		t.Error("expected dots outside the disc dark")
	}

	c.Clear()
	c.FillDisc(4.2, 4.7, 0.1, 1)
	if !c.Lit(4, 4) {
		t.Error("expected a tiny disc to light its centre dot")
	}
}

func TestRender(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Plot(0, 0, 0.1)
	c.Plot(4, 0, 1)
	bands := []lipgloss.Style{lipgloss.NewStyle(), lipgloss.NewStyle()}
	out := c.Render(bands)
	if !strings.Contains(out, string(rune(0x2801))) || !strings.HasSuffix(out, "\n") {
		t.Errorf("unexpected render %q", out)
	}
	if c.Render(nil) != c.String() {
		t.Error("expected plain string without bands")
	}
}

func TestBrailleSurfaceMapping(t *testing.T) {
	s := NewBrailleSurface(50, 25, 200)
	// 100x100 dots, 200 logical pixels
	x, y := s.ToDots(100, 100)
	if x != 50 || y != 50 {
		t.Errorf("expected centre at (50,50), got (%f,%f)", x, y)
	}

	px, py := s.CellToLogical(25, 12)
	if px < 95 || px > 110 || py < 95 || py > 110 {
		t.Errorf("expected centre cell near (100,100), got (%f,%f)", px, py)
	}
	if !s.Contains(px, py) || s.Contains(-1, 5) || s.Contains(5, 200) {
		t.Error("unexpected Contains result")
	}

	s.Resize(400)
	if x, _ := s.ToDots(400, 0); x != 100 {
		t.Errorf("expected logical 400 to map to dot 100, got %f", x)
	}

	s.Reshape(100, 25)
	if x, _ := s.ToDots(0, 0); x != 50 {
		t.Errorf("expected horizontal centring offset 50, got %f", x)
	}
}

func TestBrailleSurfaceThreshold(t *testing.T) {
	s := NewBrailleSurface(20, 10, 40)
	faint := render.Gradient{Stops: []render.Stop{{Offset: 0, Color: render.RGBA8(255, 255, 255, 1)}}, Alpha: 0.01}
	s.FillCircle(20, 20, 5, faint)
	s.StrokeLine(0, 0, 40, 40, 1, faint)
	for _, row := range s.Canvas().Grid {
		for _, r := range row {
			if r != blank {
				t.Fatal("expected faint primitives to draw nothing")
			}
		}
	}

	bright := render.Gradient{Stops: []render.Stop{{Offset: 0, Color: render.RGBA8(255, 255, 255, 1)}, {Offset: 1, Color: render.RGBA8(255, 255, 255, 1)}}, Alpha: 1}
	s.FillCircle(20, 20, 5, bright)
	if !s.Canvas().Lit(20, 20) {
		t.Error("expected bright disc to light its centre")
	}
	s.Clear()
	s.StrokeLine(0, 0, 39, 0, 1, bright)
	if !s.Canvas().Lit(0, 0) || !s.Canvas().Lit(38, 0) {
		t.Error("expected bright line drawn")
	}
}
