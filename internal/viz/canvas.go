package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of Braille cells. Each cell also keeps the brightest
// level plotted into it, used to pick a colour band when rendering.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Heat          [][]float64
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Heat:   make([][]float64, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Heat[i] = make([]float64, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight are the canvas size in dots.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set lights the dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) { c.Plot(x, y, 1) }

// Plot lights a dot and raises its cell's heat to level.
func (c *Canvas) Plot(x, y int, level float64) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if level > c.Heat[row][col] {
		c.Heat[row][col] = level
	}
}

// Unset clears a dot.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Heat[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, level float64) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Plot(x0, y0, level)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillDisc lights every dot whose centre lies within r of (cx, cy). A disc
// smaller than one dot still lights its centre.
func (c *Canvas) FillDisc(cx, cy, r, level float64) {
	if r < 0.5 {
		c.Plot(int(math.Floor(cx)), int(math.Floor(cy)), level)
		return
	}
	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				c.Plot(x, y, level)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colours each lit cell by its heat: bands[0] for dim cells up to
// bands[len-1] for the brightest.
func (c *Canvas) Render(bands []lipgloss.Style) string {
	if len(bands) == 0 {
		return c.String()
	}
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if r == blank {
				b.WriteRune(r)
				continue
			}
			k := int(c.Heat[i][j] * float64(len(bands)))
			k = max(0, min(k, len(bands)-1))
			b.WriteString(bands[k].Render(string(r)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
