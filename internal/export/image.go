package export

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
)

func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// GIF collects frames for an endlessly looping animation.
type GIF struct {
	anim  gif.GIF
	delay int
}

// NewGIF makes an animation shown at fps frames per second. GIF delays are
// in hundredths of a second, so rates above 100 are capped.
func NewGIF(fps int) *GIF {
	delay := 2
	if fps > 0 {
		delay = max(1, 100/fps)
	}
	return &GIF{anim: gif.GIF{LoopCount: 0}, delay: delay}
}

// AddFrame quantizes img to the Plan 9 palette with dithering.
func (g *GIF) AddFrame(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	g.anim.Image = append(g.anim.Image, p)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

func (g *GIF) Len() int { return len(g.anim.Image) }

func (g *GIF) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	if err := gif.EncodeAll(w, &g.anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
