package gui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/render"
	"golang.org/x/image/font/gofont/gomono"
)

var bgColor = color.RGBA{5, 5, 16, 255}

// EbitenSurface draws onto the screen image handed to Game.Draw.
type EbitenSurface struct {
	target *ebiten.Image
}

func (s *EbitenSurface) Clear() {
	if s.target != nil {
		s.target.Fill(bgColor)
	}
}

// StrokeLine draws one anti-aliased segment per gradient band.
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, g render.Gradient) {
	if s.target == nil {
		return
	}
	dx, dy := x1-x0, y1-y0
	for _, b := range g.Bands() {
		vector.StrokeLine(s.target,
			float32(x0+dx*b.From), float32(y0+dy*b.From),
			float32(x0+dx*b.To), float32(y0+dy*b.To),
			float32(width), b.Mid().NRGBA(), true)
	}
}

// FillCircle stacks one disc per band, outermost first.
func (s *EbitenSurface) FillCircle(cx, cy, r float64, g render.Gradient) {
	if s.target == nil {
		return
	}
	bands := g.Bands()
	for i := len(bands) - 1; i >= 0; i-- {
		b := bands[i]
		vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r*b.To), b.Mid().NRGBA(), true)
	}
}

// Game is the ebiten host.
type Game struct {
	*host
	surface *EbitenSurface
	size    int
	face    *text.GoTextFace
}

func NewGame(o Options) (*Game, error) {
	g := &Game{surface: &EbitenSurface{}}
	h, err := newHost(o, g.surface)
	if err != nil {
		return nil, err
	}
	g.host = h
	g.size = h.sphere.RenderConfig().CanvasSize
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err == nil {
		g.face = &text.GoTextFace{Source: src, Size: 12}
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleVoice()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	for key, tier := range map[ebiten.Key]config.Tier{
		ebiten.Key1: config.Small,
		ebiten.Key2: config.Medium,
		ebiten.Key3: config.Large,
	} {
		if inpututil.IsKeyJustPressed(key) {
			g.resize(tier)
		}
	}

	mx, my := ebiten.CursorPosition()
	g.tracker.Sample(g.sphere, float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	return nil
}

func (g *Game) resize(t config.Tier) {
	if err := g.sphere.SetSize(t); err != nil {
		return
	}
	g.size = g.sphere.RenderConfig().CanvasSize
	ebiten.SetWindowSize(g.size, g.size)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.target = screen
	g.frame()
	g.surface.target = nil
	if g.hud && g.face != nil {
		for i, line := range g.status() {
			op := &text.DrawOptions{}
			op.GeoM.Translate(10, float64(10+i*16))
			op.ColorScale.ScaleWithColor(color.RGBA{180, 170, 255, 255})
			text.Draw(screen, line, g.face, op)
		}
	}
}

func (g *Game) Layout(w, h int) (int, int) { return g.size, g.size }

// RunEbiten blocks until the window is closed.
func RunEbiten(o Options) error {
	g, err := NewGame(o)
	if err != nil {
		return err
	}
	defer g.sphere.Unmount()

	fps := o.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	ebiten.SetTPS(fps)
	ebiten.SetWindowSize(g.size, g.size)
	ebiten.SetWindowTitle("neurosphere")
	return ebiten.RunGame(g)
}
