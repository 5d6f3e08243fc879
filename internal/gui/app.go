package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/neurosphere/internal/config"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(5, 5, 16, 255)      // Night
	ColText    = rl.NewColor(180, 170, 255, 255) // Soft violet
	ColTextDim = rl.NewColor(80, 80, 120, 255)   // Muted
)

type App struct {
	*host
	Surface *RaylibSurface
	Font    rl.Font
}

// initWindow opens a square window of the given size and sets the target FPS.
func initWindow(size, fps int) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(size), int32(size), "neurosphere")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads the Liberation Mono font from the system path and enables bilinear texture filtering.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// RunRaylib blocks until the window is closed.
func RunRaylib(o Options) error {
	cfg, err := config.Lookup(o.Tier)
	if err != nil {
		return err
	}
	fps := o.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	initWindow(cfg.CanvasSize, fps)
	defer rl.CloseWindow()

	a := &App{Surface: NewRaylibSurface(ColBg), Font: loadFont()}
	defer rl.UnloadFont(a.Font)
	a.host, err = newHost(o, a.Surface)
	if err != nil {
		return err
	}
	defer a.sphere.Unmount()
	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input; it reports whether the user asked to quit.
func (a *App) Update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return true
	case rl.IsKeyPressed(rl.KeyV), rl.IsKeyPressed(rl.KeySpace):
		a.toggleVoice()
	case rl.IsKeyPressed(rl.KeyH):
		a.hud = !a.hud
	case rl.IsKeyPressed(rl.KeyOne):
		a.resize(config.Small)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.resize(config.Medium)
	case rl.IsKeyPressed(rl.KeyThree):
		a.resize(config.Large)
	}

	mouse := rl.GetMousePosition()
	a.tracker.Sample(a.sphere, float64(mouse.X), float64(mouse.Y), rl.IsMouseButtonDown(rl.MouseLeftButton))
	return false
}

func (a *App) resize(t config.Tier) {
	if err := a.sphere.SetSize(t); err != nil {
		return
	}
	size := a.sphere.RenderConfig().CanvasSize
	rl.SetWindowSize(size, size)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	a.frame()
	if a.hud {
		a.drawHUD()
	}
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	for i, line := range a.status() {
		col := ColText
		if i > 1 {
			col = ColTextDim
		}
		a.drawText(line, 10, 10+i*16, 14, col)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
