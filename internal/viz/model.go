package viz

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/loop"
	"github.com/san-kum/neurosphere/internal/metrics"
	"github.com/san-kum/neurosphere/internal/render"
	"github.com/san-kum/neurosphere/internal/sphere"
)

const (
	defaultCols     = 60
	defaultRows     = 24
	historyCapacity = 120
)

type TickMsg time.Time

type Options struct {
	Tier   config.Tier
	Voice  bool
	Level  sphere.LevelSource
	FPS    int
	Theme  string
	Logger *log.Logger
}

// Model hosts one sphere in the terminal. The sphere's loop is driven by
// tick messages through a manual scheduler, so all drawing happens on the
// bubbletea goroutine.
type Model struct {
	sphere   *sphere.Sphere
	sched    *loop.ManualScheduler
	surface  *BrailleSurface
	stats    *metrics.Set
	fps      int
	voice    bool
	inside   bool
	frame    int
	levels   []float64
	rates    []float64
	showHelp bool
	width    int
	height   int
	err      error
}

func NewModel(o Options) (Model, error) {
	cfg, err := config.Lookup(o.Tier)
	if err != nil {
		return Model{}, err
	}
	fps := o.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	if o.Theme != "" {
		SetTheme(o.Theme)
	}

	m := Model{
		sched:   loop.NewManualScheduler(),
		surface: NewBrailleSurface(defaultCols, defaultRows, cfg.CanvasSize),
		stats:   metrics.Default(),
		fps:     fps,
		voice:   o.Voice,
	}
	opts := []sphere.Option{
		sphere.WithFadeIn(render.FadeInTicks),
		sphere.WithFrameHook(m.stats.Hook()),
	}
	if o.Logger != nil {
		opts = append(opts, sphere.WithLogger(o.Logger))
	}
	if o.Level != nil {
		opts = append(opts, sphere.WithLevelSource(o.Level))
	}
	m.sphere, err = sphere.New(o.Tier, m.surface, m.sched, opts...)
	if err != nil {
		return Model{}, err
	}
	m.sphere.SetVoiceMode(o.Voice)
	m.sphere.Mount()
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and drives the sphere.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.sphere.Unmount()
			return m, tea.Quit
		case "v", " ":
			m.voice = !m.voice
			m.sphere.SetVoiceMode(m.voice)
		case "1":
			m.setTier(config.Small)
		case "2":
			m.setTier(config.Medium)
		case "3":
			m.setTier(config.Large)
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cols := max(10, msg.Width-panelWidth-2*canvasPadX-4)
		rows := max(5, msg.Height-2*canvasPadY)
		m.surface.Reshape(cols, rows)
	case tea.MouseMsg:
		m.pointer(msg)
	case TickMsg:
		m.sched.Pump(time.Time(msg))
		m.frame++
		last := m.sphere.LastFrame()
		m.levels = appendCapped(m.levels, last.Level)
		for _, r := range m.stats.Readings() {
			if r.Name == "fps" {
				m.rates = appendCapped(m.rates, r.Value)
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) setTier(t config.Tier) {
	if err := m.sphere.SetSize(t); err != nil {
		m.err = err
	}
}

// pointer turns terminal mouse events into sphere pointer events. Cells are
// mapped to logical pixels through the surface; leaving the sphere's square
// counts as a pointer leave.
func (m *Model) pointer(msg tea.MouseMsg) {
	px, py := m.surface.CellToLogical(msg.X-canvasPadX, msg.Y-canvasPadY)
	in := m.surface.Contains(px, py)
	switch {
	case in && !m.inside:
		m.inside = true
		m.sphere.PointerEnter()
	case !in && m.inside:
		m.inside = false
		m.sphere.PointerLeave()
	}
	if !in {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.sphere.PointerDown(px, py)
		}
	case tea.MouseActionRelease:
		m.sphere.PointerUp()
	case tea.MouseActionMotion:
		m.sphere.PointerMove(px, py)
	}
}

func appendCapped(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if len(xs) > historyCapacity {
		xs = xs[len(xs)-historyCapacity:]
	}
	return xs
}

// View renders the TUI interface.
func (m Model) View() string {
	th := CurrentTheme
	canvasView := canvasStyle.Render(m.surface.Canvas().Render(th.HeatStyles()))

	var s strings.Builder
	s.WriteString(GradientText("NEUROSPHERE", th.Primary, th.Accent) + "\n\n")

	mode := m.sphere.Mode()
	if m.voice {
		s.WriteString(StatusVoice.Render(AnimatedSpinner(m.frame)+" LISTENING") + "\n\n")
	} else {
		s.WriteString(StatusIdle.Render(strings.ToUpper(mode.String())) + "\n\n")
	}

	cfg := m.sphere.RenderConfig()
	s.WriteString(labelStyle.Render("Size") + MetricValue.Render(fmt.Sprintf("%s (%dpx)", m.sphere.Tier(), cfg.CanvasSize)) + "\n")
	s.WriteString(labelStyle.Render("Mode") + MetricValue.Render(mode.String()) + "\n")
	s.WriteString(labelStyle.Render("Theme") + MetricValue.Render(th.Name) + "\n")
	level := m.sphere.AudioLevel()
	s.WriteString(labelStyle.Render("Level") + ProgressBar(level, 20) + fmt.Sprintf(" %.2f", level) + "\n")

	if m.voice && len(m.levels) > 1 {
		chart := asciigraph.Plot(m.levels,
			asciigraph.Height(4), asciigraph.Width(30),
			asciigraph.LowerBound(0), asciigraph.UpperBound(1),
			asciigraph.Caption("Audio level"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(panelWidth-6) + "\n\n")
	for _, r := range m.stats.Readings() {
		s.WriteString(labelStyle.Render(r.Name) + MetricValue.Render(fmt.Sprintf("%.2f", r.Value)) + "\n")
	}
	s.WriteString(SparklineChart(m.rates, 30) + "\n")

	if m.err != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Render(m.err.Error()) + "\n")
	}
	s.WriteString(KeyHint.Render("\nV:Voice 1/2/3:Size T:Theme\n?:Help Q:Quit  drag to spin"))

	panelView := panelStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  V/Space  - Toggle voice mode        ║
║  1 2 3    - Small / medium / large   ║
║  T        - Cycle themes             ║
║  Mouse    - Hover to tilt, drag      ║
║             to spin                  ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the terminal host with mouse motion reporting.
func Run(o Options) error {
	m, err := NewModel(o)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	m.sphere.Unmount()
	return err
}
