package viz

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosphere/internal/audio"
	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/motion"
)

func newTestModel(t *testing.T, o Options) Model {
	t.Helper()
	m, err := NewModel(o)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	t.Cleanup(m.sphere.Unmount)
	return m
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelTicksDrawSphere(t *testing.T) {
	g := NewWithT(t)
	m := newTestModel(t, Options{Tier: config.Small})

	now := time.Unix(0, 0)
	// past the mount fade, so faint primitives clear the dot threshold
	for i := 0; i < 61; i++ {
		now = now.Add(16 * time.Millisecond)
		next, cmd := m.Update(TickMsg(now))
		m = next.(Model)
		g.Expect(cmd).NotTo(BeNil())
	}

	g.Expect(m.sphere.LastFrame().Tick).To(Equal(uint64(60)))
	g.Expect(m.levels).To(HaveLen(61))
	g.Expect(m.View()).To(ContainSubstring("small"))

	lit := 0
	for _, row := range m.surface.Canvas().Grid {
		for _, r := range row {
			if r != blank {
				lit++
			}
		}
	}
	g.Expect(lit).To(BeNumerically(">", 0))
}

func TestModelKeys(t *testing.T) {
	g := NewWithT(t)
	m := newTestModel(t, Options{Tier: config.Large, Level: audio.Fixed(0.5)})

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	g.Expect(m.voice).To(BeTrue())
	g.Expect(m.sphere.Mode()).To(Equal(motion.VoiceReactive))

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	g.Expect(m.sphere.Tier()).To(Equal(config.Medium))

	before := CurrentTheme.Name
	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	g.Expect(CurrentTheme.Name).NotTo(Equal(before))
	SetTheme(before)

	m = update(m, TickMsg(time.Unix(1, 0)))
	g.Expect(m.sphere.AudioLevel()).To(Equal(0.5))
	g.Expect(m.View()).To(ContainSubstring("LISTENING"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(cmd()).To(Equal(tea.Quit()))
	g.Expect(m.sphere.Running()).To(BeFalse())
}

func TestModelMouse(t *testing.T) {
	g := NewWithT(t)
	m := newTestModel(t, Options{Tier: config.Small})
	centreX, centreY := canvasPadX+defaultCols/2, canvasPadY+defaultRows/2

	m = update(m, tea.MouseMsg{X: centreX, Y: centreY, Action: tea.MouseActionMotion})
	g.Expect(m.inside).To(BeTrue())
	g.Expect(m.sphere.Mode()).To(Equal(motion.Hovering))

	m = update(m, tea.MouseMsg{X: centreX, Y: centreY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	g.Expect(m.sphere.Mode()).To(Equal(motion.Dragging))

	m = update(m, tea.MouseMsg{X: centreX + 4, Y: centreY, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	g.Expect(m.sphere.Motion().Velocity.Y).To(BeNumerically(">", 0))

	m = update(m, tea.MouseMsg{X: centreX + 4, Y: centreY, Action: tea.MouseActionRelease})
	g.Expect(m.sphere.Mode()).To(Equal(motion.Hovering))

	m = update(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	g.Expect(m.inside).To(BeFalse())
	g.Expect(m.sphere.Mode()).To(Equal(motion.Idle))
}

func TestModelWindowResize(t *testing.T) {
	g := NewWithT(t)
	m := newTestModel(t, Options{Tier: config.Medium})
	m = update(m, tea.WindowSizeMsg{Width: 160, Height: 50})
	g.Expect(m.surface.Canvas().Width).To(Equal(160 - panelWidth - 2*canvasPadX - 4))
	g.Expect(m.surface.Canvas().Height).To(Equal(50 - 2*canvasPadY))
}

func TestModelUnknownTier(t *testing.T) {
	_, err := NewModel(Options{Tier: "enormous"})
	NewWithT(t).Expect(err).To(MatchError(config.ErrUnknownTier))
}
