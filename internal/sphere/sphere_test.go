package sphere_test

import (
	"bytes"
	"log"
	"math"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/loop"
	"github.com/san-kum/neurosphere/internal/motion"
	"github.com/san-kum/neurosphere/internal/render"
	"github.com/san-kum/neurosphere/internal/sphere"
)

type fixedLevel float64

func (f fixedLevel) Level() float64 { return float64(f) }

var _ = Describe("Sphere", func() {
	var (
		sched *loop.ManualScheduler
		rec   *render.Recorder
		s     *sphere.Sphere
		now   time.Time
	)

	pump := func(n int) {
		for i := 0; i < n; i++ {
			now = now.Add(16 * time.Millisecond)
			sched.Pump(now)
		}
	}

	BeforeEach(func() {
		sched = loop.NewManualScheduler()
		rec = render.NewRecorder(0)
		now = time.Unix(0, 0)
		var err error
		s, err = sphere.New(config.Small, rec, sched)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		s.Unmount()
	})

	It("rejects unknown tiers", func() {
		_, err := sphere.New(config.Tier("huge"), rec, sched)
		Expect(err).To(MatchError(config.ErrUnknownTier))
		Expect(s.SetSize(config.Tier("tiny"))).To(MatchError(config.ErrUnknownTier))
		Expect(s.Tier()).To(Equal(config.Small))
	})

	It("sizes the surface to the tier", func() {
		Expect(rec.Size).To(Equal(200))
	})

	Describe("mounting", func() {
		It("draws once per tick", func() {
			s.Mount()
			pump(3)
			Expect(s.LastFrame().Tick).To(Equal(uint64(2)))
			Expect(rec.Clears).To(Equal(3))
			Expect(rec.Calls).NotTo(BeEmpty())
		})

		It("places node 0 below the centre on the first small-tier tick", func() {
			s.Mount()
			pump(1)
			p := s.Points()[0]
			Expect(p.X).To(BeNumerically("~", 100, 1e-9))
			Expect(p.Y).To(BeNumerically("~", 170, 1e-9))
			Expect(p.Depth).To(BeNumerically("~", 0, 1e-9))
		})

		It("is idempotent", func() {
			s.Mount()
			s.Mount()
			Expect(sched.Pending()).To(Equal(1))
		})

		It("stops drawing after unmount", func() {
			s.Mount()
			pump(2)
			s.Unmount()
			s.Unmount()
			clears := rec.Clears
			pump(5)
			Expect(rec.Clears).To(Equal(clears))
			Expect(sched.Pending()).To(BeZero())
			Expect(s.Running()).To(BeFalse())
		})

		It("reports every frame to the hook", func() {
			var seen []sphere.FrameInfo
			hooked, err := sphere.New(config.Medium, render.NewRecorder(0), sched,
				sphere.WithFrameHook(func(fi sphere.FrameInfo) { seen = append(seen, fi) }))
			Expect(err).NotTo(HaveOccurred())
			hooked.Mount()
			defer hooked.Unmount()

			pump(4)
			Expect(seen).To(HaveLen(4))
			Expect(seen[0].DeltaMs).To(BeZero())
			Expect(seen[3].DeltaMs).To(BeNumerically("~", 16, 1e-9))
			Expect(seen[3].Stats.Nodes).To(BeNumerically(">", 0))
		})
	})

	Describe("without a surface", func() {
		It("mounts as a no-op and logs once", func() {
			var buf bytes.Buffer
			blind, err := sphere.New(config.Large, nil, sched, sphere.WithLogger(log.New(&buf, "", 0)))
			Expect(err).NotTo(HaveOccurred())

			Expect(func() {
				blind.Mount()
				Expect(blind.SetSize(config.Medium)).To(Succeed())
				blind.PointerDown(10, 10)
				blind.SetAudioLevel(0.5)
				pump(3)
				blind.Unmount()
			}).NotTo(Panic())
			Expect(blind.Running()).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
			Expect(strings.Count(buf.String(), "rendering disabled")).To(Equal(1))
		})
	})

	Describe("resizing", func() {
		It("swaps geometry and restarts the loop", func() {
			s.Mount()
			pump(10)
			before := s.Geometry()

			Expect(s.SetSize(config.Large)).To(Succeed())
			Expect(s.Tier()).To(Equal(config.Large))
			Expect(s.RenderConfig().CanvasSize).To(Equal(500))
			Expect(rec.Size).To(Equal(500))
			Expect(s.Geometry()).NotTo(BeIdenticalTo(before))
			Expect(sched.Pending()).To(Equal(1))

			pump(1)
			Expect(s.LastFrame().Tick).To(BeZero())
			for _, p := range s.Points() {
				Expect(p.X).To(BeNumerically(">", 250-130))
				Expect(p.X).To(BeNumerically("<", 250+130))
			}
		})

		It("stays unmounted when resized before mounting", func() {
			Expect(s.SetSize(config.Medium)).To(Succeed())
			Expect(s.Running()).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
		})
	})

	Describe("pointer input", func() {
		It("converts surface pixels before dragging", func() {
			s.PointerDown(100, 100)
			s.PointerMove(110, 95)
			m := s.Motion()
			Expect(s.Mode()).To(Equal(motion.Dragging))
			Expect(m.Velocity.X).To(BeNumerically("~", -0.1, 1e-12))
			Expect(m.Velocity.Y).To(BeNumerically("~", 0.2, 1e-12))

			s.PointerUp()
			Expect(s.Mode()).To(Equal(motion.Idle))
		})

		It("hovers on enter and idles on leave", func() {
			s.PointerEnter()
			Expect(s.Mode()).To(Equal(motion.Hovering))
			s.PointerLeave()
			Expect(s.Mode()).To(Equal(motion.Idle))
		})
	})

	Describe("voice mode", func() {
		BeforeEach(func() {
			s.SetVoiceMode(true)
		})

		It("ignores pointer input", func() {
			s.PointerEnter()
			s.PointerDown(0, 0)
			s.PointerMove(200, 200)
			m := s.Motion()
			Expect(s.Mode()).To(Equal(motion.VoiceReactive))
			Expect(m.Hovering).To(BeFalse())
			Expect(m.Drag.Active).To(BeFalse())
			Expect(m.Target).To(Equal(motion.Rotation{}))
			Expect(m.Velocity).To(Equal(motion.Velocity{}))
		})

		It("sanitizes audio levels", func() {
			for in, want := range map[float64]float64{
				0.4:         0.4,
				2:           1,
				-3:          0,
				math.NaN():  0,
				math.Inf(1): 0,
			} {
				s.SetAudioLevel(in)
				Expect(s.AudioLevel()).To(Equal(want))
			}
		})

		It("polls the level source each tick", func() {
			loud, err := sphere.New(config.Small, render.NewRecorder(0), sched, sphere.WithLevelSource(fixedLevel(7)))
			Expect(err).NotTo(HaveOccurred())
			loud.SetVoiceMode(true)
			loud.Mount()
			defer loud.Unmount()

			pump(1)
			Expect(loud.AudioLevel()).To(Equal(1.0))
			Expect(loud.LastFrame().Level).To(Equal(1.0))
			Expect(loud.LastFrame().Mode).To(Equal(motion.VoiceReactive))
		})
	})
})
