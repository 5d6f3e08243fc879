package sphere_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/loop"
	"github.com/san-kum/neurosphere/internal/motion"
	"github.com/san-kum/neurosphere/internal/render"
	"github.com/san-kum/neurosphere/internal/sphere"
)

var _ = Describe("Tracker", func() {
	var (
		s  *sphere.Sphere
		tr sphere.Tracker
	)

	BeforeEach(func() {
		var err error
		s, err = sphere.New(config.Small, render.NewRecorder(0), loop.NewManualScheduler())
		Expect(err).NotTo(HaveOccurred())
		tr = sphere.Tracker{}
	})

	It("hovers when the pointer enters and idles when it leaves", func() {
		tr.Sample(s, -5, 50, false)
		Expect(s.Mode()).To(Equal(motion.Idle))
		tr.Sample(s, 50, 50, false)
		Expect(s.Mode()).To(Equal(motion.Hovering))
		tr.Sample(s, 250, 50, false)
		Expect(s.Mode()).To(Equal(motion.Idle))
	})

	It("drags between press and release", func() {
		tr.Sample(s, 100, 100, false)
		tr.Sample(s, 100, 100, true)
		Expect(s.Mode()).To(Equal(motion.Dragging))

		tr.Sample(s, 110, 95, true)
		v := s.Motion().Velocity
		Expect(v.X).To(BeNumerically("~", -0.1, 1e-12))
		Expect(v.Y).To(BeNumerically("~", 0.2, 1e-12))

		tr.Sample(s, 110, 95, false)
		Expect(s.Mode()).To(Equal(motion.Hovering))
	})

	It("does not start a drag for a button held while entering", func() {
		tr.Sample(s, 300, 300, true)
		tr.Sample(s, 100, 100, true)
		Expect(s.Mode()).To(Equal(motion.Hovering))
	})

	It("aims at a hovering pointer", func() {
		tr.Sample(s, 100, 100, false)
		tr.Sample(s, 150, 100, false)
		Expect(s.Motion().Target.Y).To(BeNumerically("~", 0.25, 1e-12))
	})
})
