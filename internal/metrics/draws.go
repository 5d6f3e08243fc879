package metrics

import "github.com/san-kum/neurosphere/internal/sphere"

// DrawCalls is the mean number of surface calls per frame.
type DrawCalls struct {
	name    string
	total   int
	samples int
}

func NewDrawCalls() *DrawCalls {
	return &DrawCalls{name: "draw_calls"}
}

func (d *DrawCalls) Name() string { return d.name }

func (d *DrawCalls) Observe(fi sphere.FrameInfo) {
	d.total += fi.Stats.DrawCalls()
	d.samples++
}

func (d *DrawCalls) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return float64(d.total) / float64(d.samples)
}

func (d *DrawCalls) Reset() {
	d.total = 0
	d.samples = 0
}

// Culled is the fraction of sphere elements skipped as back-facing.
type Culled struct {
	name   string
	culled int
	seen   int
}

func NewCulled() *Culled {
	return &Culled{name: "culled"}
}

func (c *Culled) Name() string { return c.name }

func (c *Culled) Observe(fi sphere.FrameInfo) {
	st := fi.Stats
	c.culled += st.Culled
	c.seen += st.Culled + st.Connections + st.Nodes + st.Particles
}

func (c *Culled) Value() float64 {
	if c.seen == 0 {
		return 0
	}
	return float64(c.culled) / float64(c.seen)
}

func (c *Culled) Reset() {
	c.culled = 0
	c.seen = 0
}
