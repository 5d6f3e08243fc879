package render

// Surface is a 2D drawing target. Implementations never see a non-positive
// radius or width; the renderer clamps before calling.
type Surface interface {
	Clear()
	// StrokeLine draws a line whose colour runs along the gradient from
	// (x0, y0) to (x1, y1).
	StrokeLine(x0, y0, x1, y1, width float64, g Gradient)
	// FillCircle fills a disc whose colour runs along the gradient from the
	// centre outward.
	FillCircle(cx, cy, r float64, g Gradient)
}

// Resizer is implemented by surfaces that follow size tier changes.
type Resizer interface {
	Resize(size int)
}

type CallKind int

const (
	CallLine CallKind = iota
	CallCircle
)

// Call is one recorded draw primitive.
type Call struct {
	Kind           CallKind
	X0, Y0, X1, Y1 float64
	Width, Radius  float64
	Gradient       Gradient
}

// Recorder is a Surface that keeps the calls of the last frame.
type Recorder struct {
	Size   int
	Calls  []Call
	Clears int
}

func NewRecorder(size int) *Recorder { return &Recorder{Size: size} }

func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Clears++
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, g Gradient) {
	r.Calls = append(r.Calls, Call{Kind: CallLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Gradient: copyGradient(g)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, g Gradient) {
	r.Calls = append(r.Calls, Call{Kind: CallCircle, X0: cx, Y0: cy, Radius: radius, Gradient: copyGradient(g)})
}

func (r *Recorder) Resize(size int) { r.Size = size }

// Count returns the number of recorded calls of kind k.
func (r *Recorder) Count(k CallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Snapshot copies the recorded calls so they survive the next Clear.
func (r *Recorder) Snapshot() []Call {
	out := make([]Call, len(r.Calls))
	copy(out, r.Calls)
	return out
}

func copyGradient(g Gradient) Gradient {
	stops := make([]Stop, len(g.Stops))
	copy(stops, g.Stops)
	return Gradient{Stops: stops, Alpha: g.Alpha}
}

// Multi draws every call onto each of its surfaces in order.
type Multi []Surface

func (m Multi) Clear() {
	for _, s := range m {
		s.Clear()
	}
}

func (m Multi) StrokeLine(x0, y0, x1, y1, width float64, g Gradient) {
	for _, s := range m {
		s.StrokeLine(x0, y0, x1, y1, width, g)
	}
}

func (m Multi) FillCircle(cx, cy, r float64, g Gradient) {
	for _, s := range m {
		s.FillCircle(cx, cy, r, g)
	}
}

func (m Multi) Resize(size int) {
	for _, s := range m {
		if r, ok := s.(Resizer); ok {
			r.Resize(size)
		}
	}
}
