package projection

import (
	"math"
	"testing"

	"github.com/san-kum/neurosphere/internal/config"
	"github.com/san-kum/neurosphere/internal/geometry"
	"github.com/san-kum/neurosphere/internal/motion"
)

const eps = 1e-12

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestRotateIdentity(t *testing.T) {
	for i, n := range geometry.Fibonacci(geometry.NodeCount) {
		r := RotateZYX(Vec3{n.X, n.Y, n.Z}, motion.Rotation{})
		if r.X != n.X || r.Y != n.Y || r.Z != n.Z {
			t.Errorf("node %d: zero rotation changed %+v to %+v", i, n, r)
		}
	}
}

func TestRotateOrder(t *testing.T) {
	// Z first sends +X to +Y, Y then leaves it, X sends +Y to +Z.
	got := RotateZYX(Vec3{1, 0, 0}, motion.Rotation{X: math.Pi / 2, Z: math.Pi / 2})
	if !near(got.X, 0) || !near(got.Y, 0) || !near(got.Z, 1) {
		t.Errorf("expected (0,0,1), got %+v", got)
	}

	// X first would have left +X alone and Z would then send it to +Y.
	if near(got.Y, 1) {
		t.Error("rotation applied in X-first order")
	}
}

func TestRotatePreservesLength(t *testing.T) {
	rot := motion.Rotation{X: 0.7, Y: -2.1, Z: 13.4}
	for _, n := range geometry.Fibonacci(geometry.NodeCount) {
		r := RotateZYX(Vec3{n.X, n.Y, n.Z}, rot)
		if l := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z); math.Abs(l-1) > 1e-9 {
			t.Fatalf("expected unit length after rotation, got %f", l)
		}
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{-0.2, 0},
		{7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestSmallTierNorthPole(t *testing.T) {
	rc, _ := config.Lookup(config.Small)
	p := Projector{CenterX: rc.Center(), CenterY: rc.Center(), BaseRadius: rc.BaseRadius}

	pts := p.Project(geometry.Fibonacci(geometry.NodeCount), Params{}, nil)

	if pts[0].X != 100 {
		t.Errorf("expected node 0 on the horizontal centre, got x=%f", pts[0].X)
	}
	// y = 1 at tick 0 with no breathing offset for i = 0.
	if pts[0].Y != 100+70 {
		t.Errorf("expected node 0 at y=170, got %f", pts[0].Y)
	}
	if pts[0].Depth != 0 {
		t.Errorf("expected depth 0, got %f", pts[0].Depth)
	}
}

func TestScaleFloorAndVoice(t *testing.T) {
	p := Projector{BaseRadius: 0}
	if s := p.Scale(0, Params{}); s != ScaleFloor {
		t.Errorf("expected scale floor %v, got %v", ScaleFloor, s)
	}

	p.BaseRadius = 100
	quiet := p.Scale(3, Params{Tick: 40, Voice: true, AudioLevel: 0})
	loud := p.Scale(3, Params{Tick: 40, Voice: true, AudioLevel: 1})
	if loud <= quiet {
		t.Errorf("expected audio to enlarge the sphere, quiet=%f loud=%f", quiet, loud)
	}
	if nan := p.Scale(3, Params{Tick: 40, Voice: true, AudioLevel: math.NaN()}); nan != quiet {
		t.Errorf("expected NaN level to act as 0, got %f", nan)
	}
	if off := p.Scale(3, Params{Tick: 40, AudioLevel: 1}); off != quiet {
		t.Errorf("expected audio ignored outside voice mode, got %f", off)
	}
}

func TestAudioReactivity(t *testing.T) {
	for tick := uint64(0); tick < 2000; tick += 97 {
		for i := 0; i < geometry.NodeCount; i++ {
			if ar := AudioReactivity(i, Params{Tick: tick, AudioLevel: 1}); ar != 0 {
				t.Fatalf("expected no reactivity outside voice mode, got %f", ar)
			}
			ar := AudioReactivity(i, Params{Tick: tick, Voice: true, AudioLevel: math.Inf(1)})
			if ar != 0 {
				t.Fatalf("expected Inf level to be treated as 0, got %f", ar)
			}
			ar = AudioReactivity(i, Params{Tick: tick, Voice: true, AudioLevel: 2})
			if ar < 0 || ar > AudioReactiveGain {
				t.Fatalf("reactivity %f outside [0, %f]", ar, AudioReactiveGain)
			}
		}
	}
}

func TestProjectReusesBuffer(t *testing.T) {
	nodes := geometry.Fibonacci(geometry.NodeCount)
	p := Projector{CenterX: 50, CenterY: 50, BaseRadius: 20}
	buf := make([]Point, 0, len(nodes))

	out := p.Project(nodes, Params{Tick: 5}, buf)
	if len(out) != len(nodes) {
		t.Fatalf("expected %d points, got %d", len(nodes), len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Error("expected the destination buffer to be reused")
	}
}
