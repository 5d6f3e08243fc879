package geometry

import (
	"math"
	"testing"
)

func TestGenerateNodeCount(t *testing.T) {
	g := Generate(NodeCount)
	if len(g.Nodes) != 80 {
		t.Fatalf("expected 80 nodes, got %d", len(g.Nodes))
	}
	if len(g.Connections) == 0 {
		t.Error("expected at least one connection")
	}
}

func TestNodesOnUnitSphere(t *testing.T) {
	for i, n := range Generate(NodeCount).Nodes {
		if math.Abs(n.Length()-1) > 1e-9 {
			t.Errorf("node %d: expected unit length, got %.12f", i, n.Length())
		}
	}
}

func TestFibonacciPoles(t *testing.T) {
	nodes := Fibonacci(NodeCount)

	first := nodes[0]
	if first.X != 0 || first.Y != 1 || first.Z != 0 {
		t.Errorf("expected north pole first, got %+v", first)
	}
	last := nodes[len(nodes)-1]
	if math.Abs(last.Y+1) > 1e-12 || math.Abs(last.X) > 1e-6 || math.Abs(last.Z) > 1e-6 {
		t.Errorf("expected south pole last, got %+v", last)
	}
}

func TestConnectionsExact(t *testing.T) {
	g := Generate(NodeCount)

	seen := make(map[Connection]bool)
	for _, c := range g.Connections {
		if c.I >= c.J {
			t.Errorf("connection %+v: expected I < J", c)
		}
		if seen[c] {
			t.Errorf("connection %+v listed twice", c)
		}
		seen[c] = true
		if d := g.Nodes[c.I].Dist(g.Nodes[c.J]); d >= ConnectionDistance {
			t.Errorf("connection %+v: distance %.4f not below threshold", c, d)
		}
	}

	for i := range g.Nodes {
		for j := i + 1; j < len(g.Nodes); j++ {
			if g.Nodes[i].Dist(g.Nodes[j]) < ConnectionDistance && !seen[Connection{i, j}] {
				t.Errorf("pair (%d,%d) within threshold but missing", i, j)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := Generate(NodeCount), Generate(NodeCount)
	if len(a.Connections) != len(b.Connections) {
		t.Fatal("connection count differs between runs")
	}
	for i := range a.Nodes {
		if a.Nodes[i] != b.Nodes[i] {
			t.Fatalf("node %d differs between runs", i)
		}
	}
}

func TestGenerateDegenerate(t *testing.T) {
	tests := []struct {
		n     int
		nodes int
	}{
		{-3, 0},
		{0, 0},
		{1, 1},
		{2, 2},
	}

	for _, tt := range tests {
		g := Generate(tt.n)
		if len(g.Nodes) != tt.nodes {
			t.Errorf("n=%d: expected %d nodes, got %d", tt.n, tt.nodes, len(g.Nodes))
		}
		for _, n := range g.Nodes {
			if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
				t.Errorf("n=%d: NaN coordinate in %+v", tt.n, n)
			}
		}
	}
}

func TestDegrees(t *testing.T) {
	g := Generate(NodeCount)
	sum := 0
	for _, d := range g.Degrees() {
		sum += d
	}
	if sum != 2*len(g.Connections) {
		t.Errorf("expected degree sum %d, got %d", 2*len(g.Connections), sum)
	}
}
