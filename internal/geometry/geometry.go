// Package geometry builds the fixed node set and connection graph of the sphere.
package geometry

import "math"

const (
	// NodeCount is the number of nodes in every geometry epoch.
	NodeCount = 80

	// ConnectionDistance is the exclusive Euclidean threshold for linking two nodes.
	ConnectionDistance = 0.5
)

// GoldenAngle is π(3-√5), the azimuth step of the Fibonacci sphere.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Node is a point on the unit sphere. Its identity is its index.
type Node struct {
	X, Y, Z float64
}

func (n Node) Dist(o Node) float64 {
	dx, dy, dz := n.X-o.X, n.Y-o.Y, n.Z-o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (n Node) Length() float64 { return math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z) }

// Connection links node I to node J, always with I < J.
type Connection struct {
	I, J int
}

// Geometry is one immutable epoch: nodes and the connections that index them.
// It is replaced as a whole, never edited.
type Geometry struct {
	Nodes       []Node
	Connections []Connection
}

// Generate places n nodes with the Fibonacci sphere and links every pair
// closer than ConnectionDistance.
func Generate(n int) *Geometry {
	nodes := Fibonacci(n)
	return &Geometry{Nodes: nodes, Connections: Connect(nodes, ConnectionDistance)}
}

// Fibonacci distributes n points near-uniformly over the unit sphere,
// walking y from 1 to -1 and advancing the azimuth by the golden angle.
func Fibonacci(n int) []Node {
	if n <= 0 {
		return nil
	}
	nodes := make([]Node, n)
	for i := range nodes {
		y := 1.0
		if n > 1 {
			y = 1 - (float64(i)/float64(n-1))*2
		}
		r := math.Sqrt(math.Max(0, 1-y*y))
		theta := GoldenAngle * float64(i)
		nodes[i] = Node{X: math.Cos(theta) * r, Y: y, Z: math.Sin(theta) * r}
	}
	return nodes
}

// Connect returns every pair (i, j), i < j, whose distance is below maxDist.
// Pairs come out ordered by i, then j.
func Connect(nodes []Node, maxDist float64) []Connection {
	conns := make([]Connection, 0, len(nodes)*4)
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].Dist(nodes[j]) < maxDist {
				conns = append(conns, Connection{I: i, J: j})
			}
		}
	}
	return conns
}

// Degrees counts how many connections touch each node.
func (g *Geometry) Degrees() []int {
	deg := make([]int, len(g.Nodes))
	for _, c := range g.Connections {
		deg[c.I]++
		deg[c.J]++
	}
	return deg
}
