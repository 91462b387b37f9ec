// Package graph defines the graph model shared by the generators, the layout
// simulator, and the presentation consumers: nodes embedded in 3D space and
// edges carrying the spring parameters the simulator integrates against.
package graph

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Node is a point mass embedded in 3D space. Velocity and Acceleration stay
// zero until the layout simulator touches them; generation-only consumers can
// ignore both.
type Node struct {
	Position     r3.Vec `json:"position"`
	Velocity     r3.Vec `json:"velocity"`
	Acceleration r3.Vec `json:"acceleration"`
}

// Edge connects two nodes by index. RestLength is the Euclidean distance
// between the endpoints at creation time and Weight the spring stiffness;
// topological consumers can ignore both.
type Edge struct {
	Head       int     `json:"head"`
	Tail       int     `json:"tail"`
	RestLength float64 `json:"rest_length"`
	Weight     float64 `json:"weight"`
}

// Graph owns a node list and an edge list. Node indices are assigned in
// creation order and stay stable for the lifetime of one generation pass.
// A Graph is rebuilt wholesale on every model switch or re-roll, never
// mutated incrementally across generations.
type Graph struct {
	ID    string `json:"id"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// New creates an empty Graph with a fresh identity.
func New() *Graph {
	return &Graph{ID: uuid.New().String()}
}

// AddNode appends a node and returns its index.
func (g *Graph) AddNode(n Node) int {
	g.Nodes = append(g.Nodes, n)
	return len(g.Nodes) - 1
}

// AddEdge appends an edge.
func (g *Graph) AddEdge(e Edge) {
	g.Edges = append(g.Edges, e)
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.Nodes) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.Edges) }

// Degrees returns the degree of every node, counting each edge endpoint.
// A self-loop contributes two to its node.
func (g *Graph) Degrees() []float64 {
	degrees := make([]float64, len(g.Nodes))
	for _, e := range g.Edges {
		degrees[e.Head]++
		degrees[e.Tail]++
	}
	return degrees
}

// Distance returns the Euclidean distance between the nodes at indices i
// and j.
func (g *Graph) Distance(i, j int) float64 {
	return r3.Norm(r3.Sub(g.Nodes[i].Position, g.Nodes[j].Position))
}

// Snapshot returns a deep copy for read-only consumers. The copy keeps the
// same ID so a presentation layer can tell generations apart.
func (g *Graph) Snapshot() *Graph {
	out := &Graph{
		ID:    g.ID,
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)
	return out
}
