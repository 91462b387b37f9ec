package graph

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestAddNodeIndices(t *testing.T) {
	g := New()
	for i := 0; i < 5; i++ {
		if idx := g.AddNode(Node{}); idx != i {
			t.Fatalf("node %d got index %d", i, idx)
		}
	}
	if g.Order() != 5 {
		t.Fatalf("Order() = %d, want 5", g.Order())
	}
}

func TestDegrees(t *testing.T) {
	g := New()
	for i := 0; i < 3; i++ {
		g.AddNode(Node{})
	}
	g.AddEdge(Edge{Head: 0, Tail: 1})
	g.AddEdge(Edge{Head: 1, Tail: 2})
	g.AddEdge(Edge{Head: 2, Tail: 2}) // self-loop counts twice

	want := []float64{1, 2, 3}
	for i, d := range g.Degrees() {
		if d != want[i] {
			t.Errorf("degree[%d] = %v, want %v", i, d, want[i])
		}
	}
}

func TestDistance(t *testing.T) {
	g := New()
	g.AddNode(Node{Position: r3.Vec{X: 1}})
	g.AddNode(Node{Position: r3.Vec{X: 4, Y: 4}})
	if d := g.Distance(0, 1); d != 5 {
		t.Fatalf("Distance = %v, want 5", d)
	}
	if d := g.Distance(0, 0); d != 0 {
		t.Fatalf("self distance = %v, want 0", d)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	g := New()
	g.AddNode(Node{Position: r3.Vec{X: 1, Y: 2, Z: 3}})
	g.AddEdge(Edge{Head: 0, Tail: 0, Weight: 0.5})

	snap := g.Snapshot()
	if snap.ID != g.ID {
		t.Errorf("snapshot ID %q != %q", snap.ID, g.ID)
	}

	snap.Nodes[0].Position.X = 99
	snap.Edges[0].Weight = 99
	if g.Nodes[0].Position.X != 1 {
		t.Error("snapshot node mutation leaked into the graph")
	}
	if g.Edges[0].Weight != 0.5 {
		t.Error("snapshot edge mutation leaked into the graph")
	}
}
