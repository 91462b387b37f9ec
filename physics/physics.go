// Package physics relaxes node positions with a force-directed step: ambient
// noise jitters every node while edge springs pull connected nodes toward
// their rest length. There is no damping term, so the system may oscillate
// or diverge for large time steps or stiff edges; that matches the modeled
// behavior and is left alone.
package physics

import (
	"gonum.org/v1/gonum/spatial/r3"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/skeinlab/skein/graph"
)

// minLength is the edge length below which spring stretch is treated as
// zero; coincident endpoints would otherwise divide by zero when
// normalizing the edge direction.
const minLength = 1e-9

// Simulator advances a graph one time step at a time. The noise field is a
// smooth function of position, so nearby nodes drift coherently instead of
// shaking independently.
type Simulator struct {
	noise      opensimplex.Noise
	noiseScale float64
}

// NewSimulator creates a Simulator whose noise field is seeded with seed and
// scaled by noiseScale. A zero noiseScale disables the ambient jitter.
func NewSimulator(seed int64, noiseScale float64) *Simulator {
	return &Simulator{
		noise:      opensimplex.New(seed),
		noiseScale: noiseScale,
	}
}

// NoiseScale returns the configured ambient noise magnitude.
func (s *Simulator) NoiseScale() float64 { return s.noiseScale }

// Step advances every node by dt. The node and edge lists must not change
// during the call; only the kinematic fields are written.
func (s *Simulator) Step(g *graph.Graph, dt float64) {
	for i := range g.Nodes {
		g.Nodes[i].Acceleration = s.sampleNoise(g.Nodes[i].Position)
	}

	for _, e := range g.Edges {
		head := &g.Nodes[e.Head]
		tail := &g.Nodes[e.Tail]
		direction := r3.Sub(tail.Position, head.Position)
		length := r3.Norm(direction)
		if length < minLength {
			continue
		}
		stretch := r3.Sub(direction, r3.Scale(e.RestLength/length, direction))
		pull := r3.Scale(e.Weight, stretch)
		head.Acceleration = r3.Add(head.Acceleration, pull)
		tail.Acceleration = r3.Sub(tail.Acceleration, pull)
	}

	for i := range g.Nodes {
		n := &g.Nodes[i]
		n.Velocity = r3.Add(n.Velocity, r3.Scale(dt, n.Acceleration))
		n.Position = r3.Add(n.Position, r3.Add(
			r3.Scale(dt, n.Velocity),
			r3.Scale(0.5*dt*dt, n.Acceleration),
		))
	}
}

// sampleNoise evaluates the noise field once per axis with rotated input
// ordering so the three components decorrelate.
func (s *Simulator) sampleNoise(p r3.Vec) r3.Vec {
	if s.noiseScale == 0 {
		return r3.Vec{}
	}
	return r3.Scale(s.noiseScale, r3.Vec{
		X: s.noise.Eval3(p.X, p.Y, p.Z),
		Y: s.noise.Eval3(p.Y, p.Z, p.X),
		Z: s.noise.Eval3(p.Z, p.X, p.Y),
	})
}
