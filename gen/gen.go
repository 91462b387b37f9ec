// Package gen builds random graphs under three classical network models:
// Erdős–Rényi, Barabási–Albert and Watts–Strogatz. All three embed their
// nodes in 3D space by sampling a radial distribution, so edges carry a
// geometric rest length the layout simulator can relax against.
package gen

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/skeinlab/skein/graph"
	"github.com/skeinlab/skein/rng"
)

// ErrInvalidParameter is returned when a generator is called with
// out-of-domain input. No partial graph is produced in that case.
var ErrInvalidParameter = errors.New("gen: invalid parameter")

// Config holds the sampling settings shared by every model: the radial
// distribution nodes are drawn from and the range edge weights are drawn
// from. It is read-only during a generation call.
type Config struct {
	RadiusMean float64
	RadiusStd  float64
	WeightMin  float64
	WeightMax  float64
}

func (c Config) validate() error {
	if c.RadiusStd < 0 {
		return fmt.Errorf("%w: radius std %v is negative", ErrInvalidParameter, c.RadiusStd)
	}
	if c.WeightMin > c.WeightMax {
		return fmt.Errorf("%w: weight range [%v, %v] is inverted", ErrInvalidParameter, c.WeightMin, c.WeightMax)
	}
	return nil
}

// sampleNode draws one node position: radius from Normal(mean, std), theta
// and phi independently from Uniform(-π, π), mapped through the standard
// spherical-to-Cartesian transform. This parameterization is intentionally
// not uniform over the sphere surface; the Watts–Strogatz neighbor structure
// depends on the resulting clustering, so it must not be "corrected".
func sampleNode(src *rng.Source, cfg Config) graph.Node {
	radius := src.Normal(cfg.RadiusMean, cfg.RadiusStd)
	theta := src.Uniform(-math.Pi, math.Pi)
	phi := src.Uniform(-math.Pi, math.Pi)
	return graph.Node{Position: r3.Vec{
		X: radius * math.Sin(theta) * math.Cos(phi),
		Y: radius * math.Sin(theta) * math.Sin(phi),
		Z: radius * math.Cos(theta),
	}}
}

// edge builds an edge between existing nodes i and j, measuring the rest
// length from their current positions and drawing a fresh weight.
func edge(src *rng.Source, cfg Config, g *graph.Graph, i, j int) graph.Edge {
	return graph.Edge{
		Head:       i,
		Tail:       j,
		RestLength: g.Distance(i, j),
		Weight:     src.Uniform(cfg.WeightMin, cfg.WeightMax),
	}
}
