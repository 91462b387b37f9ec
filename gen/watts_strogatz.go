package gen

import (
	"fmt"
	"sort"

	"github.com/skeinlab/skein/graph"
	"github.com/skeinlab/skein/rng"
)

// WattsStrogatz generates a small-world graph over geometric neighbors.
// Every node connects to its numNeighbors nearest peers by Euclidean
// distance, and each of those links is independently rewired to a uniformly
// random target with probability rewireProb.
//
// Edges are emitted per node, so an undirected pair of mutual neighbors
// appears twice; duplicates are not removed. Rewiring may pick the node
// itself, producing a self-loop — a quirk of the model that is kept rather
// than guarded against (the simulator's zero-length policy absorbs it).
func WattsStrogatz(src *rng.Source, cfg Config, numNodes, numNeighbors int, rewireProb float64) (*graph.Graph, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if numNeighbors < 0 {
		return nil, fmt.Errorf("%w: neighbor count %d is negative", ErrInvalidParameter, numNeighbors)
	}
	if numNeighbors >= numNodes {
		return nil, fmt.Errorf("%w: neighbor count %d must be below node count %d", ErrInvalidParameter, numNeighbors, numNodes)
	}
	if rewireProb < 0 || rewireProb > 1 {
		return nil, fmt.Errorf("%w: rewire probability %v outside [0, 1]", ErrInvalidParameter, rewireProb)
	}

	g := graph.New()
	for i := 0; i < numNodes; i++ {
		g.AddNode(sampleNode(src, cfg))
	}

	type ranked struct {
		dist float64
		node int
	}
	for i := 0; i < numNodes; i++ {
		byDist := make([]ranked, 0, numNodes)
		for j := 0; j < numNodes; j++ {
			byDist = append(byDist, ranked{dist: g.Distance(i, j), node: j})
		}
		// Ties break on index so a fixed seed reproduces the same edges.
		sort.Slice(byDist, func(a, b int) bool {
			if byDist[a].dist != byDist[b].dist {
				return byDist[a].dist < byDist[b].dist
			}
			return byDist[a].node < byDist[b].node
		})

		taken := 0
		for _, cand := range byDist {
			if cand.node == i {
				// Self-distance is zero; skip rather than emit a loop.
				continue
			}
			if taken == numNeighbors {
				break
			}
			taken++

			weight := src.Uniform(cfg.WeightMin, cfg.WeightMax)
			target := cand.node
			if src.Bernoulli(rewireProb) {
				target = src.UniformInt(0, numNodes-1)
			}
			g.AddEdge(graph.Edge{
				Head:       i,
				Tail:       target,
				RestLength: g.Distance(i, target),
				Weight:     weight,
			})
		}
	}
	return g, nil
}
