package gen

import (
	"fmt"

	"github.com/skeinlab/skein/graph"
	"github.com/skeinlab/skein/rng"
)

// ErdosRenyi generates a G(n, p) graph: every unordered pair of nodes is
// connected independently with probability edgeProb. The pair loop draws one
// Bernoulli per pair, so the cost is O(n²) draws; that is the model, not an
// inefficiency.
func ErdosRenyi(src *rng.Source, cfg Config, numNodes int, edgeProb float64) (*graph.Graph, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if numNodes < 0 {
		return nil, fmt.Errorf("%w: node count %d is negative", ErrInvalidParameter, numNodes)
	}
	if edgeProb < 0 || edgeProb > 1 {
		return nil, fmt.Errorf("%w: edge probability %v outside [0, 1]", ErrInvalidParameter, edgeProb)
	}

	g := graph.New()
	for i := 0; i < numNodes; i++ {
		g.AddNode(sampleNode(src, cfg))
	}
	for i := 0; i < numNodes; i++ {
		for j := 0; j < i; j++ {
			if src.Bernoulli(edgeProb) {
				g.AddEdge(edge(src, cfg, g, i, j))
			}
		}
	}
	return g, nil
}
