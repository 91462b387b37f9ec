package gen

import (
	"fmt"

	"github.com/skeinlab/skein/graph"
	"github.com/skeinlab/skein/rng"
)

// BarabasiAlbert generates a preferential-attachment graph. The seed is a
// complete graph on numEdges nodes (Erdős–Rényi with p = 1), then every
// subsequent node attaches numEdges edges whose targets are drawn with
// probability proportional to current degree. The degree sequence is
// recomputed from scratch per new node; at the modeled scale that is cheaper
// than it looks and keeps the attachment weights trivially correct.
//
// The same target may be drawn more than once for one new node, producing
// multi-edges. That is model behavior, not a bug.
func BarabasiAlbert(src *rng.Source, cfg Config, numNodes, numEdges int) (*graph.Graph, error) {
	if numEdges < 1 {
		return nil, fmt.Errorf("%w: edges per node %d must be at least 1", ErrInvalidParameter, numEdges)
	}
	if numEdges > numNodes {
		return nil, fmt.Errorf("%w: edges per node %d exceeds node count %d", ErrInvalidParameter, numEdges, numNodes)
	}

	g, err := ErdosRenyi(src, cfg, numEdges, 1.0)
	if err != nil {
		return nil, err
	}

	for i := numEdges; i < numNodes; i++ {
		degrees := g.Degrees()
		g.AddNode(sampleNode(src, cfg))
		for j := 0; j < numEdges; j++ {
			k, err := src.Weighted(degrees)
			if err != nil {
				return nil, fmt.Errorf("degree draw for node %d: %w", i, err)
			}
			g.AddEdge(edge(src, cfg, g, i, k))
		}
	}
	return g, nil
}
