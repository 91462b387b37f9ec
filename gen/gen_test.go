package gen

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skeinlab/skein/graph"
	"github.com/skeinlab/skein/rng"
)

func testConfig() Config {
	return Config{RadiusMean: 100, RadiusStd: 10, WeightMin: 0, WeightMax: 0.1}
}

// assertValidEndpoints checks the structural invariant every generator must
// uphold: edge endpoints index into the node list.
func assertValidEndpoints(t *testing.T, g *graph.Graph) {
	t.Helper()
	for _, e := range g.Edges {
		assert.GreaterOrEqual(t, e.Head, 0)
		assert.Less(t, e.Head, g.Order())
		assert.GreaterOrEqual(t, e.Tail, 0)
		assert.Less(t, e.Tail, g.Order())
	}
}

func TestSampleNodeOnSphere(t *testing.T) {
	src := rng.New(17)
	cfg := Config{RadiusMean: 50, RadiusStd: 0, WeightMin: 0, WeightMax: 1}
	for i := 0; i < 100; i++ {
		n := sampleNode(src, cfg)
		r := math.Sqrt(n.Position.X*n.Position.X + n.Position.Y*n.Position.Y + n.Position.Z*n.Position.Z)
		// Zero radial std pins every sample to the sphere of radius 50.
		assert.InDelta(t, 50, r, 1e-9)
	}
}

func TestErdosRenyiNoEdges(t *testing.T) {
	g, err := ErdosRenyi(rng.New(1), testConfig(), 30, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, g.Order())
	assert.Equal(t, 0, g.Size())
}

func TestErdosRenyiComplete(t *testing.T) {
	n := 12
	g, err := ErdosRenyi(rng.New(1), testConfig(), n, 1)
	require.NoError(t, err)
	assert.Equal(t, n*(n-1)/2, g.Size())
	assertValidEndpoints(t, g)
	for _, e := range g.Edges {
		assert.NotEqual(t, e.Head, e.Tail, "pair loop must never emit a self-loop")
		assert.InDelta(t, g.Distance(e.Head, e.Tail), e.RestLength, 1e-12)
	}
}

func TestErdosRenyiInvalidProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1} {
		_, err := ErdosRenyi(rng.New(1), testConfig(), 10, p)
		assert.ErrorIs(t, err, ErrInvalidParameter, "edgeProb %v", p)
	}
	_, err := ErdosRenyi(rng.New(1), testConfig(), -1, 0.5)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestErdosRenyiReproducible(t *testing.T) {
	a, err := ErdosRenyi(rng.New(99), testConfig(), 40, 0.3)
	require.NoError(t, err)
	b, err := ErdosRenyi(rng.New(99), testConfig(), 40, 0.3)
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges)
	assert.Equal(t, a.Nodes, b.Nodes)
}

func TestBarabasiAlbertEdgeCount(t *testing.T) {
	n, m := 25, 4
	g, err := BarabasiAlbert(rng.New(5), testConfig(), n, m)
	require.NoError(t, err)
	assert.Equal(t, n, g.Order())
	// Complete seed on m nodes plus m attachments per later node.
	assert.Equal(t, m*(m-1)/2+(n-m)*m, g.Size())
	assertValidEndpoints(t, g)
}

func TestBarabasiAlbertAttachesToExisting(t *testing.T) {
	g, err := BarabasiAlbert(rng.New(8), testConfig(), 30, 3)
	require.NoError(t, err)
	for _, e := range g.Edges {
		// Attachment targets always predate the new node, so no self-loops.
		assert.Greater(t, e.Head, e.Tail)
	}
}

func TestBarabasiAlbertInvalid(t *testing.T) {
	_, err := BarabasiAlbert(rng.New(1), testConfig(), 5, 6)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = BarabasiAlbert(rng.New(1), testConfig(), 5, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBarabasiAlbertDegenerateSeed(t *testing.T) {
	// A one-node seed has no edges, so every degree weight is zero and the
	// first attachment draw must fail rather than loop or pick arbitrarily.
	_, err := BarabasiAlbert(rng.New(1), testConfig(), 5, 1)
	assert.ErrorIs(t, err, rng.ErrInvalidDistribution)
}

func TestWattsStrogatzInvalid(t *testing.T) {
	_, err := WattsStrogatz(rng.New(1), testConfig(), 10, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = WattsStrogatz(rng.New(1), testConfig(), 10, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = WattsStrogatz(rng.New(1), testConfig(), 10, 4, 1.5)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

// nearestNeighbors recomputes the expected neighbor set for node i from the
// generated positions.
func nearestNeighbors(g *graph.Graph, i, k int) []int {
	type ranked struct {
		dist float64
		node int
	}
	all := make([]ranked, 0, g.Order())
	for j := 0; j < g.Order(); j++ {
		if j == i {
			continue
		}
		all = append(all, ranked{dist: g.Distance(i, j), node: j})
	}
	sort.Slice(all, func(a, b int) bool {
		if all[a].dist != all[b].dist {
			return all[a].dist < all[b].dist
		}
		return all[a].node < all[b].node
	})
	out := make([]int, k)
	for j := 0; j < k; j++ {
		out[j] = all[j].node
	}
	sort.Ints(out)
	return out
}

func TestWattsStrogatzNoRewire(t *testing.T) {
	n, k := 20, 4
	g, err := WattsStrogatz(rng.New(21), testConfig(), n, k, 0)
	require.NoError(t, err)
	assert.Equal(t, n*k, g.Size())
	assertValidEndpoints(t, g)

	targets := make(map[int][]int)
	for _, e := range g.Edges {
		assert.NotEqual(t, e.Head, e.Tail, "no rewiring means no self-loops")
		targets[e.Head] = append(targets[e.Head], e.Tail)
	}
	for i := 0; i < n; i++ {
		got := append([]int(nil), targets[i]...)
		sort.Ints(got)
		assert.Equal(t, nearestNeighbors(g, i, k), got, "node %d", i)
	}
}

func TestWattsStrogatzFourNodeExample(t *testing.T) {
	a, err := WattsStrogatz(rng.New(4), testConfig(), 4, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, a.Size())
	for _, e := range a.Edges {
		got := nearestNeighbors(a, e.Head, 2)
		assert.Contains(t, got, e.Tail, "edge %v targets a non-nearest peer", e)
	}

	b, err := WattsStrogatz(rng.New(4), testConfig(), 4, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Edges, b.Edges, "same seed must reproduce the edge list")
}

func TestWattsStrogatzRewireSelfLoopQuirk(t *testing.T) {
	// Rewiring draws a uniform target that may be the node itself. Over many
	// seeds at full rewire probability a self-loop is effectively certain;
	// its absence would mean the quirk was silently guarded away.
	loops := 0
	for seed := uint64(0); seed < 50; seed++ {
		g, err := WattsStrogatz(rng.New(seed), testConfig(), 5, 3, 1)
		require.NoError(t, err)
		assertValidEndpoints(t, g)
		for _, e := range g.Edges {
			if e.Head == e.Tail {
				loops++
			}
		}
	}
	assert.Positive(t, loops, "rewiring never produced a self-loop across 50 seeds")
}

func TestWattsStrogatzRestLengthMatchesTarget(t *testing.T) {
	g, err := WattsStrogatz(rng.New(33), testConfig(), 15, 5, 0.5)
	require.NoError(t, err)
	for _, e := range g.Edges {
		// Rest length must be measured against the rewired target, not the
		// neighbor it replaced.
		assert.InDelta(t, g.Distance(e.Head, e.Tail), e.RestLength, 1e-12)
	}
}

func TestConfigValidation(t *testing.T) {
	bad := Config{RadiusMean: 10, RadiusStd: -1}
	_, err := ErdosRenyi(rng.New(1), bad, 5, 0.5)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	inverted := Config{RadiusMean: 10, RadiusStd: 1, WeightMin: 2, WeightMax: 1}
	_, err = WattsStrogatz(rng.New(1), inverted, 5, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
