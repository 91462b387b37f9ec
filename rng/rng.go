// Package rng provides the single seeded random engine shared by graph
// generation and simulation. One Source is constructed at process start and
// reused for every draw; regenerating a model never resets the sequence.
package rng

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ErrInvalidDistribution is returned by Weighted when no weight is positive.
var ErrInvalidDistribution = errors.New("rng: weighted draw requires at least one positive weight")

// Source is a seeded pseudo-random engine. It is not safe for concurrent use;
// callers sequence access the same way they sequence access to the graph.
type Source struct {
	src rand.Source
	r   *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	src := rand.NewSource(seed)
	return &Source{src: src, r: rand.New(src)}
}

// Uniform draws a real number uniformly from [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: s.src}.Rand()
}

// UniformInt draws an integer uniformly from [lo, hi], inclusive on both ends.
func (s *Source) UniformInt(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// Normal draws from a normal distribution with the given mean and standard
// deviation.
func (s *Source) Normal(mean, std float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: std, Src: s.src}.Rand()
}

// Bernoulli draws true with probability p.
func (s *Source) Bernoulli(p float64) bool {
	return distuv.Bernoulli{P: p, Src: s.src}.Rand() == 1
}

// Weighted draws an index in [0, len(weights)) with probability proportional
// to each weight. Zero weights are never selected. Returns
// ErrInvalidDistribution when the weights contain no positive entry or any
// negative entry.
func (s *Source) Weighted(weights []float64) (int, error) {
	positive := false
	for _, w := range weights {
		if w < 0 {
			return 0, ErrInvalidDistribution
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return 0, ErrInvalidDistribution
	}
	idx, ok := sampleuv.NewWeighted(weights, s.src).Take()
	if !ok {
		return 0, ErrInvalidDistribution
	}
	return idx, nil
}
