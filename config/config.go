// Package config loads skein's tunables from a TOML file layered over
// defaults. Every knob the generators and the simulator consume lives here;
// a generation call only ever reads the loaded values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/skeinlab/skein/gen"
)

// Graph holds the generation tunables. The per-model values (edge
// probability, edges per node, neighbor count, rewire probability) are
// ranges: each model switch or re-roll draws a concrete value uniformly
// within its range.
type Graph struct {
	NumNodes        int     `toml:"num_nodes"`
	RadiusMean      float64 `toml:"radius_mean"`
	RadiusStd       float64 `toml:"radius_std"`
	EdgeProbMin     float64 `toml:"edge_prob_min"`
	EdgeProbMax     float64 `toml:"edge_prob_max"`
	NumEdgesMin     int     `toml:"num_edges_min"`
	NumEdgesMax     int     `toml:"num_edges_max"`
	NumNeighborsMin int     `toml:"num_neighbors_min"`
	NumNeighborsMax int     `toml:"num_neighbors_max"`
	RewireProbMin   float64 `toml:"rewire_prob_min"`
	RewireProbMax   float64 `toml:"rewire_prob_max"`
	EdgeWeightMin   float64 `toml:"edge_weight_min"`
	EdgeWeightMax   float64 `toml:"edge_weight_max"`
}

// Physics holds the layout simulator tunables.
type Physics struct {
	NoiseScale float64 `toml:"noise_scale"`
	TimeStep   float64 `toml:"time_step"`
}

// Server holds the HTTP API settings.
type Server struct {
	Port int `toml:"port"`
}

// Config is the root configuration document.
type Config struct {
	// Seed seeds the shared random engine. Zero means seed from the clock.
	Seed    uint64  `toml:"seed"`
	Graph   Graph   `toml:"graph"`
	Physics Physics `toml:"physics"`
	Server  Server  `toml:"server"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Graph: Graph{
			NumNodes:        100,
			RadiusMean:      100.0,
			RadiusStd:       10.0,
			EdgeProbMin:     0.05,
			EdgeProbMax:     0.2,
			NumEdgesMin:     1,
			NumEdgesMax:     10,
			NumNeighborsMin: 10,
			NumNeighborsMax: 20,
			RewireProbMin:   0.01,
			RewireProbMax:   0.1,
			EdgeWeightMin:   0.0,
			EdgeWeightMax:   0.1,
		},
		Physics: Physics{
			NoiseScale: 10.0,
			TimeStep:   0.1,
		},
		Server: Server{
			Port: 8080,
		},
	}
}

// Load reads path and overlays it onto the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every tunable range is ordered. The generators
// validate the concrete drawn values themselves; this catches an inverted
// range before anything is drawn from it.
func (c *Config) Validate() error {
	gr := c.Graph
	type bound struct {
		name     string
		min, max float64
	}
	for _, b := range []bound{
		{"edge probability", gr.EdgeProbMin, gr.EdgeProbMax},
		{"edges per node", float64(gr.NumEdgesMin), float64(gr.NumEdgesMax)},
		{"neighbor count", float64(gr.NumNeighborsMin), float64(gr.NumNeighborsMax)},
		{"rewire probability", gr.RewireProbMin, gr.RewireProbMax},
		{"edge weight", gr.EdgeWeightMin, gr.EdgeWeightMax},
	} {
		if b.min > b.max {
			return fmt.Errorf("%w: %s bounds [%v, %v] are inverted", gen.ErrInvalidParameter, b.name, b.min, b.max)
		}
	}
	return nil
}

// GenConfig flattens the graph section into the sampling settings the
// generators consume.
func (c *Config) GenConfig() gen.Config {
	return gen.Config{
		RadiusMean: c.Graph.RadiusMean,
		RadiusStd:  c.Graph.RadiusStd,
		WeightMin:  c.Graph.EdgeWeightMin,
		WeightMax:  c.Graph.EdgeWeightMax,
	}
}
