// Package cli implements the skein command line interface: one-shot graph
// generation, offline relaxation runs, and the HTTP API server. Commands are
// built with cobra and log through charmbracelet/log.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/skeinlab/skein/config"
)

type rootFlags struct {
	configPath string
	verbose    bool
	seed       uint64
	numNodes   int
}

// Execute runs the CLI and returns the first command error.
func Execute() error {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "skein",
		Short:         "Random graph models with spring-relaxed 3D layout",
		Long:          "skein generates Erdős–Rényi, Barabási–Albert and Watts–Strogatz graphs\nover nodes embedded in 3D space and relaxes them with a spring-force layout.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to TOML config file")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "random seed (0 seeds from the clock)")
	root.PersistentFlags().IntVarP(&flags.numNodes, "nodes", "n", 0, "override configured node count")

	root.AddCommand(newGenerateCmd(flags))
	root.AddCommand(newSimulateCmd(flags))
	root.AddCommand(newServeCmd(flags))

	return root.Execute()
}

// load resolves the configuration and logger shared by all commands.
func (f *rootFlags) load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.numNodes > 0 {
		cfg.Graph.NumNodes = f.numNodes
	}

	level := log.InfoLevel
	if f.verbose {
		level = log.DebugLevel
	}
	return cfg, newLogger(level), nil
}
