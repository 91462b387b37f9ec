package cli

import (
	"github.com/spf13/cobra"

	"github.com/skeinlab/skein/engine"
	"github.com/skeinlab/skein/render"
)

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var (
		model  string
		steps  int
		dt     float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate a graph, relax it, and write the final positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := flags.load()
			if err != nil {
				return err
			}
			kind, err := engine.ParseKind(model)
			if err != nil {
				return err
			}

			eng := engine.New(cfg, logger)
			if err := eng.SelectModel(kind); err != nil {
				return err
			}

			for i := 0; i < steps; i++ {
				eng.Step(dt)
			}
			logger.Info("relaxation finished", "steps", steps)

			out, err := render.JSON(eng.CurrentModel())
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "watts_strogatz", "graph model: erdos_renyi, barabasi_albert or watts_strogatz")
	cmd.Flags().IntVar(&steps, "steps", 100, "number of simulation steps")
	cmd.Flags().Float64Var(&dt, "dt", 0, "time step (0 uses the configured value)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")
	return cmd
}
