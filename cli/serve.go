package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skeinlab/skein/engine"
	"github.com/skeinlab/skein/render"
	"github.com/skeinlab/skein/server"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph API over HTTP",
		Long:  "Start the HTTP API: snapshot reads, model switching, re-rolls,\nsimulation stepping and Prometheus metrics.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := flags.load()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}

			eng := engine.New(cfg, logger)
			// Same starting model as a fresh session of the original app.
			if err := eng.SelectModel(engine.WattsStrogatz); err != nil {
				return err
			}

			svg := render.DefaultOptions()
			svg.WeightMax = cfg.Graph.EdgeWeightMax

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(eng, logger, svg).ListenAndServe(ctx, cfg.Server.Port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (0 uses the configured value)")
	return cmd
}
