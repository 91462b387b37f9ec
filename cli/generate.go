package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skeinlab/skein/engine"
	"github.com/skeinlab/skein/render"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var (
		model  string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one graph and write it out",
		Long:  "Generate a single graph under the chosen model, with tunables drawn\nwithin the configured bounds, and write it as JSON or SVG.",
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

			g := eng.CurrentModel()
			var out []byte
			switch format {
			case "json":
				if out, err = render.JSON(g); err != nil {
					return err
				}
			case "svg":
				opts := render.DefaultOptions()
				opts.WeightMax = cfg.Graph.EdgeWeightMax
				out = render.SVG(g, opts)
			default:
				return fmt.Errorf("unknown format %q (want json or svg)", format)
			}
			return writeOutput(cmd, output, out)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "watts_strogatz", "graph model: erdos_renyi, barabasi_albert or watts_strogatz")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")
	return cmd
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
