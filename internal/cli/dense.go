package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/generate"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// denseCommand creates the dense command for a single random graph.
func (c *CLI) denseCommand() *cobra.Command {
	var (
		opts     singleOptions
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "dense VERTICES EDGES",
		Short: "Write one dense random graph",
		Long: `Write a random graph with exactly EDGES distinct directed edges over
VERTICES vertices, without self-loops.

EDGES may be at most VERTICES*(VERTICES-1). Sampling uses rejection for
sparse requests and a partial shuffle of all vertex pairs for dense ones;
--strategy forces either.`,
		Example: `  graphgen dense 100 5000 -o denso_1.txt
  graphgen dense 1000 500000 --seed 7 --strategy shuffle`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertices, err := parseCount("VERTICES", args[0])
			if err != nil {
				return err
			}
			edges, err := parseCount("EDGES", args[1])
			if err != nil {
				return err
			}
			opts.output = defaultOutput(opts.output, fmt.Sprintf("dense_%d_%d.txt", vertices, edges))
			e := pipeline.DenseEntry(opts.output, vertices, edges)
			e.Strategy = strategy
			opts.applyQuery(cmd, &e)
			return c.runSingle(cmd.Context(), e, opts)
		},
	}

	addSingleFlags(cmd, &opts)
	cmd.Flags().StringVar(&strategy, "strategy", generate.StrategyAuto.String(), "sampling strategy: auto, rejection, shuffle")
	return cmd
}
