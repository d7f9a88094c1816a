package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// gridCommand creates the grid command for a single sparse grid graph.
func (c *CLI) gridCommand() *cobra.Command {
	var opts singleOptions

	cmd := &cobra.Command{
		Use:   "grid ROWS COLS",
		Short: "Write one grid graph",
		Long: `Write a ROWS x COLS grid graph as an edge-list file.

Vertex r*COLS+c is connected in both directions to each of its up to four
orthogonal neighbours, every direction with its own random weight. The query
runs from vertex 0 (top-left) to the last vertex (bottom-right) unless
--source or --destination say otherwise.`,
		Example: `  graphgen grid 10 10 -o esparso_1.txt
  graphgen grid 3 4 --seed 42 --max-weight 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parseCount("ROWS", args[0])
			if err != nil {
				return err
			}
			cols, err := parseCount("COLS", args[1])
			if err != nil {
				return err
			}
			opts.output = defaultOutput(opts.output, fmt.Sprintf("grid_%dx%d.txt", rows, cols))
			e := pipeline.GridEntry(opts.output, rows, cols)
			opts.applyQuery(cmd, &e)
			return c.runSingle(cmd.Context(), e, opts)
		},
	}

	addSingleFlags(cmd, &opts)
	return cmd
}
