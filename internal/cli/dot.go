package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	graphio "github.com/matzehuels/graphgen/pkg/io"
)

// dotCommand creates the dot command for Graphviz export.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		output string
		opts   graphio.DOTOptions
	)

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Convert an edge-list file to Graphviz DOT or SVG",
		Long: `Convert an edge-list file to Graphviz for a quick look at small graphs.

The output format follows the extension of --output: ".svg" renders with the
embedded Graphviz, anything else writes DOT source. The source vertex is
drawn green and the destination red. Files with more edges than
--max-edges are refused.`,
		Example: `  graphgen grid 4 4 -o small.txt
  graphgen dot small.txt -o small.svg --weights`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDOT(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .dot or .svg (default: <input>.dot)")
	cmd.Flags().IntVar(&opts.MaxEdges, "max-edges", graphio.DefaultDOTMaxEdges, "refuse graphs with more edges")
	cmd.Flags().BoolVar(&opts.Weights, "weights", false, "label edges with their weights")

	return cmd
}

// runDOT loads the file, converts it, and writes DOT or SVG.
func (c *CLI) runDOT(ctx context.Context, input, output string, opts graphio.DOTOptions) error {
	in, err := graphio.ImportEdgeList(input)
	if err != nil {
		return err
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".dot"
	}
	if err := errs.ValidateOutputPath(output); err != nil {
		return err
	}

	dot, err := graphio.ToDOT(in, opts)
	if err != nil {
		return err
	}

	data := []byte(dot)
	if strings.EqualFold(filepath.Ext(output), ".svg") {
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		data, err = graphio.RenderSVG(ctx, dot)
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return err
		}
		spinner.Stop()
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", output)
	}

	printSuccess("Converted %s", input)
	printFile(output)
	printStats(in.Graph.Vertices, in.Graph.NumEdges(), int64(len(data)))
	return nil
}
