package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
	graphio "github.com/matzehuels/graphgen/pkg/io"
)

// inspectReport is the --json output of inspect.
type inspectReport struct {
	File        string      `json:"file"`
	Source      int         `json:"source"`
	Destination int         `json:"destination"`
	Density     float64     `json:"density"`
	Stats       graph.Stats `json:"stats"`
	Problems    []string    `json:"problems,omitempty"`
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Validate an edge-list file and print statistics",
		Long: `Read an edge-list file, check it, and print its statistics.

The file must hold a "V E" header, E "u v w" edge lines and a final
"source destination" line. Inspect reports vertex and edge counts, the
weight range, density, the largest out-degree, isolated vertices, and any
self-loops, duplicate edges or out-of-range vertices.

Exits with status 1 when the file cannot be parsed or has problems.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

// runInspect loads the file and prints its report.
func (c *CLI) runInspect(ctx context.Context, path string, asJSON bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := graphio.ImportEdgeList(path)
	if err != nil {
		return err
	}
	prog.done("Read " + path)

	rep := inspectReport{
		File:        path,
		Source:      in.Source,
		Destination: in.Destination,
		Stats:       in.Graph.ComputeStats(),
	}
	if limit := graph.MaxSimpleEdges(in.Graph.Vertices); limit > 0 {
		rep.Density = float64(rep.Stats.Edges) / float64(limit)
	}
	if err := in.Validate(); err != nil {
		rep.Problems = append(rep.Problems, err.Error())
	}
	if rep.Stats.SelfLoops > 0 {
		rep.Problems = append(rep.Problems, fmt.Sprintf("%d self-loops", rep.Stats.SelfLoops))
	}
	if rep.Stats.Duplicates > 0 {
		rep.Problems = append(rep.Problems, fmt.Sprintf("%d duplicate edges", rep.Stats.Duplicates))
	}
	if rep.Stats.Edges > 0 && rep.Stats.MinWeight < 1 {
		rep.Problems = append(rep.Problems, fmt.Sprintf("non-positive weight %d", rep.Stats.MinWeight))
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else {
		printInspectReport(rep)
	}

	if len(rep.Problems) > 0 {
		return errs.New(errs.ErrCodeInvalidFormat, "%s: %d problem(s) found", path, len(rep.Problems))
	}
	return nil
}

func printInspectReport(rep inspectReport) {
	s := rep.Stats
	printTitle(rep.File)
	printKeyValue("Vertices", formatCount(s.Vertices))
	printKeyValue("Edges", formatCount(s.Edges))
	printKeyValue("Query", fmt.Sprintf("%d → %d", rep.Source, rep.Destination))
	if s.Edges > 0 {
		printKeyValue("Weights", fmt.Sprintf("[%d, %d]", s.MinWeight, s.MaxWeight))
	}
	printKeyValue("Density", fmt.Sprintf("%.4f", rep.Density))
	printKeyValue("Max out-deg", formatCount(s.MaxOutDeg))
	printKeyValue("Isolated", formatCount(s.Isolated))
	printNewline()

	if len(rep.Problems) == 0 {
		printSuccess("No problems found")
		return
	}
	for _, p := range rep.Problems {
		printWarning("%s", p)
	}
}
