package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// singleOptions holds the flags shared by the grid and dense commands.
type singleOptions struct {
	output      string
	seed        int64
	minWeight   int
	maxWeight   int
	source      int
	destination int
}

// addSingleFlags registers the shared flags on cmd.
func addSingleFlags(cmd *cobra.Command, opts *singleOptions) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: time-based)")
	cmd.Flags().IntVar(&opts.minWeight, "min-weight", pipeline.DefaultMinWeight, "smallest edge weight")
	cmd.Flags().IntVar(&opts.maxWeight, "max-weight", pipeline.DefaultMaxWeight, "largest edge weight")
	cmd.Flags().IntVar(&opts.source, "source", 0, "source vertex")
	cmd.Flags().IntVar(&opts.destination, "destination", -1, "destination vertex (default: last vertex)")
}

// applyQuery copies explicitly set query flags onto e.
func (o singleOptions) applyQuery(cmd *cobra.Command, e *pipeline.Entry) {
	if cmd.Flags().Changed("source") {
		src := o.source
		e.Source = &src
	}
	if cmd.Flags().Changed("destination") {
		dst := o.destination
		e.Destination = &dst
	}
}

// runSingle generates one entry and writes it to opts.output.
func (c *CLI) runSingle(ctx context.Context, e pipeline.Entry, opts singleOptions) error {
	logger := loggerFromContext(ctx)

	if err := errs.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	weights := pipeline.WeightRange{Min: opts.minWeight, Max: opts.maxWeight}
	if err := errs.ValidateWeightRange(weights.Min, weights.Max); err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seeding generator", "seed", seed)

	runner := c.newRunner()
	runner.Logger = logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s...", e.Describe()))
	spinner.Start()
	res := runner.RunEntry(ctx, e, weights, opts.output, rand.New(rand.NewSource(seed)))
	if !res.OK() {
		spinner.StopWithError("Generation failed")
		return res.Err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Wrote %s", e.Describe())
	printFile(res.Path)
	printStats(res.Vertices, res.Edges, res.Written.Bytes)
	printDetail("seed %d", seed)
	printNewline()
	printNextStep("Inspect", appName+" inspect "+res.Path)
	return nil
}

// parseCount parses a non-negative integer argument.
func parseCount(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, errs.New(errs.ErrCodeInvalidInput, "%s must be a non-negative integer, got %q", name, arg)
	}
	return n, nil
}

// defaultOutput names the file after the entry when -o is not given.
func defaultOutput(output, name string) string {
	if output != "" {
		return output
	}
	return name
}
