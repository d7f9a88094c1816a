package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/manifest"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// generateOptions holds the generate command's flags.
type generateOptions struct {
	planPath  string
	seed      int64
	seedSet   bool
	outputDir string
	manifest  bool
}

// generateCommand creates the generate command, which writes every graph of
// a plan.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the standard batch of test graphs",
		Long: `Write every graph of a plan as an edge-list file.

Without --plan the built-in batch is written to the current directory:

  esparso_1.txt .. esparso_4.txt   grids of 10x10, 50x50, 100x100 and 200x200
  denso_1.txt   .. denso_4.txt     random graphs with V=100/500/1000/1500
                                   and E=5000/125000/500000/1125000

Weights are drawn from [1, 20]; each file asks for a path from vertex 0 to
the last vertex. The whole plan is checked before anything is written. A
file that cannot be written is reported and the remaining files are still
produced; the command then exits with status 1.

Run 'graphgen plan' for an editable copy of the built-in plan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.seedSet = cmd.Flags().Changed("seed")
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.planPath, "plan", "p", "", "TOML plan file (default: built-in plan)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: plan seed, or time-based)")
	cmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "output directory (default: plan output_dir)")
	cmd.Flags().BoolVar(&opts.manifest, "manifest", false, "also write "+manifest.DefaultName+" describing the run")

	return cmd
}

// runGenerate loads the plan, runs it, and prints a per-file summary.
func (c *CLI) runGenerate(ctx context.Context, opts generateOptions) error {
	logger := loggerFromContext(ctx)

	plan := pipeline.DefaultPlan()
	if opts.planPath != "" {
		p, err := pipeline.LoadPlan(opts.planPath)
		if err != nil {
			return err
		}
		plan = p
	}
	if opts.seedSet {
		plan.Seed = opts.seed
	}
	if opts.outputDir != "" {
		plan.OutputDir = opts.outputDir
	}
	if c.logFile == nil {
		if err := c.attachLogFile(plan.Log); err != nil {
			return err
		}
	}

	printInfo("Generating %d graphs into %s", len(plan.Graphs), plan.OutputDir)
	started := time.Now()
	prog := newProgress(logger)
	runner := c.newRunner()
	runner.Logger = logger

	spinner := newSpinnerWithContext(ctx, "Validating plan...")
	spinner.Start()
	runner.OnStart = func(e pipeline.Entry) {
		spinner.Update(fmt.Sprintf("Generating %s (%s)...", e.Name, e.Describe()))
	}
	runner.OnResult = func(res pipeline.EntryResult) {
		msg := spinner.Message()
		spinner.Stop()
		printResult(res)
		spinner = newSpinnerWithContext(ctx, msg)
		spinner.Start()
	}

	report, err := runner.Run(ctx, plan)
	spinner.Stop()
	if err != nil {
		if report == nil {
			printError("Invalid plan")
		}
		return err
	}

	prog.done(fmt.Sprintf("Wrote %d of %d files", report.Succeeded(), len(report.Results)))
	printNewline()
	printKeyValue("Seed", fmt.Sprint(report.Seed))
	printKeyValue("Output", plan.OutputDir)
	printKeyValue("Total", formatBytes(report.TotalBytes()))

	if opts.manifest {
		path := filepath.Join(plan.OutputDir, manifest.DefaultName)
		if err := manifest.FromReport(report, started).WriteFile(path); err != nil {
			printWarning("Could not write manifest: %s", errs.UserMessage(err))
			logger.Error("manifest failed", "error", err)
		} else {
			printKeyValue("Manifest", path)
		}
	}

	if n := report.Failed(); n > 0 {
		return errs.New(errs.ErrCodeIO, "%d of %d files could not be written", n, len(report.Results))
	}

	printNewline()
	printNextStep("Check a file", appName+" inspect "+report.Results[0].Path)
	return nil
}

// printResult prints one line per plan entry.
func printResult(res pipeline.EntryResult) {
	if !res.OK() {
		printError("%s %s", res.Entry.Name, StyleDim.Render(errs.UserMessage(res.Err)))
		return
	}
	printSuccess("%s %s", res.Entry.Name, StyleDim.Render(res.Entry.Describe()))
	printStats(res.Vertices, res.Edges, res.Written.Bytes)
}
