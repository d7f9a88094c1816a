package cli

import (
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// planCommand creates the plan command, which prints the built-in plan.
func (c *CLI) planCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the built-in plan as TOML",
		Long: `Print the plan 'graphgen generate' uses by default, as TOML.

Edit the result and pass it back with 'graphgen generate --plan FILE' to
change sizes, seeds, weights or file names. Each [[graph]] table is one
output file with kind "grid" (rows, cols) or "dense" (vertices, edges).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return pipeline.DefaultPlan().Encode(cmd.OutOrStdout())
			}
			if err := errs.ValidateOutputPath(output); err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "create %s", output)
			}
			if err := pipeline.DefaultPlan().Encode(f); err != nil {
				f.Close()
				return errs.Wrap(errs.ErrCodeIO, err, "write %s", output)
			}
			if err := f.Close(); err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "close %s", output)
			}
			printSuccess("Wrote plan")
			printFile(output)
			printNextStep("Generate", appName+" generate --plan "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
