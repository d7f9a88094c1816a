// Package cli implements the graphgen command-line interface.
//
// The commands generate shortest-path benchmark inputs: the standard batch of
// grid and dense graphs (generate), single graphs (grid, dense), and tools to
// look at existing files (inspect, dot). The CLI is built using cobra and
// logs through charmbracelet/log; loggers are passed through
// context.Context so library code never writes to the terminal directly.
//
// # Commands
//
//   - generate: Write every graph of a plan (the built-in one by default)
//   - grid: Write one grid graph
//   - dense: Write one dense random graph
//   - inspect: Validate an edge-list file and print its statistics
//   - dot: Convert an edge-list file to Graphviz DOT or SVG
//   - plan: Print the built-in plan as editable TOML
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and --log-file
// to also write a rotating log file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphgen/pkg/buildinfo"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completions.
const appName = "graphgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stderr  io.Writer
	logFile *lumberjack.Logger
	logPath string
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Graphgen writes weighted graph files for shortest-path benchmarks",
		Long: `Graphgen generates directed, positively weighted graphs as plain-text edge
lists, together with a source and destination vertex, for testing and timing
shortest-path programs.

Run 'graphgen generate' to write the standard batch of sparse grids
(esparso_1..4.txt) and dense random graphs (denso_1..4.txt).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			if c.logPath == "" {
				return nil
			}
			return c.attachLogFile(pipeline.LogConfig{
				File:    c.logPath,
				MaxSize: pipeline.DefaultLogMaxSize,
				MaxAge:  pipeline.DefaultLogMaxAge,
			})
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.Close()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.logPath, "log-file", "", "also write logs to this file (rotated)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.denseCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Close flushes and closes the log file, if one is attached.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	c.Logger.SetOutput(c.stderr)
	return err
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}
