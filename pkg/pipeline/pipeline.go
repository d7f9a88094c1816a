// Package pipeline runs batches of graph generation for graphgen.
//
// This package implements the generate → write loop that turns a [Plan]
// into edge-list files. The CLI's generate command is a thin layer over it,
// so the same rules apply whether a plan comes from the built-in defaults or
// from a TOML file.
//
// # Architecture
//
// A plan is a list of entries, one per output file:
//
//  1. Validate: every entry is checked before anything is written; an
//     impossible entry aborts the run with a configuration error
//  2. Generate: the entry's grid or dense generator runs with the run's
//     random source
//  3. Write: the instance is exported to OutputDir/Name
//
// Write failures are local: the entry is marked failed in the [Report] and
// the run moves on. Configuration errors are fatal and stop the run.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	report, err := runner.Run(ctx, pipeline.DefaultPlan())
//	if err != nil {
//	    log.Fatal(err) // configuration error or cancellation
//	}
//	if report.Failed() > 0 {
//	    // some files could not be written
//	}
//
// Load a plan from TOML:
//
//	p, err := pipeline.LoadPlan("graphs.toml")
package pipeline

import (
	"time"

	"github.com/matzehuels/graphgen/pkg/generate"
	graphio "github.com/matzehuels/graphgen/pkg/io"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Plans
// =============================================================================

const (
	// DefaultMinWeight and DefaultMaxWeight bound edge weights.
	DefaultMinWeight = generate.DefaultMinWeight
	DefaultMaxWeight = generate.DefaultMaxWeight

	// DefaultOutputDir is where plan files are written.
	DefaultOutputDir = "."

	// DefaultLogMaxSize is the rotation size of the log file in megabytes.
	DefaultLogMaxSize = 10

	// DefaultLogMaxAge is how many days rotated log files are kept.
	DefaultLogMaxAge = 7
)

// =============================================================================
// Result Types
// =============================================================================

// EntryResult records what happened to one plan entry.
type EntryResult struct {
	Entry    Entry
	Path     string
	Vertices int
	Edges    int
	Written  graphio.Written
	Duration time.Duration
	Err      error // non-nil when the file could not be produced
}

// OK reports whether the entry's file was written.
func (r EntryResult) OK() bool { return r.Err == nil }

// Report collects the results of a run in plan order.
type Report struct {
	Seed     int64
	Results  []EntryResult
	Duration time.Duration
}

// Failed returns the number of entries whose file was not written.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Succeeded returns the number of files written.
func (r *Report) Succeeded() int {
	return len(r.Results) - r.Failed()
}

// TotalBytes sums the size of all written files.
func (r *Report) TotalBytes() int64 {
	var n int64
	for _, res := range r.Results {
		n += res.Written.Bytes
	}
	return n
}
