package pipeline

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/generate"
	"github.com/matzehuels/graphgen/pkg/graph"
	graphio "github.com/matzehuels/graphgen/pkg/io"
	"github.com/matzehuels/graphgen/pkg/observability"
)

// Runner executes plans. It holds no per-run state, so one Runner may serve
// several runs, though a single run is strictly sequential.
type Runner struct {
	Logger *log.Logger

	// OnStart and OnResult, if set, are called around each entry in plan
	// order.
	OnStart  func(Entry)
	OnResult func(EntryResult)
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run validates the plan and then generates and writes every entry in order.
//
// The returned error is non-nil only for fatal conditions: an invalid plan
// (nothing is written), a configuration error from a generator, or context
// cancellation. Per-file I/O failures are recorded in the report and the run
// continues with the next entry.
func (r *Runner) Run(ctx context.Context, p Plan) (*Report, error) {
	p.SetDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := &Report{Seed: p.ResolveSeed()}
	rng := rand.New(rand.NewSource(report.Seed))

	r.Logger.Info("starting run",
		"graphs", len(p.Graphs),
		"seed", report.Seed,
		"output_dir", p.OutputDir)

	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		// Every entry will fail to write and report it individually.
		r.Logger.Warn("cannot create output directory", "dir", p.OutputDir, "error", err)
	}

	for _, e := range p.Graphs {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
		if r.OnStart != nil {
			r.OnStart(e)
		}
		res := r.RunEntry(ctx, e, p.Weights, filepath.Join(p.OutputDir, e.Name), rng)
		report.Results = append(report.Results, res)
		if r.OnResult != nil {
			r.OnResult(res)
		}
		if res.Err != nil && errs.IsFatal(res.Err) {
			report.Duration = time.Since(start)
			return report, res.Err
		}
	}

	report.Duration = time.Since(start)
	r.Logger.Info("run finished",
		"written", report.Succeeded(),
		"failed", report.Failed(),
		"bytes", report.TotalBytes(),
		"duration", report.Duration)
	return report, nil
}

// RunEntry generates one entry and writes it to path. Failures are returned
// in the result rather than as an error so the caller can decide whether to
// continue.
func (r *Runner) RunEntry(ctx context.Context, e Entry, weights WeightRange, path string, rng *rand.Rand) EntryResult {
	start := time.Now()
	res := EntryResult{Entry: e, Path: path}

	in, err := r.Build(ctx, e, weights, rng)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		r.Logger.Error("generation failed", "graph", e.Name, "error", err)
		return res
	}
	res.Vertices = in.Graph.Vertices
	res.Edges = in.Graph.NumEdges()

	writeStart := time.Now()
	w, err := graphio.ExportEdgeList(in, path)
	observability.Write().OnWriteComplete(ctx, path, w.Bytes, time.Since(writeStart), err)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		r.Logger.Error("write failed", "file", path, "error", err)
		return res
	}
	res.Written = w

	r.Logger.Info("wrote graph",
		"file", path,
		"kind", e.Kind,
		"vertices", res.Vertices,
		"edges", res.Edges,
		"duration", res.Duration)
	return res
}

// Build generates the instance an entry describes, using weights unless the
// entry overrides them. It does not touch the filesystem.
func (r *Runner) Build(ctx context.Context, e Entry, weights WeightRange, rng *rand.Rand) (graph.Instance, error) {
	if err := e.Validate(); err != nil {
		return graph.Instance{}, err
	}
	wr := e.WeightsOr(weights)
	opts := []generate.Option{
		generate.WithRand(rng),
		generate.WithWeights(wr.Min, wr.Max),
	}

	observability.Generate().OnGenerateStart(ctx, e.Kind, e.Name)
	start := time.Now()

	var g *graph.Graph
	var err error
	switch e.Kind {
	case graph.KindGrid:
		g, err = generate.Grid(e.Rows, e.Cols, opts...)
	case graph.KindDense:
		s, _ := e.strategy() // checked by Validate
		g, err = generate.Dense(e.Vertices, e.Edges, append(opts, generate.WithStrategy(s))...)
	}

	edges := 0
	if g != nil {
		edges = g.NumEdges()
	}
	observability.Generate().OnGenerateComplete(ctx, e.Kind, e.Name, edges, time.Since(start), err)
	if err != nil {
		return graph.Instance{}, err
	}

	r.Logger.Debug("generated graph",
		"graph", e.Name,
		"kind", e.Kind,
		"vertices", g.Vertices,
		"edges", edges,
		"duration", time.Since(start))

	in := graph.NewInstance(g)
	in.Source, in.Destination = e.Query()
	return in, nil
}
