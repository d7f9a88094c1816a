package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/generate"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// =============================================================================
// Plan - TOML Configuration
// =============================================================================

// Plan describes a batch of graphs to generate.
//
// A zero Seed means "pick one from the clock"; the seed actually used is
// reported in the run's [Report] so the batch can be reproduced.
type Plan struct {
	Seed      int64       `toml:"seed"`
	OutputDir string      `toml:"output_dir"`
	Weights   WeightRange `toml:"weights"`
	Log       LogConfig   `toml:"log"`
	Graphs    []Entry     `toml:"graph"`
}

// WeightRange is an inclusive range of edge weights.
type WeightRange struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// LogConfig configures the optional rotating log file.
type LogConfig struct {
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"` // megabytes
	MaxAge     int    `toml:"max_age"`  // days
	MaxBackups int    `toml:"max_backups,omitempty"`
}

// Entry is one output file of a plan.
type Entry struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"`

	// Grid dimensions (kind = "grid").
	Rows int `toml:"rows,omitempty"`
	Cols int `toml:"cols,omitempty"`

	// Dense size (kind = "dense").
	Vertices int    `toml:"vertices,omitempty"`
	Edges    int    `toml:"edges,omitempty"`
	Strategy string `toml:"strategy,omitempty"`

	// Optional overrides. Source defaults to 0, Destination to V-1.
	Source      *int         `toml:"source,omitempty"`
	Destination *int         `toml:"destination,omitempty"`
	Weights     *WeightRange `toml:"weights,omitempty"`
}

// =============================================================================
// Default Plan
// =============================================================================

// DefaultPlan returns the standard test batch: four sparse grids
// (esparso_1..4) and four dense random graphs (denso_1..4), weights in
// [1, 20], each queried from vertex 0 to vertex V-1.
func DefaultPlan() Plan {
	return Plan{
		OutputDir: DefaultOutputDir,
		Weights:   WeightRange{Min: DefaultMinWeight, Max: DefaultMaxWeight},
		Log:       LogConfig{MaxSize: DefaultLogMaxSize, MaxAge: DefaultLogMaxAge},
		Graphs: []Entry{
			GridEntry("esparso_1.txt", 10, 10),
			GridEntry("esparso_2.txt", 50, 50),
			GridEntry("esparso_3.txt", 100, 100),
			GridEntry("esparso_4.txt", 200, 200),
			DenseEntry("denso_1.txt", 100, 5_000),
			DenseEntry("denso_2.txt", 500, 125_000),
			DenseEntry("denso_3.txt", 1_000, 500_000),
			DenseEntry("denso_4.txt", 1_500, 1_125_000),
		},
	}
}

// GridEntry returns a grid entry with default query and weights.
func GridEntry(name string, rows, cols int) Entry {
	return Entry{Name: name, Kind: graph.KindGrid, Rows: rows, Cols: cols}
}

// DenseEntry returns a dense entry with default query, weights and strategy.
func DenseEntry(name string, vertices, edges int) Entry {
	return Entry{Name: name, Kind: graph.KindDense, Vertices: vertices, Edges: edges}
}

// =============================================================================
// Loading and Encoding
// =============================================================================

// LoadPlan reads a TOML plan file and applies defaults.
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Plan{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "read plan %s", path)
		}
		return Plan{}, errs.Wrap(errs.ErrCodeIO, err, "read plan %s", path)
	}
	p, err := ParsePlan(data)
	if err != nil {
		return Plan{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParsePlan decodes a TOML plan and applies defaults.
func ParsePlan(data []byte) (Plan, error) {
	var p Plan
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return Plan{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode plan")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Plan{}, errs.New(errs.ErrCodeInvalidFormat, "unknown plan keys: %s", strings.Join(keys, ", "))
	}
	p.SetDefaults()
	return p, nil
}

// Encode writes the plan as TOML.
func (p Plan) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}

// =============================================================================
// Defaults and Validation
// =============================================================================

// SetDefaults fills unset fields. It is idempotent.
func (p *Plan) SetDefaults() {
	if p.OutputDir == "" {
		p.OutputDir = DefaultOutputDir
	}
	if p.Weights == (WeightRange{}) {
		p.Weights = WeightRange{Min: DefaultMinWeight, Max: DefaultMaxWeight}
	}
	if p.Log.MaxSize == 0 {
		p.Log.MaxSize = DefaultLogMaxSize
	}
	if p.Log.MaxAge == 0 {
		p.Log.MaxAge = DefaultLogMaxAge
	}
}

// ResolveSeed returns the plan seed, or a clock-derived one when unset.
func (p Plan) ResolveSeed() int64 {
	if p.Seed != 0 {
		return p.Seed
	}
	return time.Now().UnixNano()
}

// Validate checks every entry. All problems are configuration errors: a plan
// that fails here would fail partway through a run.
func (p Plan) Validate() error {
	if len(p.Graphs) == 0 {
		return errs.New(errs.ErrCodeConfiguration, "plan has no graphs")
	}
	if err := errs.ValidateWeightRange(p.Weights.Min, p.Weights.Max); err != nil {
		return errs.Wrap(errs.ErrCodeConfiguration, err, "plan weights")
	}

	seen := make(map[string]int, len(p.Graphs))
	for i, e := range p.Graphs {
		if err := errs.ValidateFileName(e.Name); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "graph %d", i+1)
		}
		if j, dup := seen[e.Name]; dup {
			return errs.New(errs.ErrCodeConfiguration, "graph %d: name %q already used by graph %d", i+1, e.Name, j+1)
		}
		seen[e.Name] = i
		if err := e.Validate(); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "graph %d (%s)", i+1, e.Name)
		}
	}
	return nil
}

// Validate checks a single entry's parameters.
func (e Entry) Validate() error {
	switch e.Kind {
	case graph.KindGrid:
		if e.Rows < 0 || e.Cols < 0 {
			return errs.New(errs.ErrCodeConfiguration, "grid %dx%d has a negative dimension", e.Rows, e.Cols)
		}
	case graph.KindDense:
		if e.Vertices < 0 || e.Edges < 0 {
			return errs.New(errs.ErrCodeConfiguration, "dense V=%d E=%d has a negative size", e.Vertices, e.Edges)
		}
		if limit := graph.MaxSimpleEdges(e.Vertices); int64(e.Edges) > limit {
			return errs.New(errs.ErrCodeConfiguration, "%d edges exceed the maximum %d for %d vertices", e.Edges, limit, e.Vertices)
		}
		if _, err := e.strategy(); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "dense strategy")
		}
	default:
		return errs.New(errs.ErrCodeConfiguration, "unknown kind %q (want %s)", e.Kind, strings.Join(graph.Kinds, " or "))
	}

	if e.Weights != nil {
		if err := errs.ValidateWeightRange(e.Weights.Min, e.Weights.Max); err != nil {
			return err
		}
	}

	v := e.VertexCount()
	if v == 0 {
		return nil
	}
	src, dst := e.Query()
	if src < 0 || src >= v {
		return errs.New(errs.ErrCodeConfiguration, "source %d out of range [0, %d)", src, v)
	}
	if dst < 0 || dst >= v {
		return errs.New(errs.ErrCodeConfiguration, "destination %d out of range [0, %d)", dst, v)
	}
	return nil
}

// =============================================================================
// Entry Helpers
// =============================================================================

// VertexCount returns the number of vertices the entry generates.
func (e Entry) VertexCount() int {
	if e.Kind == graph.KindGrid {
		return e.Rows * e.Cols
	}
	return e.Vertices
}

// EdgeCount returns the number of edges the entry generates.
func (e Entry) EdgeCount() int {
	if e.Kind == graph.KindGrid {
		return generate.GridEdgeCount(e.Rows, e.Cols)
	}
	return e.Edges
}

// Query returns the source and destination, defaulting to 0 and V-1.
func (e Entry) Query() (source, destination int) {
	source, destination = 0, e.VertexCount()-1
	if e.Source != nil {
		source = *e.Source
	}
	if e.Destination != nil {
		destination = *e.Destination
	}
	return source, destination
}

// WeightsOr returns the entry's weight override or the plan default.
func (e Entry) WeightsOr(def WeightRange) WeightRange {
	if e.Weights != nil {
		return *e.Weights
	}
	return def
}

// Describe returns a short human-readable size, e.g. "grid 10x10" or
// "dense V=100 E=5000".
func (e Entry) Describe() string {
	if e.Kind == graph.KindGrid {
		return fmt.Sprintf("grid %dx%d", e.Rows, e.Cols)
	}
	return fmt.Sprintf("dense V=%d E=%d", e.Vertices, e.Edges)
}

func (e Entry) strategy() (generate.Strategy, error) {
	if e.Strategy == "" {
		return generate.StrategyAuto, nil
	}
	return generate.ParseStrategy(e.Strategy)
}
