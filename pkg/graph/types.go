package graph

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Graph kinds produced by the generators.
const (
	KindGrid  = "grid"
	KindDense = "dense"
)

// Kinds lists every supported graph kind in display order.
var Kinds = []string{KindGrid, KindDense}

// =============================================================================
// Edge - Weighted Directed Edge
// =============================================================================

// Edge is a directed edge between two zero-based vertex indices.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// IsLoop reports whether the edge starts and ends at the same vertex.
func (e Edge) IsLoop() bool { return e.From == e.To }

// Pair returns the ordered (From, To) endpoints, used as a uniqueness key.
func (e Edge) Pair() [2]int { return [2]int{e.From, e.To} }

// =============================================================================
// Graph - Flat Edge List
// =============================================================================

// Graph is a vertex count plus a flat edge list.
// Vertices are the integers [0, Vertices). No adjacency structure is kept:
// the edge list order is the generation order and is preserved on export.
type Graph struct {
	Vertices int    `json:"vertices"`
	Edges    []Edge `json:"edges"`
}

// =============================================================================
// Instance - Graph plus Query
// =============================================================================

// Instance is the content of one generated file: a graph together with the
// source and destination vertex a shortest-path program should connect.
type Instance struct {
	Graph       *Graph `json:"graph"`
	Source      int    `json:"source"`
	Destination int    `json:"destination"`
}

// NewInstance pairs g with the conventional query from vertex 0 to the last
// vertex. For an empty graph the destination is -1.
func NewInstance(g *Graph) Instance {
	return Instance{Graph: g, Source: 0, Destination: g.Vertices - 1}
}

// =============================================================================
// Stats - Summary Numbers
// =============================================================================

// Stats summarizes a graph for display and validation.
type Stats struct {
	Vertices  int `json:"vertices"`
	Edges     int `json:"edges"`
	MinWeight int `json:"min_weight"`
	MaxWeight int `json:"max_weight"`
	SelfLoops int `json:"self_loops"`
	MaxOutDeg int `json:"max_out_degree"`

	// Duplicates counts edges repeating an earlier (From, To) pair.
	Duplicates int `json:"duplicates"`

	// Isolated counts vertices with no incident edge.
	Isolated int `json:"isolated"`
}
