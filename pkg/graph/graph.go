package graph

import (
	"fmt"
)

// =============================================================================
// Graph Construction
// =============================================================================

// New creates an empty graph over n vertices with room for edgeHint edges.
func New(n, edgeHint int) *Graph {
	if edgeHint < 0 {
		edgeHint = 0
	}
	return &Graph{Vertices: n, Edges: make([]Edge, 0, edgeHint)}
}

// AddEdge appends a directed edge. It does not check for duplicates;
// generators that need uniqueness track it themselves.
func (g *Graph) AddEdge(from, to, weight int) {
	g.Edges = append(g.Edges, Edge{From: from, To: to, Weight: weight})
}

// NumEdges returns the number of edges in the list.
func (g *Graph) NumEdges() int { return len(g.Edges) }

// MaxSimpleEdges returns V×(V−1), the number of distinct ordered pairs of
// distinct vertices. The product is computed in int64 so that large vertex
// counts cannot overflow on 32-bit platforms.
func MaxSimpleEdges(vertices int) int64 {
	if vertices < 2 {
		return 0
	}
	v := int64(vertices)
	return v * (v - 1)
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks that every edge endpoint lies in [0, Vertices).
func (g *Graph) Validate() error {
	if g.Vertices < 0 {
		return fmt.Errorf("negative vertex count %d", g.Vertices)
	}
	for i, e := range g.Edges {
		if e.From < 0 || e.From >= g.Vertices || e.To < 0 || e.To >= g.Vertices {
			return fmt.Errorf("edge %d (%d->%d) out of range [0, %d)", i, e.From, e.To, g.Vertices)
		}
	}
	return nil
}

// Validate checks the graph and that source and destination are vertices.
// An empty graph is accepted with any query, since there is nothing to route.
func (in Instance) Validate() error {
	if in.Graph == nil {
		return fmt.Errorf("instance has no graph")
	}
	if err := in.Graph.Validate(); err != nil {
		return err
	}
	if in.Graph.Vertices == 0 {
		return nil
	}
	if in.Source < 0 || in.Source >= in.Graph.Vertices {
		return fmt.Errorf("source %d out of range [0, %d)", in.Source, in.Graph.Vertices)
	}
	if in.Destination < 0 || in.Destination >= in.Graph.Vertices {
		return fmt.Errorf("destination %d out of range [0, %d)", in.Destination, in.Graph.Vertices)
	}
	return nil
}

// =============================================================================
// Statistics
// =============================================================================

// ComputeStats walks the edge list once and summarizes it.
// Endpoints outside [0, Vertices) are counted for loops and duplicates but
// ignored for degree bookkeeping. Weight bounds are zero for an empty list.
func (g *Graph) ComputeStats() Stats {
	s := Stats{Vertices: g.Vertices, Edges: len(g.Edges)}
	if len(g.Edges) == 0 {
		s.Isolated = max(g.Vertices, 0)
		return s
	}

	s.MinWeight, s.MaxWeight = g.Edges[0].Weight, g.Edges[0].Weight
	seen := make(map[[2]int]struct{}, len(g.Edges))
	var outDeg []int
	var touched []bool
	if g.Vertices > 0 {
		outDeg = make([]int, g.Vertices)
		touched = make([]bool, g.Vertices)
	}

	for _, e := range g.Edges {
		s.MinWeight = min(s.MinWeight, e.Weight)
		s.MaxWeight = max(s.MaxWeight, e.Weight)
		if e.IsLoop() {
			s.SelfLoops++
		}
		if _, dup := seen[e.Pair()]; dup {
			s.Duplicates++
		} else {
			seen[e.Pair()] = struct{}{}
		}
		if e.From >= 0 && e.From < g.Vertices {
			outDeg[e.From]++
			s.MaxOutDeg = max(s.MaxOutDeg, outDeg[e.From])
			touched[e.From] = true
		}
		if e.To >= 0 && e.To < g.Vertices {
			touched[e.To] = true
		}
	}

	for _, t := range touched {
		if !t {
			s.Isolated++
		}
	}
	return s
}
