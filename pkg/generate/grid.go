package generate

import (
	"github.com/matzehuels/graphgen/pkg/graph"
)

// gridStep is one of the four neighbor offsets, in emission order.
type gridStep struct{ dr, dc int }

// gridSteps lists the neighbor probes per cell: right, down, left, up.
var gridSteps = [4]gridStep{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid builds a rows×cols 4-neighborhood grid graph.
//
// Cells are visited in row-major order and vertex (r, c) has index
// r*cols + c. From each cell an edge is emitted toward the right, down, left
// and up neighbor, in that order, whenever the neighbor is inside the grid.
// Every emitted edge draws its own weight, so the two directions of one
// adjacency usually differ.
//
// A grid with rows or cols equal to zero is the degenerate empty graph.
// Negative sizes and invalid weight ranges are configuration errors.
//
// Complexity: O(rows*cols) time and space.
func Grid(rows, cols int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if rows < 0 || cols < 0 {
		return nil, configErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ 0)", rows, cols)
	}
	if err := checkWeights(methodGrid, cfg, GridEdgeCount(rows, cols) > 0); err != nil {
		return nil, err
	}

	g := graph.New(rows*cols, GridEdgeCount(rows, cols))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			for _, s := range gridSteps {
				nr, nc := r+s.dr, c+s.dc
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				g.AddEdge(u, nr*cols+nc, cfg.weight())
			}
		}
	}
	return g, nil
}

// GridEdgeCount returns the number of edges Grid emits for rows×cols:
// two directed edges per horizontal and per vertical adjacency.
func GridEdgeCount(rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	return 2 * (rows*(cols-1) + cols*(rows-1))
}
