package generate

import (
	"math"

	"github.com/matzehuels/graphgen/pkg/graph"
)

// Dense builds a directed graph over vertices nodes with exactly edges
// distinct edges and no self-loops.
//
// The request is rejected when edges exceeds V×(V−1), the number of ordered
// pairs of distinct vertices. Edges appear in the order they were accepted;
// each accepted edge draws its own weight.
//
// See the package documentation for the strategies. With StrategyRejection
// the expected number of draws grows without bound as the density approaches
// one; StrategyShuffle always takes O(V²) time and memory.
func Dense(vertices, edges int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if vertices < 0 || edges < 0 {
		return nil, configErrorf(methodDense, "vertices=%d, edges=%d (each must be ≥ 0)", vertices, edges)
	}
	limit := graph.MaxSimpleEdges(vertices)
	if int64(edges) > limit {
		return nil, configErrorf(methodDense, "%d edges exceed the maximum %d for %d vertices", edges, limit, vertices)
	}
	if err := checkWeights(methodDense, cfg, edges > 0); err != nil {
		return nil, err
	}
	if edges > 0 && cfg.rng == nil {
		return nil, configErrorf(methodDense, "random source is required")
	}

	g := graph.New(vertices, edges)
	if edges == 0 {
		return g, nil
	}

	switch pickStrategy(cfg, edges, limit) {
	case StrategyShuffle:
		denseShuffle(g, edges, limit, &cfg)
	default:
		denseRejection(g, edges, &cfg)
	}
	return g, nil
}

// pickStrategy resolves StrategyAuto by density. Shuffling needs an index
// slice of length V×(V−1), so it is only chosen when that fits in an int.
func pickStrategy(cfg config, edges int, limit int64) Strategy {
	fits := limit <= math.MaxInt
	switch cfg.strategy {
	case StrategyShuffle:
		if fits {
			return StrategyShuffle
		}
		return StrategyRejection
	case StrategyRejection:
		return StrategyRejection
	}
	if fits && float64(edges) > cfg.threshold*float64(limit) {
		return StrategyShuffle
	}
	return StrategyRejection
}

// denseRejection draws ordered pairs uniformly and keeps the first occurrence
// of every non-loop pair until edges pairs are kept.
func denseRejection(g *graph.Graph, edges int, cfg *config) {
	n := g.Vertices
	chosen := make(map[int64]struct{}, edges)
	for len(g.Edges) < edges {
		u := cfg.rng.Intn(n)
		v := cfg.rng.Intn(n)
		if u == v {
			continue
		}
		key := int64(u)*int64(n) + int64(v)
		if _, dup := chosen[key]; dup {
			continue
		}
		chosen[key] = struct{}{}
		g.AddEdge(u, v, cfg.weight())
	}
}

// denseShuffle enumerates all ordered non-loop pairs by index and runs a
// partial Fisher–Yates shuffle over the first edges positions.
func denseShuffle(g *graph.Graph, edges int, limit int64, cfg *config) {
	total := int(limit)
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < edges; i++ {
		j := i + cfg.rng.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
		u, v := pairAt(idx[i], g.Vertices)
		g.AddEdge(u, v, cfg.weight())
	}
}

// pairAt decodes k in [0, n(n−1)) to the k-th ordered pair (u, v) with u != v.
// Row u holds the n−1 targets 0..n−1 with u itself skipped.
func pairAt(k, n int) (u, v int) {
	u = k / (n - 1)
	v = k % (n - 1)
	if v >= u {
		v++
	}
	return u, v
}
