// Package pkg provides the libraries behind graphgen, a generator of
// weighted directed graphs for testing shortest-path programs.
//
// # Overview
//
// The pkg directory is organized by stage:
//
//  1. [graph] - Edge-list graph, query instance and statistics
//  2. [generate] - Grid and dense random generators
//  3. [io] - Edge-list file format, Graphviz export
//  4. [pipeline] - Plans (TOML) and the sequential runner
//  5. [manifest] - JSON record of a run
//
// Supporting packages: [errors] (coded errors), [observability] (hooks) and
// [buildinfo] (version stamping).
//
// # Architecture
//
//	Plan (built-in or TOML)
//	         ↓
//	    [pipeline] validates every entry
//	         ↓
//	    [generate] builds a grid or dense graph
//	         ↓
//	    [io] writes "V E", "u v w" lines, "source destination"
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/graphgen/pkg/generate"
//	    "github.com/matzehuels/graphgen/pkg/graph"
//	    graphio "github.com/matzehuels/graphgen/pkg/io"
//	)
//
//	g, err := generate.Dense(100, 5000, generate.WithSeed(1))
//	if err != nil {
//	    return err // CONFIGURATION when E > V(V-1)
//	}
//	_, err = graphio.ExportEdgeList(graph.NewInstance(g), "denso_1.txt")
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/graph
// [generate]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/generate
// [io]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/pipeline
// [manifest]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/manifest
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphgen/pkg/buildinfo
package pkg
