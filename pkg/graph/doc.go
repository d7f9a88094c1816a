// Package graph defines the in-memory model shared by the generators and the
// edge-list codec.
//
// # Core Types
//
//   - [Edge]: a directed edge (From, To, Weight) between zero-based vertices
//   - [Graph]: a vertex count plus a flat edge list in generation order
//   - [Instance]: a graph with the source and destination of one query
//   - [Stats]: summary numbers computed by [Graph.ComputeStats]
//
// # Vertices
//
// Vertices are plain integers in [0, Vertices). Grid generators map a cell
// (r, c) to the index r*cols + c; that mapping is not stored.
//
// # Constants
//
// This package is the single source of truth for graph kinds:
//
//	graph.KindGrid   // "grid"
//	graph.KindDense  // "dense"
//
// # Invariants
//
// The package does not enforce uniqueness or loop freedom; [Graph.ComputeStats]
// reports both so callers and tests can check generator invariants.
// [MaxSimpleEdges] gives the V×(V−1) bound a simple directed graph can reach.
package graph
