// Package generate builds random weighted directed graphs for shortest-path
// test files.
//
// # Generators
//
//   - [Grid]: a rows×cols 4-neighborhood grid. Every cell links to its right,
//     down, left and up neighbors when they exist, so each adjacency appears
//     once per direction with independently drawn weights.
//   - [Dense]: exactly E distinct directed edges over V vertices with no
//     self-loops, drawn uniformly at random.
//
// # Randomness
//
// Generators never touch the global math/rand state. Pass a source with
// [WithSeed] or [WithRand]; the same seed, options and call order produce the
// same graph. A *rand.Rand is not safe for concurrent use, so share one only
// between sequential calls.
//
// # Dense strategies
//
// [Dense] uses rejection sampling while the requested density stays at or
// below [DefaultShuffleThreshold] of V×(V−1), and switches to a partial
// Fisher–Yates shuffle of all ordered pairs above it. The shuffle bounds the
// running time when rejection would keep hitting already chosen pairs.
// [WithStrategy] forces one of the two.
//
// # Errors
//
// Impossible requests (negative sizes, E > V×(V−1), an empty weight range or a
// missing random source) return an error coded
// [errors.ErrCodeConfiguration]. Nothing is partially built.
//
// [errors.ErrCodeConfiguration]: github.com/matzehuels/graphgen/pkg/errors.ErrCodeConfiguration
package generate
