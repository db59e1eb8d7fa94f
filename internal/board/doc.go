// Package board holds the immutable puzzle model for the Kakuro solver.
//
// A puzzle is a grid of playable cells partitioned into horizontal and
// vertical runs. Each run carries a sum target and the set of digit
// combinations that can satisfy it. The board is built once from puzzle
// text and never mutated afterwards; only the solver's assignment state
// changes during solving.
//
// STRUCTURE:
//
// Coordinate → Run Index:
// Every playable cell appears in exactly one horizontal and exactly one
// vertical run. The board keeps a Coordinate→Run map per orientation so
// the solver can resolve a cell's perpendicular partner with a lookup
// instead of embedded cross-references between runs.
//
// Combination Generation:
// AllSums and UniqueSums enumerate the distinct-digit combinations for a
// (target, length) pair. Results are memoized process-wide: the same
// sub-sums recur across runs and search branches, and without the cache
// the recursion is exponential in puzzle size.
//
// A run whose (target, length) pair admits no combination makes the whole
// puzzle malformed; construction fails with MalformedPuzzleError before
// any solving begins.
package board
