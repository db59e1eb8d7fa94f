// Package solver implements constraint propagation and bounded
// backtracking over a parsed Kakuro board.
//
// ARCHITECTURE:
//
// Single-Threaded Round Loop:
// The solver runs propagation rounds over every run (horizontal in
// declaration order, then vertical). A round that fills at least one cell
// is followed by another round; a round that fills nothing stalls the
// solver into bounded enumeration. There is exactly one logical thread of
// control, so the assignment store needs no locking; code exploring
// parallel branches would need per-branch copies instead.
//
// Propagation (fillCells):
// For each unfilled cell of a run, the candidate digits are the
// intersection of what the run and its perpendicular partner both allow
// (arc consistency). An empty intersection is a contradiction; a singleton
// is committed immediately; otherwise candidates feed a per-digit index
// used to force hidden singles (a required digit with exactly one
// candidate cell).
//
// Enumeration (testPossibilities):
// When propagation stalls, runs with small candidate sets are enumerated:
// each candidate completion is committed speculatively, re-propagated
// through the perpendicular runs it touches, recorded as a full or partial
// solution when contradiction-free, and rolled back through the undo log.
// If exactly one candidate survives, it is committed permanently. The
// enumeration budget starts at 2 and doubles each time the solver stalls
// without progress.
//
// DETERMINISM:
// Runs are visited in declaration order, digit sets iterate 1..9,
// permutations are generated lexicographically, and solution records keep
// insertion order. Solving the same puzzle twice yields identical records.
//
// UNDO LOG CONTRACT:
// Every code path that commits a speculative assignment either keeps the
// commit (forced deduction, convergence) or rolls back exactly the entries
// it pushed, on every exit including contradiction. Rollback restores the
// assignment store bit-identically to the checkpoint state.
package solver
