package solver

import "github.com/Fabian0594/kakuro/internal/board"

// Assignment is the mutable partial (or complete) solution: the
// coordinate→digit mapping plus a chronological undo log of assignment
// order. The log is the only way entries are removed; rollback to a
// checkpoint restores exactly the pre-speculation state.
//
// The assignment is single-writer by contract (see package doc); it is
// owned by one Solver and never shared across runs or goroutines.
type Assignment struct {
	cells map[board.Coord]board.Digit
	log   []board.Coord
}

// NewAssignment creates an empty assignment.
func NewAssignment() *Assignment {
	return &Assignment{cells: make(map[board.Coord]board.Digit)}
}

// Get returns the digit committed at c, if any.
func (a *Assignment) Get(c board.Coord) (board.Digit, bool) {
	d, ok := a.cells[c]
	return d, ok
}

// Has reports whether c holds a committed or speculative digit.
func (a *Assignment) Has(c board.Coord) bool {
	_, ok := a.cells[c]
	return ok
}

// Set commits a digit at c and records the coordinate in the undo log.
// The caller guarantees c is currently unassigned.
func (a *Assignment) Set(c board.Coord, d board.Digit) {
	a.cells[c] = d
	a.log = append(a.log, c)
}

// Len returns the number of assigned cells.
func (a *Assignment) Len() int {
	return len(a.cells)
}

// Checkpoint returns a marker for the current undo-log position.
func (a *Assignment) Checkpoint() int {
	return len(a.log)
}

// Rollback removes every assignment made after the checkpoint, most
// recent first.
func (a *Assignment) Rollback(mark int) {
	for len(a.log) > mark {
		c := a.log[len(a.log)-1]
		a.log = a.log[:len(a.log)-1]
		delete(a.cells, c)
	}
}

// Snapshot returns a copy of the current mapping.
func (a *Assignment) Snapshot() map[board.Coord]board.Digit {
	out := make(map[board.Coord]board.Digit, len(a.cells))
	for c, d := range a.cells {
		out[c] = d
	}
	return out
}
