package solver

import (
	"errors"
	"fmt"

	"github.com/Fabian0594/kakuro/internal/board"
)

// ContradictionReason categorizes propagation contradictions.
type ContradictionReason string

const (
	// ReasonEmptyIntersection indicates a cell whose two runs share no
	// candidate digit.
	ReasonEmptyIntersection ContradictionReason = "EMPTY_INTERSECTION"

	// ReasonDuplicateDigit indicates a digit assigned twice within one run.
	ReasonDuplicateDigit ContradictionReason = "DUPLICATE_DIGIT"

	// ReasonNoCombination indicates a run whose assigned digits fit no
	// remaining combination, so its sum target is unreachable.
	ReasonNoCombination ContradictionReason = "NO_COMBINATION"
)

// ContradictionError signals that the current (possibly speculative)
// assignment is infeasible. It is recovered locally: the enumeration step
// rolls back the offending branch and never surfaces the error to the
// caller of Solve.
type ContradictionError struct {
	Reason ContradictionReason
	Run    string
	Cell   board.Coord
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("%s: run %s at %s", e.Reason, e.Run, e.Cell)
}

// IsContradiction returns true if the error is a ContradictionError.
// Uses errors.As to handle wrapped errors.
func IsContradiction(err error) bool {
	var ce *ContradictionError
	return errors.As(err, &ce)
}

// ExhaustedError is returned by Solve when no unique full assignment was
// proved within the round budget. The accompanying Result still carries
// the best-effort assignment and all recorded solutions.
type ExhaustedError struct {
	Rounds    int // propagation rounds consumed
	Remaining int // unassigned playable cells in the reported assignment
	Solutions int // deduplicated full solutions discovered during search
}

func (e *ExhaustedError) Error() string {
	if e.Solutions > 1 {
		return fmt.Sprintf("no unique solution: %d distinct solutions found after %d rounds", e.Solutions, e.Rounds)
	}
	return fmt.Sprintf("no unique solution found after %d rounds (%d cells unassigned)", e.Rounds, e.Remaining)
}

// IsExhausted returns true if the error is an ExhaustedError.
// Uses errors.As to handle wrapped errors.
func IsExhausted(err error) bool {
	var ee *ExhaustedError
	return errors.As(err, &ee)
}
