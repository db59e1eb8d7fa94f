package board

import (
	"errors"
	"fmt"
)

// MalformedPuzzleError reports a structurally invalid puzzle: a run of
// declared length zero, a (total, length) pair with no valid combination,
// or a playable cell covered by only one orientation. It is fatal at
// construction; no solving is attempted on a malformed board.
type MalformedPuzzleError struct {
	// Reason is a human-readable description of the defect.
	Reason string

	// Start locates the offending run or cell.
	Start Coord
}

func (e *MalformedPuzzleError) Error() string {
	return fmt.Sprintf("malformed puzzle at %s: %s", e.Start, e.Reason)
}

// IsMalformedPuzzle returns true if the error is a MalformedPuzzleError.
// Uses errors.As to handle wrapped errors.
func IsMalformedPuzzle(err error) bool {
	var me *MalformedPuzzleError
	return errors.As(err, &me)
}
