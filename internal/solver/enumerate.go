package solver

import (
	"log/slog"

	"github.com/Fabian0594/kakuro/internal/board"
)

// permutations generates every ordering of the given digits in
// lexicographic order. The input must be sorted ascending.
func permutations(digits []board.Digit) [][]board.Digit {
	if len(digits) == 0 {
		return nil
	}
	if len(digits) == 1 {
		return [][]board.Digit{{digits[0]}}
	}
	var out [][]board.Digit
	for i, d := range digits {
		rest := make([]board.Digit, 0, len(digits)-1)
		rest = append(rest, digits[:i]...)
		rest = append(rest, digits[i+1:]...)
		for _, sub := range permutations(rest) {
			perm := make([]board.Digit, 0, len(digits))
			perm = append(perm, d)
			perm = append(perm, sub...)
			out = append(out, perm)
		}
	}
	return out
}

// candidates builds the orderings to test for the run's unfilled cells.
//
// When the run's candidate digits have collapsed to exactly its required
// set, every ordering of those digits is a candidate completion. Otherwise,
// if exactly two cells remain, the raw ordered pairs summing to the
// residual target are the candidates. Any other shape yields nothing.
func (s *Solver) candidates(r *board.Run) [][]board.Digit {
	all, required := s.runDigits(r)
	if all.Len() == required.Len() && all.Len() > 0 {
		return permutations(required.Digits())
	}

	remaining := r.Total
	length := r.Length
	for _, c := range r.Cells {
		if d, ok := s.asn.Get(c); ok {
			remaining -= int(d)
			length--
		}
	}
	if length != 2 {
		return nil
	}
	var out [][]board.Digit
	for _, combo := range board.AllSums(remaining, length) {
		out = append(out, []board.Digit(combo))
	}
	return out
}

// testPossibilities enumerates the run's candidate completions when their
// count fits within limit. Returns whether the count was within budget;
// the driver doubles the budget when any run reports it was not.
func (s *Solver) testPossibilities(r *board.Run, limit int) bool {
	combos := s.candidates(r)
	if len(combos) != 0 && len(combos) <= limit {
		s.testCandidates(r, combos)
	}
	return len(combos) <= limit
}

// testCandidates speculatively commits each candidate completion,
// re-propagates through the perpendicular runs it touches, records the
// reached state when contradiction-free, and rolls back to the checkpoint.
// If exactly one candidate survives, all others are proved impossible and
// the survivor is committed permanently.
func (s *Solver) testCandidates(r *board.Run, combos [][]board.Digit) {
	var survivors [][]board.Digit

	for _, values := range combos {
		mark := s.asn.Checkpoint()

		var testCells []board.Coord
		idx := 0
		for _, c := range r.Cells {
			if !s.asn.Has(c) {
				s.assign(c, values[idx], true)
				testCells = append(testCells, c)
				idx++
			}
		}

		eliminated := false
		for _, c := range testCells {
			perp, ok := s.board.Perpendicular(c, r.Orientation)
			if !ok {
				eliminated = true
				break
			}
			if _, err := s.fillCells(perp, true); err != nil {
				slog.Debug("candidate eliminated", "run", r.String(), "values", values, "error", err)
				eliminated = true
				break
			}
		}

		if !eliminated {
			survivors = append(survivors, values)
			s.recordCurrent()
		}

		s.asn.Rollback(mark)
	}

	if len(survivors) == 1 {
		slog.Debug("sole surviving candidate committed", "run", r.String(), "values", survivors[0])
		idx := 0
		for _, c := range r.Cells {
			if !s.asn.Has(c) {
				s.assign(c, survivors[0][idx], false)
				idx++
			}
		}
	}
}

// recordCurrent registers the current assignment as a full solution record,
// or as a partial record when it is at least as close to complete as the
// best partial seen so far.
func (s *Solver) recordCurrent() {
	remaining := s.board.CellCount() - s.asn.Len()
	if remaining == 0 {
		s.minRemaining = 0
		if s.records.Add(s.asn.Snapshot(), 0) {
			slog.Debug("full solution recorded", "count", s.records.Len())
		}
		return
	}
	if remaining <= s.minRemaining {
		s.minRemaining = remaining
		s.records.Add(s.asn.Snapshot(), remaining)
	}
}
