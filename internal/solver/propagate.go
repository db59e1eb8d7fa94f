package solver

import (
	"log/slog"

	"github.com/Fabian0594/kakuro/internal/board"
)

// foundDigits returns the digits currently assigned within the run, in
// cell order. Duplicates are preserved so the caller can detect them.
func (s *Solver) foundDigits(r *board.Run) []board.Digit {
	var out []board.Digit
	for _, c := range r.Cells {
		if d, ok := s.asn.Get(c); ok {
			out = append(out, d)
		}
	}
	return out
}

// runDigits computes the run's current domain: the union of digits
// appearing in any combination still consistent with the digits already
// found in the run (all), and the intersection of digits common to every
// such combination (required). Found digits are excluded from both. A
// combination is consistent when the found set is a subset of it, or when
// nothing is found yet.
func (s *Solver) runDigits(r *board.Run) (all, required DigitSet) {
	var found DigitSet
	for _, d := range s.foundDigits(r) {
		found = found.Add(d)
	}

	required = ComboSet(r.Combos[0])
	for _, combo := range r.Combos {
		cs := ComboSet(combo)
		if found == 0 || found.Subset(cs) {
			all = all.Union(cs)
			required = required.Intersect(cs)
		}
	}
	return all.Diff(found), required.Diff(found)
}

// fillCells runs one arc-consistency pass over the run and returns the
// number of cells it filled.
//
// For each unfilled cell, the candidates are the intersection of this
// run's domain with the perpendicular run's domain at that cell. An empty
// intersection, a duplicate digit among the run's own cells, or a set of
// assigned digits that fits no remaining combination is a contradiction.
// A singleton intersection is committed immediately; wider intersections
// feed a per-digit candidate index, and after the pass any required digit
// with exactly one candidate cell is force-assigned (hidden single).
//
// When speculative, each newly forced assignment recursively re-propagates
// the perpendicular runs, short-circuiting on the first contradiction.
func (s *Solver) fillCells(r *board.Run, speculative bool) (int, error) {
	found := s.foundDigits(r)
	var seen DigitSet
	for _, d := range found {
		if seen.Has(d) {
			return 0, &ContradictionError{
				Reason: ReasonDuplicateDigit,
				Run:    r.String(),
			}
		}
		seen = seen.Add(d)
	}
	if seen != 0 && !feasible(r, seen) {
		return 0, &ContradictionError{
			Reason: ReasonNoCombination,
			Run:    r.String(),
		}
	}

	all, required := s.runDigits(r)

	// byDigit[d] collects the candidate cells for digit d within this pass.
	var byDigit [int(board.MaxDigit) + 1][]board.Coord
	filled := 0

	for _, c := range r.Cells {
		if s.asn.Has(c) {
			continue
		}
		perp, ok := s.board.Perpendicular(c, r.Orientation)
		if !ok {
			// Parse validation guarantees coverage; treat a gap as infeasible.
			return filled, &ContradictionError{
				Reason: ReasonEmptyIntersection,
				Run:    r.String(),
				Cell:   c,
			}
		}
		perpAll, _ := s.runDigits(perp)
		common := perpAll.Intersect(all)

		switch common.Len() {
		case 0:
			return filled, &ContradictionError{
				Reason: ReasonEmptyIntersection,
				Run:    r.String(),
				Cell:   c,
			}
		case 1:
			d, _ := common.Single()
			s.assign(c, d, speculative)
			required = required.Remove(d)
			filled++
		default:
			for _, d := range common.Digits() {
				byDigit[d] = append(byDigit[d], c)
			}
		}

		if speculative && filled != 0 {
			if _, err := s.fillCells(perp, true); err != nil {
				return filled, err
			}
		}
	}

	// Hidden singles: a required digit with exactly one candidate cell.
	for d := board.MinDigit; d <= board.MaxDigit; d++ {
		if !required.Has(d) || len(byDigit[d]) != 1 {
			continue
		}
		c := byDigit[d][0]
		if !s.asn.Has(c) {
			s.assign(c, d, speculative)
			filled++
		}
	}

	return filled, nil
}

// feasible reports whether the found digits extend to at least one of the
// run's combinations. A fully assigned run with an unreachable total would
// otherwise pass a fill pass unnoticed, since contradictions are only
// detected at unfilled cells.
func feasible(r *board.Run, found DigitSet) bool {
	for _, combo := range r.Combos {
		if found.Subset(ComboSet(combo)) {
			return true
		}
	}
	return false
}

// assign commits a digit through the assignment store's undo log.
func (s *Solver) assign(c board.Coord, d board.Digit, speculative bool) {
	s.asn.Set(c, d)
	slog.Debug("digit assigned", "cell", c.String(), "digit", d, "speculative", speculative)
}
