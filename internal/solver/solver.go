package solver

import (
	"log/slog"

	"github.com/Fabian0594/kakuro/internal/board"
)

const (
	// DefaultMaxRounds caps the number of propagation rounds before the
	// solver gives up and falls back to the best partial record.
	DefaultMaxRounds = 45

	// DefaultStartLimit is the initial enumeration budget. It doubles each
	// time a stalled round ends without every run fitting the budget.
	DefaultStartLimit = 2
)

// Option configures a Solver.
type Option func(*Solver)

// WithMaxRounds sets the propagation round cap.
//
// Default: 45 (DefaultMaxRounds). Use a low cap in tests to exercise the
// exhaustion path.
func WithMaxRounds(n int) Option {
	return func(s *Solver) {
		s.maxRounds = n
	}
}

// WithStartLimit sets the initial enumeration budget.
//
// Default: 2 (DefaultStartLimit).
func WithStartLimit(n int) Option {
	return func(s *Solver) {
		s.startLimit = n
	}
}

// Solver drives propagation and bounded search over one board. All state
// is instance-owned: a solver may not be shared, but any number of boards
// can be solved concurrently with separate solvers.
type Solver struct {
	board   *board.Board
	asn     *Assignment
	records *RecordSet

	// minRemaining tracks the smallest board-wide unassigned count reached
	// by any contradiction-free speculative state. 0 once a full solution
	// has been recorded.
	minRemaining int

	maxRounds  int
	startLimit int
}

// New creates a solver for the board.
func New(b *board.Board, opts ...Option) *Solver {
	s := &Solver{
		board:        b,
		asn:          NewAssignment(),
		records:      NewRecordSet(),
		minRemaining: b.CellCount(),
		maxRounds:    DefaultMaxRounds,
		startLimit:   DefaultStartLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of a solve.
type Result struct {
	// Cells is the reported assignment: the converged solution, the first
	// discovered full solution, or the best partial fallback.
	Cells map[board.Coord]board.Digit

	// Unique is true only when propagation and forced deductions converged
	// on a complete assignment without ambiguity.
	Unique bool

	// Remaining counts unassigned playable cells in Cells.
	Remaining int

	// Rounds and Limit are search diagnostics: propagation rounds consumed
	// and the final enumeration budget.
	Rounds int
	Limit  int

	// Records holds every deduplicated full and tracked partial solution
	// in discovery order.
	Records []Record
}

// Solve runs the propagation / enumeration state machine to completion.
//
// On convergence the result is the unique full assignment. Otherwise Solve
// returns ExhaustedError alongside a best-effort result: the first full
// solution found during search (with Unique false when several exist), or
// the best partial record, or whatever the assignment holds.
func (s *Solver) Solve() (Result, error) {
	target := s.board.CellCount()
	limit := s.startLimit
	lastFilled := 1
	rounds := 0

	for s.asn.Len() < target && rounds < s.maxRounds {
		rounds++
		filled := 0
		for _, r := range s.board.Runs() {
			n, err := s.fillCells(r, false)
			if err != nil {
				// A contradiction outside speculation means the committed
				// state is infeasible; no further fills can come from this
				// run, so let the stall escalate to enumeration.
				slog.Debug("propagation contradiction", "run", r.String(), "error", err)
				continue
			}
			filled += n
		}
		slog.Debug("propagation round", "round", rounds, "filled", filled, "assigned", s.asn.Len(), "target", target)

		if lastFilled == 0 {
			slog.Debug("stalled, enumerating", "round", rounds, "limit", limit)
			allTested := true
			for _, r := range s.board.Runs() {
				if !s.testPossibilities(r, limit) {
					allTested = false
				}
			}
			if allTested && s.minRemaining == 0 {
				// Every run fit the budget and full solutions exist;
				// nothing larger remains to try.
				break
			}
			limit *= 2
		}
		lastFilled = filled
	}

	res := Result{Rounds: rounds, Limit: limit}

	if s.asn.Len() == target {
		s.minRemaining = 0
		snapshot := s.asn.Snapshot()
		s.records.Add(snapshot, 0)
		res.Cells = snapshot
		res.Unique = true
		res.Records = s.records.Records()
		slog.Debug("converged", "rounds", rounds, "limit", limit)
		return res, nil
	}

	res.Records = s.records.Records()

	if full := s.records.Full(); len(full) > 0 {
		res.Cells = full[0].Cells
		err := &ExhaustedError{Rounds: rounds, Remaining: 0, Solutions: len(full)}
		slog.Debug("no unique solution", "rounds", rounds, "solutions", len(full))
		return res, err
	}

	if partial, ok := s.records.BestPartial(); ok {
		res.Cells = partial.Cells
		res.Remaining = partial.Remaining
		err := &ExhaustedError{Rounds: rounds, Remaining: partial.Remaining}
		slog.Debug("search exhausted, partial fallback", "rounds", rounds, "remaining", partial.Remaining)
		return res, err
	}

	res.Cells = s.asn.Snapshot()
	res.Remaining = target - s.asn.Len()
	slog.Debug("search exhausted", "rounds", rounds, "remaining", res.Remaining)
	return res, &ExhaustedError{Rounds: rounds, Remaining: res.Remaining}
}
