package harness

import (
	"fmt"
	"os"

	"github.com/Fabian0594/kakuro/internal/board"
	"github.com/Fabian0594/kakuro/internal/render"
	"github.com/Fabian0594/kakuro/internal/solver"
)

// Result is the outcome of running one scenario.
type Result struct {
	// Status is the observed outcome class (see the Status constants).
	Status string

	// Grid is the rendered reported assignment ("" for malformed puzzles).
	Grid string

	// Solutions is the number of recorded full solutions.
	Solutions int

	// Errors lists expectation mismatches; empty means the scenario passed.
	Errors []string
}

// Pass reports whether every expectation held.
func (r *Result) Pass() bool {
	return len(r.Errors) == 0
}

// Run executes a scenario: load the puzzle, parse, solve, classify the
// outcome, and check it against the scenario's expectations. An error is
// returned only for harness-level failures (unreadable puzzle file);
// expectation mismatches are reported through Result.Errors.
func Run(scenario *Scenario) (*Result, error) {
	text := scenario.Puzzle
	if scenario.PuzzleFile != "" {
		data, err := os.ReadFile(scenario.PuzzleFile)
		if err != nil {
			return nil, fmt.Errorf("read puzzle file: %w", err)
		}
		text = string(data)
	}

	result := &Result{}

	b, err := board.ParseString(text)
	if err != nil {
		if !board.IsMalformedPuzzle(err) {
			return nil, fmt.Errorf("parse puzzle: %w", err)
		}
		result.Status = StatusMalformed
		result.check(scenario)
		return result, nil
	}

	res, solveErr := solver.New(b).Solve()
	result.Grid = render.Grid(b, res.Cells)

	full := 0
	for _, rec := range res.Records {
		if !rec.Partial() {
			full++
		}
	}
	result.Solutions = full

	switch {
	case solveErr == nil && res.Unique:
		result.Status = StatusUnique
	case full > 0:
		result.Status = StatusMultiple
	case res.Remaining > 0 && len(res.Cells) > 0:
		result.Status = StatusPartial
	default:
		result.Status = StatusFailed
	}

	result.checkCells(scenario, res)
	result.check(scenario)
	return result, nil
}

// check validates status-level expectations.
func (r *Result) check(scenario *Scenario) {
	if r.Status != scenario.Expect.Status {
		r.Errors = append(r.Errors, fmt.Sprintf("status: got %q, want %q", r.Status, scenario.Expect.Status))
	}
	if scenario.Expect.Solutions != 0 && r.Solutions != scenario.Expect.Solutions {
		r.Errors = append(r.Errors, fmt.Sprintf("solutions: got %d, want %d", r.Solutions, scenario.Expect.Solutions))
	}
}

// checkCells validates pinned cell digits against the reported assignment.
func (r *Result) checkCells(scenario *Scenario, res solver.Result) {
	for _, cell := range scenario.Expect.Cells {
		c := board.Coord{X: cell.X, Y: cell.Y}
		got, ok := res.Cells[c]
		if !ok {
			r.Errors = append(r.Errors, fmt.Sprintf("cell %s: unassigned, want %d", c, cell.Digit))
			continue
		}
		if int(got) != cell.Digit {
			r.Errors = append(r.Errors, fmt.Sprintf("cell %s: got %d, want %d", c, got, cell.Digit))
		}
	}
	if scenario.Expect.Status == StatusPartial && scenario.Expect.Remaining != 0 && res.Remaining != scenario.Expect.Remaining {
		r.Errors = append(r.Errors, fmt.Sprintf("remaining: got %d, want %d", res.Remaining, scenario.Expect.Remaining))
	}
}
