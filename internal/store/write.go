package store

import (
	"context"
	"fmt"
)

// Solve is one archived solve: identity, content hashes, outcome, and the
// rendered grid.
type Solve struct {
	ID           string // UUIDv7 solve session token
	PuzzleHash   string
	SolutionHash string
	Unique       bool
	Remaining    int // unassigned cells; 0 for a full solution
	Rounds       int
	Grid         string
	CreatedAt    string
}

// WriteSolve inserts a solve record. Uses ON CONFLICT DO NOTHING on the
// (puzzle_hash, solution_hash) pair for idempotency: re-solving the same
// puzzle to the same solution is silently ignored. Returns whether a new
// row was inserted.
func (s *Store) WriteSolve(ctx context.Context, sv Solve) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO solves
		(id, puzzle_hash, solution_hash, unique_solution, remaining, rounds, grid)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(puzzle_hash, solution_hash) DO NOTHING
	`,
		sv.ID,
		sv.PuzzleHash,
		sv.SolutionHash,
		boolToInt(sv.Unique),
		sv.Remaining,
		sv.Rounds,
		sv.Grid,
	)
	if err != nil {
		return false, fmt.Errorf("write solve: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write solve: rows affected: %w", err)
	}
	return n > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
