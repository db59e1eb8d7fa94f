package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested solve does not exist.
var ErrNotFound = errors.New("solve not found")

// ReadSolve returns the solve with the given ID.
func (s *Store) ReadSolve(ctx context.Context, id string) (Solve, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, puzzle_hash, solution_hash, unique_solution, remaining, rounds, grid, created_at
		FROM solves WHERE id = ?
	`, id)

	sv, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Solve{}, fmt.Errorf("read solve %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Solve{}, fmt.Errorf("read solve %s: %w", id, err)
	}
	return sv, nil
}

// ListSolves returns archived solves in insertion order. When puzzleHash
// is non-empty, only solves of that puzzle are returned.
func (s *Store) ListSolves(ctx context.Context, puzzleHash string) ([]Solve, error) {
	query := `
		SELECT id, puzzle_hash, solution_hash, unique_solution, remaining, rounds, grid, created_at
		FROM solves
	`
	var args []any
	if puzzleHash != "" {
		query += " WHERE puzzle_hash = ?"
		args = append(args, puzzleHash)
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	defer rows.Close()

	var out []Solve
	for rows.Next() {
		sv, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("list solves: %w", err)
		}
		out = append(out, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	return out, nil
}

// scanner abstracts sql.Row and sql.Rows for scanSolve.
type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (Solve, error) {
	var sv Solve
	var unique int
	err := sc.Scan(
		&sv.ID,
		&sv.PuzzleHash,
		&sv.SolutionHash,
		&unique,
		&sv.Remaining,
		&sv.Rounds,
		&sv.Grid,
		&sv.CreatedAt,
	)
	if err != nil {
		return Solve{}, err
	}
	sv.Unique = unique != 0
	return sv, nil
}
