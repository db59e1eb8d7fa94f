package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func testSolve(id, puzzleHash, solutionHash string) Solve {
	return Solve{
		ID:           id,
		PuzzleHash:   puzzleHash,
		SolutionHash: solutionHash,
		Unique:       true,
		Remaining:    0,
		Rounds:       1,
		Grid:         "# # # \n# 1 2 \n# 3 4 \n",
	}
}

func TestWriteSolve_Insert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	inserted, err := s.WriteSolve(ctx, testSolve("id-1", "p1", "s1"))
	if err != nil {
		t.Fatalf("WriteSolve() failed: %v", err)
	}
	if !inserted {
		t.Error("expected insert of a new solve")
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestWriteSolve_IdempotentOnContentPair(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.WriteSolve(ctx, testSolve("id-1", "p1", "s1")); err != nil {
		t.Fatalf("first WriteSolve() failed: %v", err)
	}

	// Same (puzzle, solution) pair under a fresh session ID is a no-op.
	inserted, err := s.WriteSolve(ctx, testSolve("id-2", "p1", "s1"))
	if err != nil {
		t.Fatalf("second WriteSolve() failed: %v", err)
	}
	if inserted {
		t.Error("duplicate content pair must not insert a new row")
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestWriteSolve_DistinctSolutionsSamePuzzle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, sol := range []string{"s1", "s2", "s3"} {
		inserted, err := s.WriteSolve(ctx, testSolve(fmt.Sprintf("id-%d", i), "p1", sol))
		if err != nil {
			t.Fatalf("WriteSolve(%s) failed: %v", sol, err)
		}
		if !inserted {
			t.Errorf("solution %s should have inserted", sol)
		}
	}
}

func TestReadSolve_Roundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := Solve{
		ID:           "id-1",
		PuzzleHash:   "p1",
		SolutionHash: "s1",
		Unique:       false,
		Remaining:    2,
		Rounds:       45,
		Grid:         "# # # \n# X X \n# X X \n",
	}
	if _, err := s.WriteSolve(ctx, want); err != nil {
		t.Fatalf("WriteSolve() failed: %v", err)
	}

	got, err := s.ReadSolve(ctx, "id-1")
	if err != nil {
		t.Fatalf("ReadSolve() failed: %v", err)
	}
	if got.PuzzleHash != want.PuzzleHash ||
		got.SolutionHash != want.SolutionHash ||
		got.Unique != want.Unique ||
		got.Remaining != want.Remaining ||
		got.Rounds != want.Rounds ||
		got.Grid != want.Grid {
		t.Errorf("ReadSolve() = %+v, want %+v", got, want)
	}
	if got.CreatedAt == "" {
		t.Error("created_at should be populated by the schema default")
	}
}

func TestReadSolve_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadSolve(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListSolves_InsertionOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sv := testSolve(fmt.Sprintf("id-%d", i), "p1", fmt.Sprintf("s%d", i))
		if _, err := s.WriteSolve(ctx, sv); err != nil {
			t.Fatalf("WriteSolve() failed: %v", err)
		}
	}

	solves, err := s.ListSolves(ctx, "")
	if err != nil {
		t.Fatalf("ListSolves() failed: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("len = %d, want 3", len(solves))
	}
	// created_at has second granularity; the id tie-break keeps order stable.
	for i, sv := range solves {
		if want := fmt.Sprintf("id-%d", i); sv.ID != want {
			t.Errorf("solves[%d].ID = %s, want %s", i, sv.ID, want)
		}
	}
}

func TestListSolves_FilterByPuzzle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.WriteSolve(ctx, testSolve("id-1", "p1", "s1")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.WriteSolve(ctx, testSolve("id-2", "p2", "s2")); err != nil {
		t.Fatal(err)
	}

	solves, err := s.ListSolves(ctx, "p2")
	if err != nil {
		t.Fatalf("ListSolves() failed: %v", err)
	}
	if len(solves) != 1 || solves[0].ID != "id-2" {
		t.Errorf("filtered list = %+v, want only id-2", solves)
	}

	empty, err := s.ListSolves(ctx, "p3")
	if err != nil {
		t.Fatalf("ListSolves() failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no solves for unknown puzzle, got %d", len(empty))
	}
}
