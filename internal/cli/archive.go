package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Fabian0594/kakuro/internal/board"
	"github.com/Fabian0594/kakuro/internal/store"
)

// ArchiveOptions holds flags for the archive command.
type ArchiveOptions struct {
	*RootOptions
	Database string
	Puzzle   string // optional - list solves of this puzzle only
	ID       string // optional - show a single solve by ID
}

// ArchiveEntry is one archived solve in command output.
type ArchiveEntry struct {
	ID           string `json:"id"`
	PuzzleHash   string `json:"puzzle_hash"`
	SolutionHash string `json:"solution_hash"`
	Unique       bool   `json:"unique"`
	Remaining    int    `json:"remaining"`
	Rounds       int    `json:"rounds"`
	Grid         string `json:"grid,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// ArchiveResult holds the overall archive listing.
type ArchiveResult struct {
	Solves []ArchiveEntry `json:"solves"`
	Total  int            `json:"total"`
}

// NewArchiveCommand creates the archive command.
func NewArchiveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ArchiveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect the solve archive",
		Long: `List or show archived solves from a SQLite solve archive.

Without flags, lists every archived solve in insertion order. With
--puzzle, only solves of that puzzle are listed (the puzzle file is
hashed the same way the solve command hashes it). With --id, the single
solve is shown in full, including its grid.

Exit codes:
  0 - Success
  1 - Solve not found
  2 - Command error (database not found, etc.)

Examples:
  kakuro archive --db solves.db
  kakuro archive --db solves.db --puzzle puzzle.kakuro
  kakuro archive --db solves.db --id 0190ddc8-...
  kakuro archive --db solves.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArchive(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite solve archive (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Puzzle, "puzzle", "", "list solves of this puzzle file only")
	cmd.Flags().StringVar(&opts.ID, "id", "", "show a single solve by ID")

	return cmd
}

func runArchive(opts *ArchiveOptions, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)
	ctx := cmd.Context()

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(opts.Database); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("archive database not found: %s", opts.Database))
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open archive", err)
	}
	defer st.Close()

	if opts.ID != "" {
		sv, err := st.ReadSolve(ctx, opts.ID)
		if errors.Is(err, store.ErrNotFound) {
			out.Error(ErrCodeNotFound, fmt.Sprintf("solve %s not found", opts.ID), nil)
			return NewExitError(ExitFailure, fmt.Sprintf("solve %s not found", opts.ID))
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read solve", err)
		}
		return outputArchiveEntry(cmd, opts, archiveEntry(sv, true))
	}

	puzzleHash := ""
	if opts.Puzzle != "" {
		data, err := os.ReadFile(opts.Puzzle)
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot read puzzle file", err)
		}
		puzzleHash = board.PuzzleHash(string(data))
	}

	solves, err := st.ListSolves(ctx, puzzleHash)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list solves", err)
	}

	result := ArchiveResult{Total: len(solves)}
	for _, sv := range solves {
		result.Solves = append(result.Solves, archiveEntry(sv, false))
	}
	return outputArchiveList(cmd, opts, result)
}

func archiveEntry(sv store.Solve, withGrid bool) ArchiveEntry {
	e := ArchiveEntry{
		ID:           sv.ID,
		PuzzleHash:   sv.PuzzleHash,
		SolutionHash: sv.SolutionHash,
		Unique:       sv.Unique,
		Remaining:    sv.Remaining,
		Rounds:       sv.Rounds,
		CreatedAt:    sv.CreatedAt,
	}
	if withGrid {
		e.Grid = sv.Grid
	}
	return e
}

// outputArchiveEntry shows a single solve in full.
func outputArchiveEntry(cmd *cobra.Command, opts *ArchiveOptions, entry ArchiveEntry) error {
	w := cmd.OutOrStdout()

	if opts.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(CLIResponse{Status: "ok", Data: entry})
	}

	fmt.Fprintf(w, "Solve: %s\n", entry.ID)
	fmt.Fprintf(w, "  Puzzle:    %s\n", entry.PuzzleHash)
	fmt.Fprintf(w, "  Solution:  %s\n", entry.SolutionHash)
	fmt.Fprintf(w, "  Unique:    %v\n", entry.Unique)
	fmt.Fprintf(w, "  Remaining: %d\n", entry.Remaining)
	fmt.Fprintf(w, "  Rounds:    %d\n", entry.Rounds)
	fmt.Fprintf(w, "  Created:   %s\n", entry.CreatedAt)
	fmt.Fprintln(w)
	fmt.Fprint(w, entry.Grid)
	return nil
}

// outputArchiveList shows the archive listing.
func outputArchiveList(cmd *cobra.Command, opts *ArchiveOptions, result ArchiveResult) error {
	w := cmd.OutOrStdout()

	if opts.Format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(CLIResponse{Status: "ok", Data: result})
	}

	if result.Total == 0 {
		fmt.Fprintln(w, "No solves archived.")
		return nil
	}

	fmt.Fprintf(w, "Archive: %d solve(s)\n", result.Total)
	fmt.Fprintln(w)
	for _, e := range result.Solves {
		status := "partial"
		if e.Unique {
			status = "unique"
		} else if e.Remaining == 0 {
			status = "full"
		}
		fmt.Fprintf(w, "%s  %s  rounds=%d  %s\n", e.ID, status, e.Rounds, e.CreatedAt)
		if opts.Verbose {
			fmt.Fprintf(w, "  puzzle=%s\n", e.PuzzleHash)
			fmt.Fprintf(w, "  solution=%s\n", e.SolutionHash)
		}
	}
	return nil
}
