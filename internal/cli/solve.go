package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Fabian0594/kakuro/internal/board"
	"github.com/Fabian0594/kakuro/internal/render"
	"github.com/Fabian0594/kakuro/internal/solver"
	"github.com/Fabian0594/kakuro/internal/store"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Database  string
	MaxRounds int
}

// SolveData is the JSON payload for a solve.
type SolveData struct {
	Unique    bool           `json:"unique"`
	Rounds    int            `json:"rounds"`
	Limit     int            `json:"limit"`
	Remaining int            `json:"remaining,omitempty"`
	Solutions []SolutionData `json:"solutions"`
}

// SolutionData is one reported solution record.
type SolutionData struct {
	Hash      string `json:"hash"`
	Remaining int    `json:"remaining,omitempty"`
	Grid      string `json:"grid"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <puzzle-file>",
		Short: "Solve a Kakuro puzzle",
		Long: `Solve a Kakuro puzzle from its text file.

The puzzle format is two blocks of comma-separated rows separated by a
blank line: horizontal clues row by row, then the grid restated column by
column for vertical clues. "XX" blocks a cell, a positive integer opens a
run at the next cell, "00" extends the open run.

Exit codes:
  0 - Unique solution found
  1 - No unique solution (solutions and/or the best partial grid reported)
  2 - Command error (file not found, malformed puzzle)

Examples:
  kakuro solve puzzle.kakuro
  kakuro solve puzzle.kakuro --db solves.db
  kakuro solve puzzle.kakuro --format json --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite solve archive (optional)")
	cmd.Flags().IntVar(&opts.MaxRounds, "max-rounds", solver.DefaultMaxRounds, "propagation round cap")

	return cmd
}

func runSolve(opts *SolveOptions, puzzlePath string, cmd *cobra.Command) error {
	configureLogging(opts.Verbose)

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	data, err := os.ReadFile(puzzlePath)
	if err != nil {
		out.Error(ErrCodeNotFound, fmt.Sprintf("cannot read puzzle file: %v", err), nil)
		return WrapExitError(ExitCommandError, "cannot read puzzle file", err)
	}
	text := string(data)

	b, err := board.ParseString(text)
	if err != nil {
		out.Error(ErrCodeMalformed, err.Error(), nil)
		return WrapExitError(ExitCommandError, "malformed puzzle", err)
	}
	slog.Debug("board parsed", "width", b.Width, "height", b.Height,
		"cells", b.CellCount(), "horizontal", len(b.Horizontal), "vertical", len(b.Vertical))

	res, solveErr := solver.New(b, solver.WithMaxRounds(opts.MaxRounds)).Solve()
	slog.Debug("solve finished", "rounds", res.Rounds, "limit", res.Limit, "unique", res.Unique)

	if opts.Database != "" {
		if err := archiveSolve(cmd, opts.Database, text, b, res); err != nil {
			out.Error(ErrCodeStore, fmt.Sprintf("archive solve: %v", err), nil)
			return WrapExitError(ExitCommandError, "archive solve", err)
		}
	}

	if err := printSolve(out, b, res, solveErr); err != nil {
		return err
	}

	if solveErr != nil {
		return WrapExitError(ExitFailure, "no unique solution", solveErr)
	}
	return nil
}

// printSolve reports the solve outcome in the configured format.
func printSolve(out *OutputFormatter, b *board.Board, res solver.Result, solveErr error) error {
	if out.Format == "json" {
		data := SolveData{
			Unique:    res.Unique,
			Rounds:    res.Rounds,
			Limit:     res.Limit,
			Remaining: res.Remaining,
		}
		for _, rec := range reportable(res) {
			data.Solutions = append(data.Solutions, SolutionData{
				Hash:      rec.Hash,
				Remaining: rec.Remaining,
				Grid:      render.Grid(b, rec.Cells),
			})
		}
		resp := CLIResponse{Status: "ok", Data: data}
		if solveErr != nil {
			resp.Status = "error"
			resp.Error = &CLIError{Code: ErrCodeNoUnique, Message: solveErr.Error()}
		}
		encoder := json.NewEncoder(out.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp)
	}

	if solveErr != nil {
		fmt.Fprintln(out.Writer, "No unique solution found.")
	}
	for i, rec := range reportable(res) {
		if rec.Partial() {
			fmt.Fprintf(out.Writer, "Partial solution (%d cells unassigned):\n", rec.Remaining)
		} else {
			fmt.Fprintf(out.Writer, "Solution %d:\n", i+1)
		}
		fmt.Fprint(out.Writer, render.Grid(b, rec.Cells))
	}
	return nil
}

// reportable selects the records worth printing: every full solution, or
// the best partial fallback when no full solution exists, or the reported
// assignment itself when nothing was recorded.
func reportable(res solver.Result) []solver.Record {
	var full []solver.Record
	for _, rec := range res.Records {
		if !rec.Partial() {
			full = append(full, rec)
		}
	}
	if len(full) > 0 {
		return full
	}

	best := solver.Record{Remaining: -1}
	for _, rec := range res.Records {
		if best.Remaining < 0 || rec.Remaining < best.Remaining {
			best = rec
		}
	}
	if best.Remaining >= 0 {
		return []solver.Record{best}
	}

	if len(res.Cells) > 0 {
		return []solver.Record{{
			Hash:      board.SolutionHash(res.Cells),
			Cells:     res.Cells,
			Remaining: res.Remaining,
		}}
	}
	return nil
}

// archiveSolve records the solve outcome in the SQLite archive.
func archiveSolve(cmd *cobra.Command, dbPath, text string, b *board.Board, res solver.Result) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing archive", "error", closeErr)
		}
	}()

	puzzleHash := board.PuzzleHash(text)
	for _, rec := range reportable(res) {
		sv := store.Solve{
			ID:           uuid.Must(uuid.NewV7()).String(),
			PuzzleHash:   puzzleHash,
			SolutionHash: rec.Hash,
			Unique:       res.Unique,
			Remaining:    rec.Remaining,
			Rounds:       res.Rounds,
			Grid:         render.Grid(b, rec.Cells),
		}
		inserted, err := st.WriteSolve(cmd.Context(), sv)
		if err != nil {
			return err
		}
		slog.Debug("solve archived", "id", sv.ID, "solution", sv.SolutionHash, "inserted", inserted)
	}
	return nil
}

// configureLogging installs the default slog handler for CLI commands.
func configureLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
