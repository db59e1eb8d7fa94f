package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads puzzle text into a Board.
//
// The format is two blocks of comma-separated rows split by a blank line.
// Block 1 gives the horizontal clues row by row; block 2 restates the same
// grid so that reading it column by column gives the vertical clues. In a
// row, a non-numeric token (conventionally "XX") blocks the cell, a
// positive integer opens a run starting at the next cell, and "00" extends
// the currently open run.
//
// Parse returns MalformedPuzzleError for a run of declared length zero,
// a (total, length) pair with no valid digit combination, or a playable
// cell that is covered by only one orientation.
func Parse(r io.Reader) (*Board, error) {
	b := &Board{
		hruns: make(map[Coord]*Run),
		vruns: make(map[Coord]*Run),
	}

	vert := false
	row := 0
	var columns [][]string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			vert = true
			continue
		}
		cells := strings.Split(line, ",")
		b.Width = len(cells)
		if vert {
			if columns == nil {
				columns = make([][]string, len(cells))
			}
			for i, cell := range cells {
				if i < len(columns) {
					columns[i] = append(columns[i], cell)
				}
			}
		} else {
			if err := b.parseSequence(row, cells, Horizontal); err != nil {
				return nil, err
			}
			row++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}

	if len(columns) > 0 {
		b.Height = len(columns[0])
		for i, column := range columns {
			if err := b.parseSequence(i, column, Vertical); err != nil {
				return nil, err
			}
		}
	}

	if err := b.validateCoverage(); err != nil {
		return nil, err
	}
	return b, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(text string) (*Board, error) {
	return Parse(strings.NewReader(text))
}

// parseSequence scans one row (or column) for clue tokens and registers the
// runs they open. idx is the fixed coordinate of the sequence: the row for
// horizontal scans, the column for vertical ones.
func (b *Board) parseSequence(idx int, cells []string, orient Orientation) error {
	total := 0
	length := 0
	var start Coord

	for pitch, cell := range cells {
		v, ok := parseClue(cell)
		if !ok {
			continue
		}
		if v > 0 {
			if total != 0 {
				if err := b.addRun(start, length, total, orient); err != nil {
					return err
				}
			}
			total = v
			length = 0
			if orient == Vertical {
				start = Coord{X: idx, Y: pitch + 1}
			} else {
				start = Coord{X: pitch + 1, Y: idx}
			}
		} else {
			length++
		}
	}
	if total != 0 {
		return b.addRun(start, length, total, orient)
	}
	return nil
}

// parseClue interprets a cell token. Returns (value, true) for a numeric
// token and (0, false) for a blocking token.
func parseClue(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	for _, r := range cell {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		return 0, false
	}
	return v, true
}

// addRun constructs a run and indexes its cells.
func (b *Board) addRun(start Coord, length, total int, orient Orientation) error {
	if length == 0 {
		return &MalformedPuzzleError{
			Reason: fmt.Sprintf("clue %d declares a run of length zero", total),
			Start:  start,
		}
	}
	run, err := newRun(total, length, start, orient)
	if err != nil {
		return err
	}
	if orient == Horizontal {
		b.Horizontal = append(b.Horizontal, run)
		for _, c := range run.Cells {
			b.hruns[c] = run
		}
	} else {
		b.Vertical = append(b.Vertical, run)
		for _, c := range run.Cells {
			b.vruns[c] = run
		}
	}
	return nil
}

// validateCoverage enforces the board invariant that every playable cell
// belongs to exactly one run of each orientation. Arc consistency resolves
// a cell's perpendicular partner by index lookup, so a one-sided cell
// would fail at solve time; reject it up front instead.
func (b *Board) validateCoverage() error {
	for c := range b.hruns {
		if _, ok := b.vruns[c]; !ok {
			return &MalformedPuzzleError{
				Reason: "cell has a horizontal run but no vertical run",
				Start:  c,
			}
		}
	}
	for c := range b.vruns {
		if _, ok := b.hruns[c]; !ok {
			return &MalformedPuzzleError{
				Reason: "cell has a vertical run but no horizontal run",
				Start:  c,
			}
		}
	}
	return nil
}
