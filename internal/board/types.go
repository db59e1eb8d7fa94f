package board

import "fmt"

// Digit is a cell value in [1,9].
type Digit int

// MinDigit and MaxDigit bound the value domain of a playable cell.
const (
	MinDigit Digit = 1
	MaxDigit Digit = 9
)

// Coord identifies a grid cell by column (X) and row (Y), zero-based.
// Coordinates are assigned during parsing and never recomputed.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Orientation distinguishes horizontal from vertical runs.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Opposite returns the perpendicular orientation.
func (o Orientation) Opposite() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "H"
	}
	return "V"
}

// Combination is a set of distinct digits summing to a run's target,
// stored sorted ascending so that permutations collapse to one value.
type Combination []Digit

// Sum returns the total of the combination's digits.
func (c Combination) Sum() int {
	total := 0
	for _, d := range c {
		total += int(d)
	}
	return total
}

// Run is one maximal horizontal or vertical segment of playable cells
// governed by a sum target and the no-repeated-digit rule.
//
// INVARIANTS (established at construction, never violated afterwards):
//   - len(Cells) == Length, consecutive from Start along Orientation
//   - Combos is non-empty; every element has Length distinct digits
//     summing to Total
type Run struct {
	Total       int
	Length      int
	Orientation Orientation
	Start       Coord
	Cells       []Coord
	Combos      []Combination
}

func (r *Run) String() string {
	return fmt.Sprintf("%s%s total=%d len=%d", r.Orientation, r.Start, r.Total, r.Length)
}

// newRun builds a run and its combination domain. Returns
// MalformedPuzzleError if the (total, length) pair admits no combination.
func newRun(total, length int, start Coord, orient Orientation) (*Run, error) {
	combos := UniqueSums(total, length)
	if len(combos) == 0 {
		return nil, &MalformedPuzzleError{
			Reason: fmt.Sprintf("no digit combinations for total=%d length=%d", total, length),
			Start:  start,
		}
	}
	cells := make([]Coord, length)
	for i := range cells {
		if orient == Horizontal {
			cells[i] = Coord{X: start.X + i, Y: start.Y}
		} else {
			cells[i] = Coord{X: start.X, Y: start.Y + i}
		}
	}
	return &Run{
		Total:       total,
		Length:      length,
		Orientation: orient,
		Start:       start,
		Cells:       cells,
		Combos:      combos,
	}, nil
}

// Board is the parsed puzzle: dimensions, the runs of each orientation in
// declaration order, and the Coordinate→Run index per orientation.
type Board struct {
	Width  int
	Height int

	// Horizontal and Vertical preserve declaration order (row by row,
	// then column by column). Solver passes iterate in this order for
	// deterministic results.
	Horizontal []*Run
	Vertical   []*Run

	hruns map[Coord]*Run
	vruns map[Coord]*Run
}

// RunAt returns the run of the given orientation owning the cell.
func (b *Board) RunAt(c Coord, o Orientation) (*Run, bool) {
	if o == Horizontal {
		r, ok := b.hruns[c]
		return r, ok
	}
	r, ok := b.vruns[c]
	return r, ok
}

// Perpendicular returns the run of the opposite orientation sharing the
// cell. This lookup is what drives arc consistency between the two
// constraints owning a cell.
func (b *Board) Perpendicular(c Coord, o Orientation) (*Run, bool) {
	return b.RunAt(c, o.Opposite())
}

// Playable reports whether the cell belongs to a run.
func (b *Board) Playable(c Coord) bool {
	_, ok := b.hruns[c]
	return ok
}

// CellCount returns the number of playable cells.
func (b *Board) CellCount() int {
	return len(b.hruns)
}

// Runs returns all runs, horizontal before vertical, in declaration order.
func (b *Board) Runs() []*Run {
	runs := make([]*Run, 0, len(b.Horizontal)+len(b.Vertical))
	runs = append(runs, b.Horizontal...)
	runs = append(runs, b.Vertical...)
	return runs
}
