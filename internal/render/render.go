// Package render produces the textual grid for a (possibly partial)
// solution. Presentation only: assigned cells show their digit, playable
// unassigned cells show "X", blocked cells show "#".
package render

import (
	"fmt"
	"strings"

	"github.com/Fabian0594/kakuro/internal/board"
)

// Placeholders used for cells without a digit.
const (
	Unassigned = "X"
	Blocked    = "#"
)

// Grid renders the assignment over the board's dimensions, one line per
// row, cells separated by single spaces.
func Grid(b *board.Board, cells map[board.Coord]board.Digit) string {
	var out strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := board.Coord{X: x, Y: y}
			switch {
			case cells != nil && hasCell(cells, c):
				fmt.Fprintf(&out, "%d ", cells[c])
			case b.Playable(c):
				out.WriteString(Unassigned + " ")
			default:
				out.WriteString(Blocked + " ")
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}

func hasCell(cells map[board.Coord]board.Digit, c board.Coord) bool {
	_, ok := cells[c]
	return ok
}
