package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fabian0594/kakuro/internal/board"
)

const puzzle = "XX,XX,XX\n03,00,00\n07,00,00\n\nXX,04,06\nXX,00,00\nXX,00,00"

func TestGrid_FullAssignment(t *testing.T) {
	b, err := board.ParseString(puzzle)
	require.NoError(t, err)

	cells := map[board.Coord]board.Digit{
		{X: 1, Y: 1}: 1,
		{X: 2, Y: 1}: 2,
		{X: 1, Y: 2}: 3,
		{X: 2, Y: 2}: 4,
	}

	assert.Equal(t, "# # # \n# 1 2 \n# 3 4 \n", Grid(b, cells))
}

func TestGrid_PartialAssignment(t *testing.T) {
	b, err := board.ParseString(puzzle)
	require.NoError(t, err)

	cells := map[board.Coord]board.Digit{
		{X: 1, Y: 1}: 1,
	}

	assert.Equal(t, "# # # \n# 1 X \n# X X \n", Grid(b, cells))
}

func TestGrid_EmptyAssignment(t *testing.T) {
	b, err := board.ParseString(puzzle)
	require.NoError(t, err)

	want := "# # # \n# X X \n# X X \n"
	assert.Equal(t, want, Grid(b, nil))
	assert.Equal(t, want, Grid(b, map[board.Coord]board.Digit{}))
}
