package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fabian0594/kakuro/internal/board"
)

func TestDigitSet_Membership(t *testing.T) {
	s := SetOf(1, 5, 9)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(1))
	assert.True(t, s.Has(5))
	assert.True(t, s.Has(9))
	assert.False(t, s.Has(2))

	s = s.Add(2)
	assert.True(t, s.Has(2))
	assert.Equal(t, 4, s.Len())

	s = s.Remove(5)
	assert.False(t, s.Has(5))
	assert.Equal(t, 3, s.Len())

	// Removing an absent digit is a no-op.
	assert.Equal(t, s, s.Remove(5))
}

func TestDigitSet_ZeroValueIsEmpty(t *testing.T) {
	var s DigitSet
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Digits())
	_, ok := s.Single()
	assert.False(t, ok)
}

func TestDigitSet_SetOperations(t *testing.T) {
	a := SetOf(1, 2, 3)
	b := SetOf(2, 3, 4)

	assert.Equal(t, SetOf(1, 2, 3, 4), a.Union(b))
	assert.Equal(t, SetOf(2, 3), a.Intersect(b))
	assert.Equal(t, SetOf(1), a.Diff(b))
	assert.Equal(t, SetOf(4), b.Diff(a))

	assert.True(t, SetOf(2, 3).Subset(a))
	assert.False(t, b.Subset(a))
	assert.True(t, DigitSet(0).Subset(a), "empty set is a subset of anything")
}

func TestDigitSet_Single(t *testing.T) {
	d, ok := SetOf(7).Single()
	require.True(t, ok)
	assert.Equal(t, board.Digit(7), d)

	_, ok = SetOf(3, 7).Single()
	assert.False(t, ok)
}

func TestDigitSet_DigitsAscending(t *testing.T) {
	s := SetOf(9, 4, 1, 6)
	assert.Equal(t, []board.Digit{1, 4, 6, 9}, s.Digits())
}

func TestComboSet(t *testing.T) {
	s := ComboSet(board.Combination{1, 5, 9})
	assert.Equal(t, SetOf(1, 5, 9), s)
}
