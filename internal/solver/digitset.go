package solver

import (
	"math/bits"

	"github.com/Fabian0594/kakuro/internal/board"
)

// DigitSet is a set of digits 1..9 as a bitmask. The zero value is the
// empty set. Iteration order is always ascending, which keeps every
// propagation and enumeration decision deterministic.
type DigitSet uint16

// SetOf builds a DigitSet from the given digits.
func SetOf(digits ...board.Digit) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s = s.Add(d)
	}
	return s
}

// ComboSet builds a DigitSet from a combination's digits.
func ComboSet(c board.Combination) DigitSet {
	var s DigitSet
	for _, d := range c {
		s = s.Add(d)
	}
	return s
}

// Add returns the set with d included.
func (s DigitSet) Add(d board.Digit) DigitSet {
	return s | 1<<uint(d)
}

// Remove returns the set with d excluded.
func (s DigitSet) Remove(d board.Digit) DigitSet {
	return s &^ (1 << uint(d))
}

// Has reports membership of d.
func (s DigitSet) Has(d board.Digit) bool {
	return s&(1<<uint(d)) != 0
}

// Union returns the set union.
func (s DigitSet) Union(o DigitSet) DigitSet {
	return s | o
}

// Intersect returns the set intersection.
func (s DigitSet) Intersect(o DigitSet) DigitSet {
	return s & o
}

// Diff returns the digits in s that are not in o.
func (s DigitSet) Diff(o DigitSet) DigitSet {
	return s &^ o
}

// Subset reports whether every digit of s is in o.
func (s DigitSet) Subset(o DigitSet) bool {
	return s&o == s
}

// Len returns the number of digits in the set.
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Single returns the sole member of a singleton set.
func (s DigitSet) Single() (board.Digit, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return board.Digit(bits.TrailingZeros16(uint16(s))), true
}

// Digits returns the members in ascending order.
func (s DigitSet) Digits() []board.Digit {
	out := make([]board.Digit, 0, s.Len())
	for d := board.MinDigit; d <= board.MaxDigit; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
