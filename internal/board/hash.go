package board

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Domain prefixes for content-addressed identity. The version suffix
// enables future algorithm migration.
const (
	DomainPuzzle   = "kakuro/puzzle/v1"
	DomainSolution = "kakuro/solution/v1"
)

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data). The null separator prevents
// domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// PuzzleHash computes a content-addressed ID for puzzle text. Line endings
// and surrounding whitespace are normalized so the same puzzle hashes the
// same regardless of how the file was saved.
func PuzzleHash(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	normalized := strings.TrimSpace(strings.Join(lines, "\n"))
	return hashWithDomain(DomainPuzzle, []byte(normalized))
}

// SolutionHash computes a content-addressed ID for an assignment. The full
// coordinate→digit mapping is hashed in canonical (row-major) order, so two
// structurally different assignments never collide even when their digit
// multisets coincide.
func SolutionHash(cells map[Coord]Digit) string {
	coords := make([]Coord, 0, len(cells))
	for c := range cells {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})

	var b strings.Builder
	for _, c := range coords {
		fmt.Fprintf(&b, "%d,%d=%d;", c.X, c.Y, cells[c])
	}
	return hashWithDomain(DomainSolution, []byte(b.String()))
}
