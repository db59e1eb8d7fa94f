package solver

import "github.com/Fabian0594/kakuro/internal/board"

// Record is a snapshot of the assignment at a point where search found a
// complete solution or a best-so-far partial one. Records are content-
// addressed by the full coordinate→digit mapping, so logically identical
// completions reached via different search paths collapse to one record.
type Record struct {
	Hash      string
	Cells     map[board.Coord]board.Digit
	Remaining int // unassigned playable cells; 0 for a full solution
}

// Partial reports whether the record is an incomplete fallback snapshot.
func (r Record) Partial() bool {
	return r.Remaining > 0
}

// RecordSet deduplicates solution records and preserves insertion order,
// which keeps reported solutions deterministic across runs.
type RecordSet struct {
	byHash  map[string]int
	records []Record
}

// NewRecordSet creates an empty record set.
func NewRecordSet() *RecordSet {
	return &RecordSet{byHash: make(map[string]int)}
}

// Add registers a snapshot at the given remaining-cell count. Returns true
// if the snapshot was new; an already-known hash is ignored.
func (rs *RecordSet) Add(cells map[board.Coord]board.Digit, remaining int) bool {
	hash := board.SolutionHash(cells)
	if _, ok := rs.byHash[hash]; ok {
		return false
	}
	rs.byHash[hash] = len(rs.records)
	rs.records = append(rs.records, Record{
		Hash:      hash,
		Cells:     cells,
		Remaining: remaining,
	})
	return true
}

// Len returns the number of distinct records.
func (rs *RecordSet) Len() int {
	return len(rs.records)
}

// Records returns all records in insertion order.
func (rs *RecordSet) Records() []Record {
	out := make([]Record, len(rs.records))
	copy(out, rs.records)
	return out
}

// Full returns the complete solutions in insertion order.
func (rs *RecordSet) Full() []Record {
	var out []Record
	for _, r := range rs.records {
		if !r.Partial() {
			out = append(out, r)
		}
	}
	return out
}

// BestPartial returns the partial record with the smallest remaining
// count, earliest insertion winning ties.
func (rs *RecordSet) BestPartial() (Record, bool) {
	best := Record{}
	found := false
	for _, r := range rs.records {
		if !r.Partial() {
			continue
		}
		if !found || r.Remaining < best.Remaining {
			best = r
			found = true
		}
	}
	return best, found
}
