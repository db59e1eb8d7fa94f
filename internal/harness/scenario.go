package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: one puzzle and the
// expected solve outcome.
type Scenario struct {
	// Name uniquely identifies this scenario; it also names the golden
	// file when golden comparison is used.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Puzzle is the inline puzzle text. Exactly one of Puzzle and
	// PuzzleFile must be set.
	Puzzle string `yaml:"puzzle,omitempty"`

	// PuzzleFile is a puzzle text file path, relative to the scenario
	// file location.
	PuzzleFile string `yaml:"puzzle_file,omitempty"`

	// Expect describes the required outcome.
	Expect Expect `yaml:"expect"`
}

// Outcome status classes.
const (
	StatusUnique    = "unique"    // converged on a unique full solution
	StatusMultiple  = "multiple"  // full solutions found, uniqueness not established
	StatusPartial   = "partial"   // best-effort partial fallback reported
	StatusFailed    = "failed"    // no solution of any kind within budget
	StatusMalformed = "malformed" // puzzle rejected at construction
)

// Expect holds scenario expectations. Status is required; the remaining
// fields are validated only when set.
type Expect struct {
	// Status is the expected outcome class.
	Status string `yaml:"status"`

	// Solutions is the expected number of recorded full solutions.
	// Zero means "not checked".
	Solutions int `yaml:"solutions,omitempty"`

	// Cells pins individual digits of the reported assignment.
	Cells []CellExpect `yaml:"cells,omitempty"`

	// Remaining is the expected unassigned-cell count (partial outcomes).
	Remaining int `yaml:"remaining,omitempty"`
}

// CellExpect pins one cell of the reported assignment.
type CellExpect struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Digit int `yaml:"digit"`
}

// validStatuses defines the allowed expect.status values.
var validStatuses = []string{StatusUnique, StatusMultiple, StatusPartial, StatusFailed, StatusMalformed}

// LoadScenario reads and parses a scenario YAML file. Puzzle file paths
// are resolved relative to the scenario file. Returns an error if the
// file is malformed, contains unknown fields (typos), or fails
// validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.PuzzleFile != "" && !filepath.IsAbs(scenario.PuzzleFile) {
		scenario.PuzzleFile = filepath.Join(filepath.Dir(path), scenario.PuzzleFile)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Puzzle == "" && s.PuzzleFile == "" {
		return fmt.Errorf("one of puzzle or puzzle_file is required")
	}
	if s.Puzzle != "" && s.PuzzleFile != "" {
		return fmt.Errorf("puzzle and puzzle_file are mutually exclusive")
	}
	if s.PuzzleFile != "" {
		if _, err := os.Stat(s.PuzzleFile); os.IsNotExist(err) {
			return fmt.Errorf("puzzle file not found: %s", s.PuzzleFile)
		}
	}

	if s.Expect.Status == "" {
		return fmt.Errorf("expect.status is required")
	}
	if !isValidStatus(s.Expect.Status) {
		return fmt.Errorf("expect.status %q: must be one of %v", s.Expect.Status, validStatuses)
	}

	for i, cell := range s.Expect.Cells {
		if cell.Digit < 1 || cell.Digit > 9 {
			return fmt.Errorf("expect.cells[%d]: digit must be in [1,9]", i)
		}
	}

	return nil
}

func isValidStatus(status string) bool {
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
