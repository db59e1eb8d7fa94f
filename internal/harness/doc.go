// Package harness runs conformance scenarios against the solver.
//
// A scenario is a YAML file pairing a puzzle (inline or by file reference)
// with expectations about the outcome: the status class (unique, multiple,
// partial, failed, malformed), the number of recorded solutions, and
// individual cell values. The rendered grid of the reported solution can
// additionally be compared against a golden file.
//
// Scenarios keep solver behavior pinned end to end: the same files drive
// `go test` (via RunWithGolden) and the CLI `test` command.
package harness
