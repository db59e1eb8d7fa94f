// Package store provides the durable solve archive.
//
// Every solve can be recorded with its puzzle hash, solution hash,
// uniqueness flag, search diagnostics, and rendered grid. Uses SQLite with
// WAL mode for concurrent read access; writes are idempotent per
// (puzzle, solution) pair so re-solving the same puzzle never duplicates
// an archive entry.
package store
