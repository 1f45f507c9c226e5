// Package store provides SQLite-backed durable storage for the board
// registry.
//
// The store holds three tables:
//   - boards: the dense index-addressed sequence of generations; rows are
//     appended once and afterwards only replaced in place
//   - clock: the single-row persisted external tick counter
//   - ops: an append-only journal of registry operations for audit and
//     observability
//
// # Critical Patterns
//
//   - Indices are dense and assigned inside the append transaction from
//     the current row count, so they are never reused or reordered.
//   - Replace reports not-found through zero rows affected; the registry
//     turns that into INDEX_NOT_FOUND. The store never guesses.
//   - The clock row is created by Open and only ever incremented, so
//     readings are non-decreasing across invocations.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
