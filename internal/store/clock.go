package store

import (
	"context"
	"fmt"
)

// Height returns the persisted external clock reading.
//
// The row is seeded at 0 by Open and only ever incremented by Tick, so
// readings are non-decreasing across invocations - the only property the
// core requires of its clock source.
func (s *Store) Height(ctx context.Context) (uint64, error) {
	var height uint64
	if err := s.db.QueryRowContext(ctx, `SELECT height FROM clock WHERE id = 0`).Scan(&height); err != nil {
		return 0, fmt.Errorf("clock height: %w", err)
	}
	return height, nil
}

// Tick advances the persisted clock by n and returns the new height.
func (s *Store) Tick(ctx context.Context, n uint64) (uint64, error) {
	var height uint64
	err := s.db.QueryRowContext(ctx, `
		UPDATE clock SET height = height + ? WHERE id = 0
		RETURNING height
	`, n).Scan(&height)
	if err != nil {
		return 0, fmt.Errorf("clock tick: %w", err)
	}
	return height, nil
}
