package store

import (
	"context"
	"fmt"
)

// OpKind labels a journal entry.
type OpKind string

const (
	// OpCreate records a board append.
	OpCreate OpKind = "create"

	// OpStep records an in-place replacement by the step operation.
	OpStep OpKind = "step"
)

// Op is one journal record: which operation touched which board, and the
// clock height stamped on the resulting generation. OpID is a UUID
// assigned at write time for cross-system correlation.
type Op struct {
	Seq        int64
	OpID       string
	Kind       OpKind
	BoardIndex uint64
	Height     uint64
}

// Ops returns the full operation journal in append order.
func (s *Store) Ops(ctx context.Context) ([]Op, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, op_id, kind, board_idx, height
		FROM ops
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list ops: %w", err)
	}
	defer rows.Close()

	var ops []Op
	for rows.Next() {
		var op Op
		var kind string
		if err := rows.Scan(&op.Seq, &op.OpID, &kind, &op.BoardIndex, &op.Height); err != nil {
			return nil, fmt.Errorf("list ops: scan: %w", err)
		}
		op.Kind = OpKind(kind)
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ops: %w", err)
	}
	return ops, nil
}
