package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/petri/internal/board"
)

// Append inserts gen at the next sequential index and returns that index.
//
// The index is computed from the current row count inside the same
// transaction that inserts the row, so indices stay dense and are never
// reused even across process restarts. A journal row is written in the
// same transaction.
func (s *Store) Append(ctx context.Context, gen board.Generation) (uint64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("append board: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var count uint64
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM boards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("append board: count: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO boards (idx, field, current_height, prev_height)
		VALUES (?, ?, ?, ?)
	`,
		count,
		gen.Board.Bytes(),
		gen.CurrentHeight,
		gen.PrevHeight,
	)
	if err != nil {
		return 0, fmt.Errorf("append board: insert: %w", err)
	}

	if err := journalTx(ctx, tx, OpCreate, count, gen.CurrentHeight); err != nil {
		return 0, fmt.Errorf("append board: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("append board: commit: %w", err)
	}

	return count, nil
}

// Get returns the generation at index. found=false means the index was
// never assigned.
func (s *Store) Get(ctx context.Context, index uint64) (board.Generation, bool, error) {
	var (
		field         []byte
		currentHeight uint64
		prevHeight    uint64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT field, current_height, prev_height
		FROM boards
		WHERE idx = ?
	`, index).Scan(&field, &currentHeight, &prevHeight)
	if errors.Is(err, sql.ErrNoRows) {
		return board.Generation{}, false, nil
	}
	if err != nil {
		return board.Generation{}, false, fmt.Errorf("get board: %w", err)
	}

	b, err := board.FromBytes(field)
	if err != nil {
		// A stored field of the wrong length means the database was
		// tampered with; surface it rather than guessing.
		return board.Generation{}, false, fmt.Errorf("get board: corrupt field at idx %d: %w", index, err)
	}

	return board.Generation{
		Board:         b,
		CurrentHeight: currentHeight,
		PrevHeight:    prevHeight,
	}, true, nil
}

// Replace overwrites the entry at index in place. replaced=false means
// the index was never assigned; the journal is only written when a row
// was actually replaced.
func (s *Store) Replace(ctx context.Context, index uint64, gen board.Generation) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("replace board: begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE boards
		SET field = ?, current_height = ?, prev_height = ?
		WHERE idx = ?
	`,
		gen.Board.Bytes(),
		gen.CurrentHeight,
		gen.PrevHeight,
		index,
	)
	if err != nil {
		return false, fmt.Errorf("replace board: update: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("replace board: rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	if err := journalTx(ctx, tx, OpStep, index, gen.CurrentHeight); err != nil {
		return false, fmt.Errorf("replace board: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("replace board: commit: %w", err)
	}

	return true, nil
}

// Len returns the number of stored generations.
func (s *Store) Len(ctx context.Context) (uint64, error) {
	var count uint64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("board count: %w", err)
	}
	return count, nil
}

// journalTx appends an operation record inside an existing transaction.
func journalTx(ctx context.Context, tx *sql.Tx, kind OpKind, index, height uint64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO ops (op_id, kind, board_idx, height)
		VALUES (?, ?, ?, ?)
	`,
		uuid.NewString(),
		string(kind),
		index,
		height,
	)
	if err != nil {
		return fmt.Errorf("journal op: %w", err)
	}
	return nil
}
