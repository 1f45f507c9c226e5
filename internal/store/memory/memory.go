// Package memory provides an in-memory registry backend. It mirrors the
// SQLite store's append/replace-by-index contract without durability and
// is used by tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/roach88/petri/internal/board"
)

// Store holds generations in an ordered in-process slice.
//
// Thread-safety: guarded by a mutex so tests may probe it concurrently,
// although the registry itself assumes externally serialized operations.
type Store struct {
	mu   sync.Mutex
	gens []board.Generation
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Append stores gen under the next sequential index.
func (s *Store) Append(_ context.Context, gen board.Generation) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := uint64(len(s.gens))
	s.gens = append(s.gens, cloned(gen))
	return index, nil
}

// Get returns the generation at index, if assigned. The returned board
// is a copy; like the SQLite backend, reads never alias stored state.
func (s *Store) Get(_ context.Context, index uint64) (board.Generation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= uint64(len(s.gens)) {
		return board.Generation{}, false, nil
	}
	return cloned(s.gens[index]), true, nil
}

// Replace overwrites the entry at index in place.
func (s *Store) Replace(_ context.Context, index uint64, gen board.Generation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= uint64(len(s.gens)) {
		return false, nil
	}
	s.gens[index] = cloned(gen)
	return true, nil
}

// cloned returns a Generation whose board does not alias gen's.
func cloned(gen board.Generation) board.Generation {
	gen.Board = gen.Board.Clone()
	return gen
}

// Len returns the number of stored generations.
func (s *Store) Len(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint64(len(s.gens)), nil
}
