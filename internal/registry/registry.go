package registry

import (
	"context"
	"fmt"

	"github.com/roach88/petri/internal/board"
)

// Backend is the durable container behind the registry: an ordered
// append/replace-by-index collection of generations keyed by a dense
// uint64 index. Implemented by the SQLite store (production) and the
// memory store (tests, ephemeral runs).
type Backend interface {
	// Append stores gen under the next sequential index and returns it.
	Append(ctx context.Context, gen board.Generation) (uint64, error)

	// Get returns the generation at index. found=false means the index
	// was never assigned; err is reserved for storage failures.
	Get(ctx context.Context, index uint64) (gen board.Generation, found bool, err error)

	// Replace overwrites the entry at index in place. replaced=false
	// means the index was never assigned.
	Replace(ctx context.Context, index uint64, gen board.Generation) (replaced bool, err error)

	// Len returns the number of stored generations.
	Len(ctx context.Context) (uint64, error)
}

// Registry exposes the externally callable board operations over an
// injected backend, clock, and diagnostic sink.
type Registry struct {
	backend Backend
	clock   board.Clock
	sink    Sink
}

// Option configures a Registry.
type Option func(*Registry)

// WithSink installs a diagnostic sink. The default sink discards output.
func WithSink(sink Sink) Option {
	return func(r *Registry) {
		r.sink = sink
	}
}

// New creates a Registry over the given backend and external clock.
func New(backend Backend, clock board.Clock, opts ...Option) *Registry {
	r := &Registry{
		backend: backend,
		clock:   clock,
		sink:    NopSink{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create wraps a packed field buffer in a fresh generation stamped with
// the current clock reading and appends it at the next sequential index.
//
// The buffer must be exactly board.FieldLen bytes; rejection is
// all-or-nothing, no entry is created.
func (r *Registry) Create(ctx context.Context, field []byte) (uint64, error) {
	b, err := board.FromBytes(field)
	if err != nil {
		return 0, err
	}
	r.sink.Rows("board created", b.Rows())

	gen := board.NewGeneration(b, r.clock)
	index, err := r.backend.Append(ctx, gen)
	if err != nil {
		return 0, fmt.Errorf("create board: %w", err)
	}
	return index, nil
}

// Get returns the generation at index, read-only.
func (r *Registry) Get(ctx context.Context, index uint64) (board.Generation, error) {
	gen, found, err := r.backend.Get(ctx, index)
	if err != nil {
		return board.Generation{}, fmt.Errorf("get board: %w", err)
	}
	if !found {
		return board.Generation{}, NewNotFoundError(index)
	}
	r.sink.Rows("board", gen.Board.Rows())
	return gen, nil
}

// Advance steps the generation at index once and overwrites the stored
// entry in place with the successor. This is the only replacing
// operation. On INDEX_NOT_FOUND the registry is left unmodified.
func (r *Registry) Advance(ctx context.Context, index uint64) (board.Generation, error) {
	gen, found, err := r.backend.Get(ctx, index)
	if err != nil {
		return board.Generation{}, fmt.Errorf("advance board: %w", err)
	}
	if !found {
		return board.Generation{}, NewNotFoundError(index)
	}
	r.sink.Rows("old board", gen.Board.Rows())

	next := gen.Step(r.clock)

	replaced, err := r.backend.Replace(ctx, index, next)
	if err != nil {
		return board.Generation{}, fmt.Errorf("advance board: %w", err)
	}
	if !replaced {
		return board.Generation{}, NewNotFoundError(index)
	}
	r.sink.Rows("new board", next.Board.Rows())
	return next, nil
}
