package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/petri/internal/board"
	"github.com/roach88/petri/internal/registry"
	"github.com/roach88/petri/internal/store"
)

// withRegistry opens the store at dbPath, samples the persisted clock
// once, and runs fn against a registry pinned to that reading. One CLI
// invocation is one externally-serialized operation, so a single clock
// sample per invocation is exactly the environment contract the core
// expects.
func withRegistry(ctx context.Context, opts *RootOptions, dbPath string, fn func(*registry.Registry, *store.Store) error) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	height, err := st.Height(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read clock", err)
	}

	regOpts := []registry.Option{}
	if opts.Verbose {
		regOpts = append(regOpts, registry.WithSink(registry.SlogSink{}))
	}

	reg := registry.New(st, board.ClockAt(height), regOpts...)
	return fn(reg, st)
}

// boardView is the presentation shape for a stored generation.
type boardView struct {
	Index         uint64   `json:"index"`
	CurrentHeight uint64   `json:"current_height"`
	PrevHeight    uint64   `json:"prev_height"`
	Field         string   `json:"field"` // base64 packed buffer
	Rows          []string `json:"rows"`
}

func newBoardView(index uint64, gen board.Generation) boardView {
	return boardView{
		Index:         index,
		CurrentHeight: gen.CurrentHeight,
		PrevHeight:    gen.PrevHeight,
		Field:         base64.StdEncoding.EncodeToString(gen.Board.Bytes()),
		Rows:          gen.Board.Rows(),
	}
}

// String renders the text-format view.
func (v boardView) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "board %d (height %d, prev %d)\n", v.Index, v.CurrentHeight, v.PrevHeight)
	sb.WriteString(strings.Join(v.Rows, "\n"))
	return sb.String()
}

// parseIndex parses a board index argument.
func parseIndex(arg string) (uint64, error) {
	index, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid board index %q", arg))
	}
	return index, nil
}

// outputFor builds the formatter for a command's stdout.
func outputFor(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}
}
