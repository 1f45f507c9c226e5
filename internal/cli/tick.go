package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/petri/internal/store"
)

// TickOptions holds flags for the tick command.
type TickOptions struct {
	*RootOptions
	Database string
	N        uint64
}

// NewTickCommand creates the tick command.
func NewTickCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TickOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tick",
		Short: "Advance the external clock",
		Long: `Advance the external clock.

The registry stamps every created or stepped generation with the clock
height observed at that moment. The clock never moves on its own; the
hosting environment advances it with this command. Steps taken between
two ticks collapse into a single prev-height hop.

Example:
  petri tick --db ./petri.db
  petri tick --db ./petri.db --n 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTick(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().Uint64Var(&opts.N, "n", 1, "number of ticks to advance")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTick(opts *TickOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	height, err := st.Tick(cmd.Context(), opts.N)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to advance clock", err)
	}
	slog.Debug("clock advanced", "n", opts.N, "height", height)

	out := outputFor(opts.RootOptions, cmd)
	return out.Success(fmt.Sprintf("clock height %d", height))
}
