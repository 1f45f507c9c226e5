package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/petri/internal/registry"
	"github.com/roach88/petri/internal/store"
)

// StepOptions holds flags for the step command.
type StepOptions struct {
	*RootOptions
	Database string
}

// NewStepCommand creates the step command.
func NewStepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "step <index>",
		Short: "Advance a stored board by one generation",
		Long: `Advance a stored board by one generation.

Computes the successor of the generation at the index and overwrites the
stored entry in place; the index keeps addressing the same board line.
The successor is stamped with the current clock height. Fails with
INDEX_NOT_FOUND if the index was never assigned, leaving the registry
unmodified.

Example:
  petri step --db ./petri.db 0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStep(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runStep(opts *StepOptions, arg string, cmd *cobra.Command) error {
	index, err := parseIndex(arg)
	if err != nil {
		return err
	}

	out := outputFor(opts.RootOptions, cmd)
	return withRegistry(cmd.Context(), opts.RootOptions, opts.Database, func(reg *registry.Registry, st *store.Store) error {
		gen, err := reg.Advance(cmd.Context(), index)
		if registry.IsNotFound(err) {
			_ = out.Error(string(registry.ErrCodeIndexNotFound), err.Error())
			return WrapExitError(ExitFailure, "board not found", err)
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to step board", err)
		}
		slog.Debug("board stepped", "index", index,
			"height", gen.CurrentHeight, "prev_height", gen.PrevHeight)
		return out.Success(newBoardView(index, gen))
	})
}
