package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/petri/internal/registry"
	"github.com/roach88/petri/internal/store"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
	Database string
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <index>",
		Short: "Print the board stored at an index",
		Long: `Print the board stored at an index.

Read-only: the stored generation and the clock are left untouched.
Fails with INDEX_NOT_FOUND if the index was never assigned.

Example:
  petri get --db ./petri.db 0
  petri get --db ./petri.db 3 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runGet(opts *GetOptions, arg string, cmd *cobra.Command) error {
	index, err := parseIndex(arg)
	if err != nil {
		return err
	}

	out := outputFor(opts.RootOptions, cmd)
	return withRegistry(cmd.Context(), opts.RootOptions, opts.Database, func(reg *registry.Registry, st *store.Store) error {
		gen, err := reg.Get(cmd.Context(), index)
		if registry.IsNotFound(err) {
			_ = out.Error(string(registry.ErrCodeIndexNotFound), err.Error())
			return WrapExitError(ExitFailure, "board not found", err)
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to get board", err)
		}
		return out.Success(newBoardView(index, gen))
	})
}
