package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/petri/internal/store"
)

// InitOptions holds flags for the init command.
type InitOptions struct {
	*RootOptions
	Database string
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &InitOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an empty board registry",
		Long: `Initialize an empty board registry.

Creates the SQLite database (if it does not exist), applies the schema,
and seeds the external clock at height 0. Safe to run more than once;
an already-initialized registry is left untouched.

Example:
  petri init --db ./petri.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runInit(opts *InitOptions, cmd *cobra.Command) error {
	slog.Info("initializing registry", "path", opts.Database)

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to initialize registry", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	height, err := st.Height(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read clock", err)
	}

	out := outputFor(opts.RootOptions, cmd)
	return out.Success(fmt.Sprintf("registry ready at %s (clock height %d)", opts.Database, height))
}
