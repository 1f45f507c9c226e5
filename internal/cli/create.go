package cli

import (
	"encoding/base64"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/petri/internal/board"
	"github.com/roach88/petri/internal/pattern"
	"github.com/roach88/petri/internal/registry"
	"github.com/roach88/petri/internal/store"
)

// CreateOptions holds flags for the create command.
type CreateOptions struct {
	*RootOptions
	Database string
	Field    string
	File     string
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CreateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Store a new board and print its index",
		Long: `Store a new board and print its index.

The board arrives either as a base64-encoded packed field buffer
(--field) or as a YAML pattern file (--file). The decoded buffer must be
exactly 32 bytes; anything else is rejected and nothing is stored. The
new board is stamped with the current clock height and appended at the
next sequential index.

Example:
  petri create --db ./petri.db --field GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=
  petri create --db ./petri.db --file patterns/hook.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Field, "field", "", "base64-encoded packed field buffer")
	cmd.Flags().StringVar(&opts.File, "file", "", "path to a YAML pattern file")
	_ = cmd.MarkFlagRequired("db")
	cmd.MarkFlagsMutuallyExclusive("field", "file")
	cmd.MarkFlagsOneRequired("field", "file")

	return cmd
}

func runCreate(opts *CreateOptions, cmd *cobra.Command) error {
	field, err := resolveField(opts)
	if err != nil {
		return err
	}

	out := outputFor(opts.RootOptions, cmd)
	return withRegistry(cmd.Context(), opts.RootOptions, opts.Database, func(reg *registry.Registry, st *store.Store) error {
		index, err := reg.Create(cmd.Context(), field)
		if board.IsInvalidLength(err) {
			_ = out.Error(string(board.ErrCodeInvalidFieldLength), err.Error())
			return WrapExitError(ExitFailure, "board rejected", err)
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to create board", err)
		}

		gen, err := reg.Get(cmd.Context(), index)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read back board", err)
		}
		slog.Debug("board created", "index", index, "height", gen.CurrentHeight)
		return out.Success(newBoardView(index, gen))
	})
}

// resolveField produces the packed buffer from whichever source flag was
// given. Length validation stays with the core; only transport decoding
// happens here.
func resolveField(opts *CreateOptions) ([]byte, error) {
	if opts.File != "" {
		p, err := pattern.Load(opts.File)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load pattern", err)
		}
		slog.Debug("pattern loaded", "name", p.Name, "rows", len(p.Rows))
		return p.Field(), nil
	}

	field, err := base64.StdEncoding.DecodeString(opts.Field)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid --field base64", err)
	}
	return field, nil
}
