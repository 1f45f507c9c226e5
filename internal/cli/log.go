package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/petri/internal/store"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Database string
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the operation journal",
		Long: `Print the operation journal.

Every create and step appends a journal record: the operation kind, the
board index it touched, and the clock height stamped on the resulting
generation. Records are printed in append order.

Example:
  petri log --db ./petri.db
  petri log --db ./petri.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

// opView is the presentation shape for one journal record.
type opView struct {
	Seq        int64  `json:"seq"`
	OpID       string `json:"op_id"`
	Kind       string `json:"kind"`
	BoardIndex uint64 `json:"board_index"`
	Height     uint64 `json:"height"`
}

func runLog(opts *LogOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ops, err := st.Ops(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list operations", err)
	}

	views := make([]opView, len(ops))
	for i, op := range ops {
		views[i] = opView{
			Seq:        op.Seq,
			OpID:       op.OpID,
			Kind:       string(op.Kind),
			BoardIndex: op.BoardIndex,
			Height:     op.Height,
		}
	}

	if opts.Format == "json" {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(CLIResponse{
			Status: "ok",
			Data:   views,
		})
	}

	for _, v := range views {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\tboard=%d\theight=%d\t%s\n",
			v.Seq, v.Kind, v.BoardIndex, v.Height, v.OpID)
	}
	return nil
}
