package main

import (
	"github.com/spf13/cobra"

	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
)

func newCancelCmd(cfg *rootConfig) *cobra.Command {
	var processID int32
	var secretKey int32

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Encode a CancelRequest",
		Long: `Encode a CancelRequest frame.

The process id and secret key come from the BackendKeyData message the
server sent on the connection to cancel. The frame must go out on a
fresh connection, not the one running the query.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, cfg, &messages.CancelRequest{
				ProcessID: processID,
				SecretKey: secretKey,
			})
		},
	}

	f := cmd.Flags()
	f.Int32Var(&processID, "process-id", 0, "backend process id")
	f.Int32Var(&secretKey, "secret-key", 0, "backend secret key")
	_ = cmd.MarkFlagRequired("process-id")
	_ = cmd.MarkFlagRequired("secret-key")

	return cmd
}
