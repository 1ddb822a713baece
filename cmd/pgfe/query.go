package main

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
)

func newQueryCmd(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "query [sql]",
		Short: "Encode a simple Query message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readQuerySQL(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			query := messages.Query(sql)
			return emit(cmd, cfg, &query)
		},
	}
}

// readQuerySQL returns the query text from args[0] or by reading stdin.
func readQuerySQL(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	return strings.TrimSpace(string(data)), nil
}
