package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"gfx.cafe/gfx/pgfe/lib/script"
)

func newComposeCmd(cfg *rootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "compose [script.yaml]",
		Short: "Encode a YAML message script",
		Long: `Encode a YAML message script into wire frames.

The script is a sequence of steps, one message each:

    - startup:
        user: postgres
        database: app
    - query: SELECT 1
    - terminate: {}

Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "open script")
				}
				defer func() { _ = file.Close() }()
				in = file
			}

			msgs, err := script.Load(in)
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				return nil
			}
			return emit(cmd, cfg, msgs...)
		},
	}
}
