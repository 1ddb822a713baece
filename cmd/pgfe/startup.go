package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
)

func newStartupCmd(cfg *rootConfig) *cobra.Command {
	var user string
	var database string
	var params []string

	cmd := &cobra.Command{
		Use:   "startup",
		Short: "Encode a StartupMessage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := parseStartupParams(params)
			if err != nil {
				return err
			}

			parameters := []messages.StartupParameter{
				{Name: "user", Value: user},
			}
			if database != "" {
				parameters = append(parameters, messages.StartupParameter{
					Name:  "database",
					Value: database,
				})
			}
			parameters = append(parameters, extra...)

			return emit(cmd, cfg, &messages.StartupMessage{
				Parameters: parameters,
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&user, "user", "u", "", "session user (required)")
	f.StringVarP(&database, "database", "d", "", "target database")
	f.StringArrayVar(&params, "param", nil, "extra startup parameter as name=value (repeatable)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

// parseStartupParams splits each name=value pair, keeping flag order.
func parseStartupParams(pairs []string) ([]messages.StartupParameter, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make([]messages.StartupParameter, 0, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, errors.Newf("startup: malformed --param %q, want name=value", pair)
		}
		out = append(out, messages.StartupParameter{Name: name, Value: value})
	}
	return out, nil
}
