package main

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gfx.cafe/gfx/pgfe/lib/fe"
	"gfx.cafe/gfx/pgfe/lib/pnet"
)

type rootConfig struct {
	output  string
	hex     bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	cfg := &rootConfig{}
	cmd := &cobra.Command{
		Use:           "pgfe",
		Short:         "Compose PostgreSQL frontend messages",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.AddCommand(newComposeCmd(cfg))
	cmd.AddCommand(newQueryCmd(cfg))
	cmd.AddCommand(newStartupCmd(cfg))
	cmd.AddCommand(newCancelCmd(cfg))

	f := cmd.PersistentFlags()
	f.StringVarP(&cfg.output, "output", "o", "-", "write frames to a file instead of stdout")
	f.BoolVar(&cfg.hex, "hex", false, "hex dump frames instead of writing raw bytes")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log encoded frames to stderr")

	return cmd
}

func (c *rootConfig) logger() (*zap.Logger, error) {
	if c.verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// emit encodes msgs and writes the frames to the configured output.
// Frames go to stdout by default; logs always go to stderr so piping
// the raw bytes stays safe.
func emit(cmd *cobra.Command, cfg *rootConfig, msgs ...fe.Message) (err error) {
	log, lerr := cfg.logger()
	if lerr != nil {
		return errors.Wrap(lerr, "logger")
	}
	defer func() { _ = log.Sync() }()

	var out io.Writer = cmd.OutOrStdout()
	if cfg.output != "" && cfg.output != "-" {
		file, ferr := os.Create(cfg.output)
		if ferr != nil {
			return errors.Wrap(ferr, "open output")
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "close output")
			}
		}()
		out = file
	}
	if cfg.hex {
		dump := hex.Dumper(out)
		defer func() {
			if cerr := dump.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "flush hex dump")
			}
		}()
		out = dump
	}

	return pnet.NewSender(out, log).Send(msgs...)
}
