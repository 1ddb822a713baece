package main

import (
	"bytes"
	"strings"
	"testing"

	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
)

func TestQueryCmdRegistered(t *testing.T) {
	t.Parallel()
	root := newRootCmd()
	for _, sub := range root.Commands() {
		if sub.Name() == "query" {
			return
		}
	}
	t.Error("query subcommand not registered on root command")
}

func TestQueryFrame(t *testing.T) {
	t.Parallel()
	out, err := runRoot(t, nil, "query", "SELECT 1")
	if err != nil {
		t.Fatal(err)
	}
	query := messages.Query("SELECT 1")
	if want := encodeFrames(t, &query); !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got %x, want %x", out.Bytes(), want)
	}
}

func TestQueryFromStdin(t *testing.T) {
	t.Parallel()
	out, err := runRoot(t, strings.NewReader("SELECT 2\n"), "query")
	if err != nil {
		t.Fatal(err)
	}
	query := messages.Query("SELECT 2")
	if want := encodeFrames(t, &query); !bytes.Equal(out.Bytes(), want) {
		t.Errorf("got %x, want %x", out.Bytes(), want)
	}
}

func TestReadQuerySQLFromArg(t *testing.T) {
	t.Parallel()
	got, err := readQuerySQL([]string{"SELECT 1"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "SELECT 1" {
		t.Errorf("got %q, want %q", got, "SELECT 1")
	}
}

func TestReadQuerySQLStdinTrimmed(t *testing.T) {
	t.Parallel()
	got, err := readQuerySQL(nil, strings.NewReader("  SELECT 1  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "SELECT 1" {
		t.Errorf("got %q, want %q", got, "SELECT 1")
	}
}

func TestReadQuerySQLArgWinsOverStdin(t *testing.T) {
	t.Parallel()
	got, err := readQuerySQL([]string{"SELECT 1"}, strings.NewReader("SELECT 2"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "SELECT 1" {
		t.Errorf("got %q, want %q", got, "SELECT 1")
	}
}
