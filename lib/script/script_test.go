package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gfx.cafe/gfx/pgfe/lib/fe"
	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
	"gfx.cafe/gfx/pgfe/lib/oid"
)

func TestLoad(t *testing.T) {
	msgs, err := Load(strings.NewReader(`
- startup:
    user: postgres
    database: app
- parse:
    statement: s1
    query: SELECT $1
    parameter_types: [25]
- bind:
    statement: s1
    parameter_values: ["hello", null]
- describe:
    portal: ""
- execute:
    max_rows: 10
- sync: {}
`))
	require.NoError(t, err)
	require.Equal(t, []fe.Message{
		&messages.StartupMessage{Parameters: []messages.StartupParameter{
			{Name: "user", Value: "postgres"},
			{Name: "database", Value: "app"},
		}},
		&messages.Parse{
			Statement:      "s1",
			Query:          "SELECT $1",
			ParameterTypes: []oid.Oid{oid.Text},
		},
		&messages.Bind{
			Statement:       "s1",
			ParameterValues: [][]byte{[]byte("hello"), nil},
		},
		&messages.Describe{Which: messages.WhichPortal},
		&messages.Execute{MaxRows: 10},
		&messages.Sync{},
	}, msgs)
}

func TestLoad_CopySteps(t *testing.T) {
	msgs, err := Load(strings.NewReader(`
- query: COPY t FROM STDIN
- copy_data: "1\thello\n"
- copy_done: {}
`))
	require.NoError(t, err)
	query := messages.Query("COPY t FROM STDIN")
	data := messages.CopyData("1\thello\n")
	require.Equal(t, []fe.Message{&query, &data, &messages.CopyDone{}}, msgs)
}

func TestLoad_StartupParameterOrder(t *testing.T) {
	msgs, err := Load(strings.NewReader(`
- startup:
    user: u
    parameters:
      timezone: UTC
      application_name: pgfe
`))
	require.NoError(t, err)
	require.Equal(t, []fe.Message{
		&messages.StartupMessage{Parameters: []messages.StartupParameter{
			{Name: "user", Value: "u"},
			{Name: "application_name", Value: "pgfe"},
			{Name: "timezone", Value: "UTC"},
		}},
	}, msgs)
}

func TestLoad_Empty(t *testing.T) {
	msgs, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestLoad_UnknownKind(t *testing.T) {
	_, err := Load(strings.NewReader("- frobnicate: {}\n"))
	require.Error(t, err)
}

func TestLoad_MultipleKinds(t *testing.T) {
	_, err := Load(strings.NewReader("- sync: {}\n  flush: {}\n"))
	require.ErrorContains(t, err, "message kinds")
}

func TestLoad_TargetRequired(t *testing.T) {
	_, err := Load(strings.NewReader("- describe: {}\n"))
	require.ErrorContains(t, err, "statement or portal")
}

func TestLoad_StartupRequiresUser(t *testing.T) {
	_, err := Load(strings.NewReader("- startup: {database: app}\n"))
	require.ErrorContains(t, err, "user")
}
