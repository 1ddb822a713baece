package script

import (
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"gfx.cafe/gfx/pgfe/lib/fe"
	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
	"gfx.cafe/gfx/pgfe/lib/oid"
)

// Step is one scripted message. Exactly one field may be set; the key
// names the message kind. Empty kinds still take a value, e.g. "sync: {}".
type Step struct {
	Startup             *StartupStep      `yaml:"startup,omitempty"`
	SSLRequest          *EmptyStep        `yaml:"ssl_request,omitempty"`
	GSSEncRequest       *EmptyStep        `yaml:"gssenc_request,omitempty"`
	Cancel              *CancelStep       `yaml:"cancel,omitempty"`
	Password            *string           `yaml:"password,omitempty"`
	SASLInitialResponse *SASLInitialStep  `yaml:"sasl_initial_response,omitempty"`
	SASLResponse        *string           `yaml:"sasl_response,omitempty"`
	GSSResponse         *string           `yaml:"gss_response,omitempty"`
	Query               *string           `yaml:"query,omitempty"`
	Parse               *ParseStep        `yaml:"parse,omitempty"`
	Bind                *BindStep         `yaml:"bind,omitempty"`
	Describe            *TargetStep       `yaml:"describe,omitempty"`
	Close               *TargetStep       `yaml:"close,omitempty"`
	Execute             *ExecuteStep      `yaml:"execute,omitempty"`
	FunctionCall        *FunctionCallStep `yaml:"function_call,omitempty"`
	CopyData            *string           `yaml:"copy_data,omitempty"`
	CopyDone            *EmptyStep        `yaml:"copy_done,omitempty"`
	CopyFail            *string           `yaml:"copy_fail,omitempty"`
	Flush               *EmptyStep        `yaml:"flush,omitempty"`
	Sync                *EmptyStep        `yaml:"sync,omitempty"`
	Terminate           *EmptyStep        `yaml:"terminate,omitempty"`
}

type EmptyStep struct{}

type StartupStep struct {
	User     string `yaml:"user"`
	Database string `yaml:"database"`
	// Parameters holds any further startup options, written in name
	// order so a script always encodes to the same bytes.
	Parameters map[string]string `yaml:"parameters"`
}

type CancelStep struct {
	ProcessID int32 `yaml:"process_id"`
	SecretKey int32 `yaml:"secret_key"`
}

type SASLInitialStep struct {
	Mechanism string  `yaml:"mechanism"`
	Data      *string `yaml:"data"`
}

type ParseStep struct {
	Statement      string   `yaml:"statement"`
	Query          string   `yaml:"query"`
	ParameterTypes []uint32 `yaml:"parameter_types"`
}

type BindStep struct {
	Portal               string  `yaml:"portal"`
	Statement            string  `yaml:"statement"`
	ParameterFormatCodes []int16 `yaml:"parameter_format_codes"`
	// ParameterValues entries may be null for SQL NULL.
	ParameterValues   []*string `yaml:"parameter_values"`
	ResultFormatCodes []int16   `yaml:"result_format_codes"`
}

// TargetStep selects what Describe and Close point at; statement and
// portal are mutually exclusive.
type TargetStep struct {
	Statement *string `yaml:"statement,omitempty"`
	Portal    *string `yaml:"portal,omitempty"`
}

type ExecuteStep struct {
	Portal  string `yaml:"portal"`
	MaxRows int32  `yaml:"max_rows"`
}

type FunctionCallStep struct {
	Function         uint32    `yaml:"function"`
	ArgFormatCodes   []int16   `yaml:"arg_format_codes"`
	Arguments        []*string `yaml:"arguments"`
	ResultFormatCode int16     `yaml:"result_format_code"`
}

// Load reads a YAML message script, a sequence of Steps, and returns the
// messages in script order. Unknown keys are rejected.
func Load(r io.Reader) ([]fe.Message, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var steps []Step
	if err := decoder.Decode(&steps); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "parse script")
	}
	msgs := make([]fe.Message, 0, len(steps))
	for i, step := range steps {
		msg, err := step.message()
		if err != nil {
			return nil, errors.Wrapf(err, "step %d", i+1)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (T *Step) message() (fe.Message, error) {
	var msg fe.Message
	var err error
	set := 0
	pick := func(m fe.Message, e error) {
		msg = m
		err = e
		set++
	}

	if T.Startup != nil {
		pick(T.Startup.message())
	}
	if T.SSLRequest != nil {
		pick(&messages.SSLRequest{}, nil)
	}
	if T.GSSEncRequest != nil {
		pick(&messages.GSSEncRequest{}, nil)
	}
	if T.Cancel != nil {
		pick(&messages.CancelRequest{
			ProcessID: T.Cancel.ProcessID,
			SecretKey: T.Cancel.SecretKey,
		}, nil)
	}
	if T.Password != nil {
		pick(&messages.PasswordMessage{Password: *T.Password}, nil)
	}
	if T.SASLInitialResponse != nil {
		pick(T.SASLInitialResponse.message())
	}
	if T.SASLResponse != nil {
		pick(&messages.SASLResponse{Data: []byte(*T.SASLResponse)}, nil)
	}
	if T.GSSResponse != nil {
		pick(&messages.GSSResponse{Data: []byte(*T.GSSResponse)}, nil)
	}
	if T.Query != nil {
		query := messages.Query(*T.Query)
		pick(&query, nil)
	}
	if T.Parse != nil {
		pick(T.Parse.message(), nil)
	}
	if T.Bind != nil {
		pick(T.Bind.message(), nil)
	}
	if T.Describe != nil {
		which, target, targetErr := T.Describe.target()
		pick(&messages.Describe{Which: which, Target: target}, targetErr)
	}
	if T.Close != nil {
		which, target, targetErr := T.Close.target()
		pick(&messages.Close{Which: which, Target: target}, targetErr)
	}
	if T.Execute != nil {
		pick(&messages.Execute{
			Portal:  T.Execute.Portal,
			MaxRows: T.Execute.MaxRows,
		}, nil)
	}
	if T.FunctionCall != nil {
		pick(T.FunctionCall.message(), nil)
	}
	if T.CopyData != nil {
		data := messages.CopyData(*T.CopyData)
		pick(&data, nil)
	}
	if T.CopyDone != nil {
		pick(&messages.CopyDone{}, nil)
	}
	if T.CopyFail != nil {
		pick(&messages.CopyFail{Reason: *T.CopyFail}, nil)
	}
	if T.Flush != nil {
		pick(&messages.Flush{}, nil)
	}
	if T.Sync != nil {
		pick(&messages.Sync{}, nil)
	}
	if T.Terminate != nil {
		pick(&messages.Terminate{}, nil)
	}

	switch {
	case set == 0:
		return nil, errors.New("no message kind set")
	case set > 1:
		return nil, errors.Newf("%d message kinds set, want one", set)
	case err != nil:
		return nil, err
	}
	return msg, nil
}

func (T *StartupStep) message() (fe.Message, error) {
	if T.User == "" {
		return nil, errors.New("startup requires a user")
	}
	parameters := []messages.StartupParameter{{Name: "user", Value: T.User}}
	if T.Database != "" {
		parameters = append(parameters, messages.StartupParameter{
			Name:  "database",
			Value: T.Database,
		})
	}
	names := make([]string, 0, len(T.Parameters))
	for name := range T.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parameters = append(parameters, messages.StartupParameter{
			Name:  name,
			Value: T.Parameters[name],
		})
	}
	return &messages.StartupMessage{Parameters: parameters}, nil
}

func (T *SASLInitialStep) message() (fe.Message, error) {
	if T.Mechanism == "" {
		return nil, errors.New("sasl_initial_response requires a mechanism")
	}
	msg := &messages.SASLInitialResponse{Mechanism: T.Mechanism}
	if T.Data != nil {
		msg.Data = []byte(*T.Data)
	}
	return msg, nil
}

func (T *ParseStep) message() fe.Message {
	var types []oid.Oid
	if len(T.ParameterTypes) > 0 {
		types = make([]oid.Oid, len(T.ParameterTypes))
		for i, typ := range T.ParameterTypes {
			types[i] = oid.Oid(typ)
		}
	}
	return &messages.Parse{
		Statement:      T.Statement,
		Query:          T.Query,
		ParameterTypes: types,
	}
}

func (T *BindStep) message() fe.Message {
	return &messages.Bind{
		Portal:               T.Portal,
		Statement:            T.Statement,
		ParameterFormatCodes: T.ParameterFormatCodes,
		ParameterValues:      byteValues(T.ParameterValues),
		ResultFormatCodes:    T.ResultFormatCodes,
	}
}

func (T *TargetStep) target() (byte, string, error) {
	switch {
	case T.Statement != nil && T.Portal != nil:
		return 0, "", errors.New("statement and portal are mutually exclusive")
	case T.Statement != nil:
		return messages.WhichStatement, *T.Statement, nil
	case T.Portal != nil:
		return messages.WhichPortal, *T.Portal, nil
	default:
		return 0, "", errors.New("statement or portal is required")
	}
}

func (T *FunctionCallStep) message() fe.Message {
	return &messages.FunctionCall{
		Function:         oid.Oid(T.Function),
		ArgFormatCodes:   T.ArgFormatCodes,
		Arguments:        byteValues(T.Arguments),
		ResultFormatCode: T.ResultFormatCode,
	}
}

func byteValues(values []*string) [][]byte {
	if len(values) == 0 {
		return nil
	}
	out := make([][]byte, len(values))
	for i, value := range values {
		if value != nil {
			out[i] = []byte(*value)
		}
	}
	return out
}
