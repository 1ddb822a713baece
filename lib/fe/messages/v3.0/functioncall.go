package messages

import (
	"gfx.cafe/gfx/pgfe/lib/fe"
	"gfx.cafe/gfx/pgfe/lib/oid"
)

// FunctionCall invokes a server function directly by oid, outside any
// SQL statement. Arguments follow the Bind value convention, nil being
// SQL NULL.
type FunctionCall struct {
	Function         oid.Oid
	ArgFormatCodes   []int16
	Arguments        [][]byte
	ResultFormatCode int16
}

func (T *FunctionCall) Type() fe.Type { return TypeFunctionCall }

func (T *FunctionCall) WriteTo(buf *fe.Buffer) error {
	buf.WriteUint32(uint32(T.Function))
	count, err := fe.Uint16Count(len(T.ArgFormatCodes))
	if err != nil {
		return err
	}
	buf.WriteUint16(count)
	for _, code := range T.ArgFormatCodes {
		buf.WriteInt16(code)
	}
	count, err = fe.Uint16Count(len(T.Arguments))
	if err != nil {
		return err
	}
	buf.WriteUint16(count)
	for _, arg := range T.Arguments {
		if err = buf.WriteLengthPrefixedBytes(arg); err != nil {
			return err
		}
	}
	buf.WriteInt16(T.ResultFormatCode)
	return nil
}

func (T *FunctionCall) Frontend() {}

var _ fe.Message = (*FunctionCall)(nil)
