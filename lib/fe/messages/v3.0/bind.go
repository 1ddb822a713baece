package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type Bind struct {
	Portal               string
	Statement            string
	ParameterFormatCodes []int16
	// ParameterValues are pre-encoded parameter bytes. A nil element is
	// SQL NULL and goes out as a bare -1 length.
	ParameterValues   [][]byte
	ResultFormatCodes []int16
}

func (T *Bind) Type() fe.Type { return TypeBind }

func (T *Bind) WriteTo(buf *fe.Buffer) error {
	if err := buf.WriteString(T.Portal); err != nil {
		return err
	}
	if err := buf.WriteString(T.Statement); err != nil {
		return err
	}
	count, err := fe.Uint16Count(len(T.ParameterFormatCodes))
	if err != nil {
		return err
	}
	buf.WriteUint16(count)
	for _, code := range T.ParameterFormatCodes {
		buf.WriteInt16(code)
	}
	count, err = fe.Uint16Count(len(T.ParameterValues))
	if err != nil {
		return err
	}
	buf.WriteUint16(count)
	for _, value := range T.ParameterValues {
		if err = buf.WriteLengthPrefixedBytes(value); err != nil {
			return err
		}
	}
	count, err = fe.Uint16Count(len(T.ResultFormatCodes))
	if err != nil {
		return err
	}
	buf.WriteUint16(count)
	for _, code := range T.ResultFormatCodes {
		buf.WriteInt16(code)
	}
	return nil
}

func (T *Bind) Frontend() {}

var _ fe.Message = (*Bind)(nil)
