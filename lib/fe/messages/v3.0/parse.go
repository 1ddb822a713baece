package messages

import (
	"gfx.cafe/gfx/pgfe/lib/fe"
	"gfx.cafe/gfx/pgfe/lib/oid"
)

type Parse struct {
	Statement string
	Query     string
	// ParameterTypes pins the type of each parameter placeholder; a zero
	// oid leaves the type for the server to infer.
	ParameterTypes []oid.Oid
}

func (T *Parse) Type() fe.Type { return TypeParse }

func (T *Parse) WriteTo(buf *fe.Buffer) error {
	if err := buf.WriteString(T.Statement); err != nil {
		return err
	}
	if err := buf.WriteString(T.Query); err != nil {
		return err
	}
	count, err := fe.Uint16Count(len(T.ParameterTypes))
	if err != nil {
		return err
	}
	buf.WriteUint16(count)
	for _, typ := range T.ParameterTypes {
		buf.WriteUint32(uint32(typ))
	}
	return nil
}

func (T *Parse) Frontend() {}

var _ fe.Message = (*Parse)(nil)
