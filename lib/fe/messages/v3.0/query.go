package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// Query runs SQL through the simple query protocol.
type Query string

func (T *Query) Type() fe.Type { return TypeQuery }

func (T *Query) WriteTo(buf *fe.Buffer) error {
	return buf.WriteString(string(*T))
}

func (T *Query) Frontend() {}

var _ fe.Message = (*Query)(nil)
