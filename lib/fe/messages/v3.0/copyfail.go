package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type CopyFail struct {
	Reason string
}

func (T *CopyFail) Type() fe.Type { return TypeCopyFail }

func (T *CopyFail) WriteTo(buf *fe.Buffer) error {
	return buf.WriteString(T.Reason)
}

func (T *CopyFail) Frontend() {}

var _ fe.Message = (*CopyFail)(nil)
