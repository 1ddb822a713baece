package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// CopyData carries one chunk of a COPY stream, passed through opaquely.
type CopyData []byte

func (T *CopyData) Type() fe.Type { return TypeCopyData }

func (T *CopyData) WriteTo(buf *fe.Buffer) error {
	buf.WriteBytes(*T)
	return nil
}

func (T *CopyData) Frontend() {}

var _ fe.Message = (*CopyData)(nil)
