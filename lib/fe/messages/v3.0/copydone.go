package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type CopyDone struct{}

func (T *CopyDone) Type() fe.Type { return TypeCopyDone }

func (T *CopyDone) WriteTo(buf *fe.Buffer) error {
	return nil
}

func (T *CopyDone) Frontend() {}

var _ fe.Message = (*CopyDone)(nil)
