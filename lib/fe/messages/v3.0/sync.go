package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type Sync struct{}

func (T *Sync) Type() fe.Type { return TypeSync }

func (T *Sync) WriteTo(buf *fe.Buffer) error {
	return nil
}

func (T *Sync) Frontend() {}

var _ fe.Message = (*Sync)(nil)
