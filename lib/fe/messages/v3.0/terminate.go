package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type Terminate struct{}

func (T *Terminate) Type() fe.Type { return TypeTerminate }

func (T *Terminate) WriteTo(buf *fe.Buffer) error {
	return nil
}

func (T *Terminate) Frontend() {}

var _ fe.Message = (*Terminate)(nil)
