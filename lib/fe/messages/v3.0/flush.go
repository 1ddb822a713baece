package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type Flush struct{}

func (T *Flush) Type() fe.Type { return TypeFlush }

func (T *Flush) WriteTo(buf *fe.Buffer) error {
	return nil
}

func (T *Flush) Frontend() {}

var _ fe.Message = (*Flush)(nil)
