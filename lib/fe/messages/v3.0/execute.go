package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type Execute struct {
	Portal string
	// MaxRows limits the rows returned; 0 means no limit.
	MaxRows int32
}

func (T *Execute) Type() fe.Type { return TypeExecute }

func (T *Execute) WriteTo(buf *fe.Buffer) error {
	if err := buf.WriteString(T.Portal); err != nil {
		return err
	}
	buf.WriteInt32(T.MaxRows)
	return nil
}

func (T *Execute) Frontend() {}

var _ fe.Message = (*Execute)(nil)
