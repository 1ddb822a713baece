package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type Describe struct {
	// Which selects the target kind, WhichStatement or WhichPortal.
	Which  byte
	Target string
}

func (T *Describe) Type() fe.Type { return TypeDescribe }

func (T *Describe) WriteTo(buf *fe.Buffer) error {
	buf.WriteUint8(T.Which)
	return buf.WriteString(T.Target)
}

func (T *Describe) Frontend() {}

var _ fe.Message = (*Describe)(nil)
