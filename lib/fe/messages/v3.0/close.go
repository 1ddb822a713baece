package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type Close struct {
	// Which selects the target kind, WhichStatement or WhichPortal.
	Which  byte
	Target string
}

func (T *Close) Type() fe.Type { return TypeClose }

func (T *Close) WriteTo(buf *fe.Buffer) error {
	buf.WriteUint8(T.Which)
	return buf.WriteString(T.Target)
}

func (T *Close) Frontend() {}

var _ fe.Message = (*Close)(nil)
