package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// SASLResponse continues a SASL exchange; the payload is the raw
// mechanism data with no length of its own, the frame length bounds it.
type SASLResponse struct {
	Data []byte
}

func (T *SASLResponse) Type() fe.Type { return TypeSASLResponse }

func (T *SASLResponse) WriteTo(buf *fe.Buffer) error {
	buf.WriteBytes(T.Data)
	return nil
}

func (T *SASLResponse) Frontend() {}

var _ fe.Message = (*SASLResponse)(nil)
