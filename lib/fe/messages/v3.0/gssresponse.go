package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// GSSResponse carries one GSSAPI or SSPI token, raw.
type GSSResponse struct {
	Data []byte
}

func (T *GSSResponse) Type() fe.Type { return TypeGSSResponse }

func (T *GSSResponse) WriteTo(buf *fe.Buffer) error {
	buf.WriteBytes(T.Data)
	return nil
}

func (T *GSSResponse) Frontend() {}

var _ fe.Message = (*GSSResponse)(nil)
