package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// GSSEncRequest asks the server to switch to GSSAPI encryption before
// any startup message. Untagged; the payload is GSSEncRequestCode alone.
type GSSEncRequest struct{}

func (T *GSSEncRequest) Type() fe.Type { return fe.None }

func (T *GSSEncRequest) WriteTo(buf *fe.Buffer) error {
	buf.WriteInt32(GSSEncRequestCode)
	return nil
}

func (T *GSSEncRequest) Frontend() {}

var _ fe.Message = (*GSSEncRequest)(nil)
