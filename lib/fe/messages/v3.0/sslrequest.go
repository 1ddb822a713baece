package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// SSLRequest asks the server to switch the connection to TLS before any
// startup message. Untagged; the payload is SSLRequestCode alone.
type SSLRequest struct{}

func (T *SSLRequest) Type() fe.Type { return fe.None }

func (T *SSLRequest) WriteTo(buf *fe.Buffer) error {
	buf.WriteInt32(SSLRequestCode)
	return nil
}

func (T *SSLRequest) Frontend() {}

var _ fe.Message = (*SSLRequest)(nil)
