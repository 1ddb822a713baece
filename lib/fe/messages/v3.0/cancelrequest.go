package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// CancelRequest is sent on its own connection to abort a query in
// flight. It carries no tag byte; CancelRequestCode at the start of the
// payload is what identifies it on the wire.
type CancelRequest struct {
	ProcessID int32
	SecretKey int32
}

func (T *CancelRequest) Type() fe.Type { return fe.None }

func (T *CancelRequest) WriteTo(buf *fe.Buffer) error {
	buf.WriteInt32(CancelRequestCode)
	buf.WriteInt32(T.ProcessID)
	buf.WriteInt32(T.SecretKey)
	return nil
}

func (T *CancelRequest) Frontend() {}

var _ fe.Message = (*CancelRequest)(nil)
