package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// PasswordMessage answers a cleartext or md5 authentication request. For
// md5 the caller supplies the already hashed credential.
type PasswordMessage struct {
	Password string
}

func (T *PasswordMessage) Type() fe.Type { return TypePasswordMessage }

func (T *PasswordMessage) WriteTo(buf *fe.Buffer) error {
	return buf.WriteString(T.Password)
}

func (T *PasswordMessage) Frontend() {}

var _ fe.Message = (*PasswordMessage)(nil)
