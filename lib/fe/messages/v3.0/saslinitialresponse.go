package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

// SASLInitialResponse opens a SASL exchange. Data is the mechanism
// specific initial client response, already produced by the caller's
// SASL implementation; nil means no initial response and is written as a
// -1 length.
type SASLInitialResponse struct {
	Mechanism string
	Data      []byte
}

func (T *SASLInitialResponse) Type() fe.Type { return TypeSASLInitialResponse }

func (T *SASLInitialResponse) WriteTo(buf *fe.Buffer) error {
	if err := buf.WriteString(T.Mechanism); err != nil {
		return err
	}
	return buf.WriteLengthPrefixedBytes(T.Data)
}

func (T *SASLInitialResponse) Frontend() {}

var _ fe.Message = (*SASLInitialResponse)(nil)
