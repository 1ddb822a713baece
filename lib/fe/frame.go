package fe

import "encoding/binary"

// Frame appends one complete frame: the tag byte when typ is not None,
// then a 4 byte big-endian length, then the payload written by body. The
// length counts itself and the payload but never the tag.
//
// The length field is reserved before body runs and patched afterward, so
// it is consistent by construction. If body fails, the failure is
// returned immediately and the buffer keeps the partial frame; the caller
// must Reset or discard the buffer and must not transmit its tail.
func (T *Buffer) Frame(typ Type, body func(*Buffer) error) error {
	if typ != None {
		T.WriteUint8(byte(typ))
	}
	base := len(T.b)
	T.b = append(T.b, 0, 0, 0, 0)
	if err := body(T); err != nil {
		return err
	}
	length, err := Int32Length(len(T.b) - base)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(T.b[base:base+4], uint32(length))
	return nil
}
