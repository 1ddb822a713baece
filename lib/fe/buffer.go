package fe

import (
	"encoding/binary"
	"strings"

	"gfx.cafe/gfx/pgfe/lib/util/decorator"
)

// Buffer accumulates encoded frames. The zero value is ready to use.
// All integers are appended big endian. A Buffer must not be copied and
// is not safe for concurrent use.
type Buffer struct {
	noCopy decorator.NoCopy

	b []byte
}

func (T *Buffer) Len() int {
	return len(T.b)
}

// Bytes returns the encoded frames accumulated so far. The slice aliases
// the buffer's storage and is invalidated by further writes or Reset.
func (T *Buffer) Bytes() []byte {
	return T.b
}

// Reset discards the buffer's contents, keeping the storage for reuse.
// Callers must Reset after a failed encode before writing again.
func (T *Buffer) Reset() {
	T.b = T.b[:0]
}

func (T *Buffer) WriteUint8(v uint8) {
	T.b = append(T.b, v)
}

func (T *Buffer) WriteUint16(v uint16) {
	T.b = binary.BigEndian.AppendUint16(T.b, v)
}

func (T *Buffer) WriteUint32(v uint32) {
	T.b = binary.BigEndian.AppendUint32(T.b, v)
}

func (T *Buffer) WriteInt16(v int16) {
	T.WriteUint16(uint16(v))
}

func (T *Buffer) WriteInt32(v int32) {
	T.WriteUint32(uint32(v))
}

func (T *Buffer) WriteBytes(v []byte) {
	T.b = append(T.b, v...)
}

// WriteString appends v followed by a single terminating zero byte. It
// fails with ErrEmbeddedNull, writing nothing, if v already contains a
// zero byte anywhere.
func (T *Buffer) WriteString(v string) error {
	if strings.IndexByte(v, 0) >= 0 {
		return ErrEmbeddedNull
	}
	T.b = append(T.b, v...)
	T.b = append(T.b, 0)
	return nil
}

// WriteLengthPrefixedBytes appends len(v) as a signed 32 bit length
// followed by v itself. A nil v stands for SQL NULL and is written as a
// bare -1 with no bytes following.
func (T *Buffer) WriteLengthPrefixedBytes(v []byte) error {
	if v == nil {
		T.WriteInt32(-1)
		return nil
	}
	length, err := Int32Length(len(v))
	if err != nil {
		return err
	}
	T.WriteInt32(length)
	T.WriteBytes(v)
	return nil
}
