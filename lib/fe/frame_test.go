package fe

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestBuffer_Frame(t *testing.T) {
	var buf Buffer
	err := buf.Frame(Type('T'), func(b *Buffer) error {
		b.WriteUint16(0xbeef)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	assertBuffer(t, &buf, []byte{'T', 0, 0, 0, 6, 0xbe, 0xef})
}

func TestBuffer_FrameUntagged(t *testing.T) {
	var buf Buffer
	err := buf.Frame(None, func(b *Buffer) error {
		b.WriteUint32(80877102)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	assertBuffer(t, &buf, []byte{0, 0, 0, 8, 0x04, 0xd2, 0x16, 0x2e})
}

func TestBuffer_FrameEmptyPayload(t *testing.T) {
	var buf Buffer
	err := buf.Frame(Type('c'), func(b *Buffer) error {
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	assertBuffer(t, &buf, []byte{'c', 0, 0, 0, 4})
}

func TestBuffer_FrameLengthExcludesTag(t *testing.T) {
	var buf Buffer
	err := buf.Frame(Type('d'), func(b *Buffer) error {
		b.WriteBytes([]byte("hello"))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	length := binary.BigEndian.Uint32(buf.Bytes()[1:5])
	if int(length) != buf.Len()-1 {
		t.Error("expected length to be", buf.Len()-1, "but got", length)
	}
}

func TestBuffer_FrameMultiple(t *testing.T) {
	var buf Buffer
	for _, typ := range []Type{'S', 'H'} {
		err := buf.Frame(typ, func(b *Buffer) error {
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	assertBuffer(t, &buf, []byte{'S', 0, 0, 0, 4, 'H', 0, 0, 0, 4})
}

// a failing payload step leaves the partial frame on the buffer; the
// caller recovers with Reset
func TestBuffer_FrameBodyError(t *testing.T) {
	errWrite := errors.New("write failed")
	var buf Buffer
	buf.WriteUint8('x')
	err := buf.Frame(Type('T'), func(b *Buffer) error {
		b.WriteUint8(1)
		return errWrite
	})
	if !errors.Is(err, errWrite) {
		t.Error("expected write failure but got", err)
	}
	// tag, placeholder, and one payload byte remain behind the prior byte
	if buf.Len() != 7 {
		t.Error("expected length to be 7 but got", buf.Len())
	}
	buf.Reset()
	if buf.Len() != 0 {
		t.Error("expected length to be 0 but got", buf.Len())
	}
}
