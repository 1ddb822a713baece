package pnet

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"

	"gfx.cafe/gfx/pgfe/lib/fe"
	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
)

func TestSender_Send(t *testing.T) {
	var out bytes.Buffer
	sender := NewSender(&out, nil)

	query := messages.Query("SELECT 1")
	if err := sender.Send(&query, &messages.Sync{}); err != nil {
		t.Fatal(err)
	}

	var expected fe.Buffer
	if err := fe.Encode(&expected, &query); err != nil {
		t.Fatal(err)
	}
	if err := fe.Encode(&expected, &messages.Sync{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), expected.Bytes()) {
		t.Errorf("expected %x but got %x", expected.Bytes(), out.Bytes())
	}
	if sender.Written() != int64(expected.Len()) {
		t.Error("expected", expected.Len(), "bytes written but got", sender.Written())
	}
}

func TestSender_EncodeError(t *testing.T) {
	var out bytes.Buffer
	sender := NewSender(&out, nil)

	err := sender.Send(&messages.CopyFail{Reason: "bad\x00reason"})
	if !errors.Is(err, fe.ErrEmbeddedNull) {
		t.Error("expected ErrEmbeddedNull but got", err)
	}
	// the partial frame must never reach the wire
	if out.Len() != 0 {
		t.Errorf("expected nothing written but got %x", out.Bytes())
	}

	// the sender stays usable after a failed batch
	if err = sender.Send(&messages.Sync{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), []byte{'S', 0, 0, 0, 4}) {
		t.Errorf("expected sync frame but got %x", out.Bytes())
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestSender_WriteError(t *testing.T) {
	sender := NewSender(failWriter{}, nil)
	err := sender.Send(&messages.Sync{})
	if err == nil {
		t.Fatal("expected write failure")
	}
	if sender.Written() != 0 {
		t.Error("expected 0 bytes written but got", sender.Written())
	}
}
