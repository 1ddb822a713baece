package pnet

import (
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"gfx.cafe/gfx/pgfe/lib/fe"
	messages "gfx.cafe/gfx/pgfe/lib/fe/messages/v3.0"
	"gfx.cafe/gfx/pgfe/lib/instrumentation/prom"
	"gfx.cafe/gfx/pgfe/lib/util/decorator"
)

// Sender writes frontend messages to a transport. Every message of one
// Send call is encoded into a single buffer and flushed with one Write,
// the way Parse, Bind, Execute and Sync usually travel together.
//
// A Sender is not safe for concurrent use.
type Sender struct {
	noCopy decorator.NoCopy

	writer io.Writer
	log    *zap.Logger
	buf    fe.Buffer

	written int64
}

// NewSender wraps writer. A nil log disables logging.
func NewSender(writer io.Writer, log *zap.Logger) *Sender {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sender{
		writer: writer,
		log:    log,
	}
}

// Send encodes msgs back to back and writes them out in one call. If a
// message fails to encode, the whole batch is dropped without writing
// anything and the failure is returned naming the message; the partial
// frame never reaches the wire.
func (T *Sender) Send(msgs ...fe.Message) error {
	T.buf.Reset()
	for _, msg := range msgs {
		name := messages.Name(msg)
		start := T.buf.Len()
		if err := fe.Encode(&T.buf, msg); err != nil {
			T.buf.Reset()
			prom.Frontend.EncodeErrors(prom.MessageLabels{Message: name}).Inc()
			return errors.Wrapf(err, "encode %s", name)
		}
		prom.Frontend.Frames(prom.MessageLabels{Message: name}).Inc()
		prom.Frontend.Bytes(prom.MessageLabels{Message: name}).Add(float64(T.buf.Len() - start))
	}
	n, err := T.writer.Write(T.buf.Bytes())
	T.written += int64(n)
	if err != nil {
		return errors.Wrap(err, "flush")
	}
	T.log.Debug("sent messages",
		zap.Int("messages", len(msgs)),
		zap.Int("bytes", T.buf.Len()),
	)
	return nil
}

// Written reports the total bytes flushed over the Sender's lifetime.
func (T *Sender) Written() int64 {
	return T.written
}
