package fe

// Message is a single frontend protocol message that knows how to write
// its own payload. The implementations form the closed set fixed by
// protocol version 3.0 and live in lib/fe/messages/v3.0.
type Message interface {
	// Type returns the message's tag byte, or None for the untagged
	// startup family.
	Type() Type

	// WriteTo appends the message payload only, without tag or length
	// framing.
	WriteTo(*Buffer) error

	// Frontend marks the message as client originated.
	Frontend()
}

// Encode appends exactly one complete frame for msg to buf. On failure
// the buffer may be left holding a partial frame; see Frame.
func Encode(buf *Buffer, msg Message) error {
	return buf.Frame(msg.Type(), msg.WriteTo)
}
