package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

type StartupParameter struct {
	Name  string
	Value string
}

// StartupMessage opens a session. It has no tag byte; the payload leads
// with ProtocolVersion30. Parameters keep their order so the same
// message always encodes to the same bytes; "user" is required by the
// server, everything else is optional.
type StartupMessage struct {
	Parameters []StartupParameter
}

func (T *StartupMessage) Type() fe.Type { return fe.None }

func (T *StartupMessage) WriteTo(buf *fe.Buffer) error {
	buf.WriteInt32(ProtocolVersion30)
	for _, parameter := range T.Parameters {
		if err := buf.WriteString(parameter.Name); err != nil {
			return err
		}
		if err := buf.WriteString(parameter.Value); err != nil {
			return err
		}
	}
	buf.WriteUint8(0)
	return nil
}

func (T *StartupMessage) Frontend() {}

var _ fe.Message = (*StartupMessage)(nil)
