package messages

import "gfx.cafe/gfx/pgfe/lib/fe"

const (
	TypeBind                = fe.Type('B')
	TypeClose               = fe.Type('C')
	TypeCopyData            = fe.Type('d')
	TypeCopyDone            = fe.Type('c')
	TypeCopyFail            = fe.Type('f')
	TypeDescribe            = fe.Type('D')
	TypeExecute             = fe.Type('E')
	TypeFlush               = fe.Type('H')
	TypeFunctionCall        = fe.Type('F')
	TypeGSSResponse         = fe.Type('p')
	TypeParse               = fe.Type('P')
	TypePasswordMessage     = fe.Type('p')
	TypeQuery               = fe.Type('Q')
	TypeSASLInitialResponse = fe.Type('p')
	TypeSASLResponse        = fe.Type('p')
	TypeSync                = fe.Type('S')
	TypeTerminate           = fe.Type('X')
)

// Close and Describe target selectors.
const (
	WhichStatement byte = 'S'
	WhichPortal    byte = 'P'
)

// Request codes for the untagged startup family, written as the first
// payload field in place of a tag byte.
const (
	ProtocolVersion30 = 196608
	CancelRequestCode = 80877102
	SSLRequestCode    = 80877103
	GSSEncRequestCode = 80877104
)

// Name reports the message kind for logs and metrics.
func Name(msg fe.Message) string {
	switch msg.(type) {
	case *Bind:
		return "Bind"
	case *CancelRequest:
		return "CancelRequest"
	case *Close:
		return "Close"
	case *CopyData:
		return "CopyData"
	case *CopyDone:
		return "CopyDone"
	case *CopyFail:
		return "CopyFail"
	case *Describe:
		return "Describe"
	case *Execute:
		return "Execute"
	case *Flush:
		return "Flush"
	case *FunctionCall:
		return "FunctionCall"
	case *GSSEncRequest:
		return "GSSEncRequest"
	case *GSSResponse:
		return "GSSResponse"
	case *Parse:
		return "Parse"
	case *PasswordMessage:
		return "PasswordMessage"
	case *Query:
		return "Query"
	case *SASLInitialResponse:
		return "SASLInitialResponse"
	case *SASLResponse:
		return "SASLResponse"
	case *SSLRequest:
		return "SSLRequest"
	case *StartupMessage:
		return "StartupMessage"
	case *Sync:
		return "Sync"
	case *Terminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}
