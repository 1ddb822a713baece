package fe

// Type identifies a frontend message kind by its tag byte.
type Type byte

// None marks messages written without a leading tag byte, such as
// CancelRequest and StartupMessage.
const None Type = 0
