package fe

import "github.com/cockroachdb/errors"

var (
	ErrEmbeddedNull  = errors.New("string contains embedded null")
	ErrValueTooLarge = errors.New("value too large to transmit")
)
