package fe

import "math"

// Uint16Count narrows a sequence element count to its 16 bit wire
// representation, failing with ErrValueTooLarge instead of truncating.
func Uint16Count(n int) (uint16, error) {
	if n < 0 || n > math.MaxUint16 {
		return 0, ErrValueTooLarge
	}
	return uint16(n), nil
}

// Int32Length narrows a byte length to its signed 32 bit wire
// representation, failing with ErrValueTooLarge instead of truncating.
func Int32Length(n int) (int32, error) {
	if n < 0 || n > math.MaxInt32 {
		return 0, ErrValueTooLarge
	}
	return int32(n), nil
}
