package wire

import (
	"errors"
	"io"

	"github.com/samber/oops"
	"google.golang.org/protobuf/encoding/protowire"
)

// Decode errors. These use errors.New (not oops.Errorf) so callers can match them
// with errors.Is() through any amount of wrapping.
var (
	ErrTruncated   = errors.New("wire: truncated input")
	ErrMalformed   = errors.New("wire: malformed field")
	ErrInvalidUTF8 = errors.New("wire: invalid utf-8 in string field")
)

// consumeError converts a negative protowire consume result into a decode error.
func consumeError(n int) error {
	err := protowire.ParseError(n)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return oops.Errorf("%w: %v", ErrMalformed, err)
}
