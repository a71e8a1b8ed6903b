package builder

import (
	"errors"

	"github.com/go-usp/go-usp/lib/errcodes"
	"github.com/samber/oops"
)

var (
	ErrMissingField   = errors.New("builder: mandatory field not set")
	ErrMissingVariant = errors.New("builder: no variant selected")
	ErrInvalidErrCode = errors.New("builder: error code outside 7000-7999")
)

func missingField(typ, field string) error {
	return oops.Errorf("%w: %s.%s", ErrMissingField, typ, field)
}

func missingVariant(typ, oneof string) error {
	return oops.Errorf("%w: %s.%s", ErrMissingVariant, typ, oneof)
}

// errText validates code and returns text, or the canned message for code when
// text is empty.
func errText(code uint32, text string) (string, error) {
	if !errcodes.IsValid(code) {
		return "", oops.Errorf("%w: %d", ErrInvalidErrCode, code)
	}
	if text == "" {
		text = errcodes.Message(code)
	}
	return text, nil
}

// optErrText is errText for fields where a zero code means success.
func optErrText(code uint32, text string) (string, error) {
	if code == 0 {
		return text, nil
	}
	return errText(code, text)
}
