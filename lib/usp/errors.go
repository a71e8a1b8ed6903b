package usp

import "errors"

var (
	// ErrNoPayload is returned by ExtractMsg for records that carry no Msg, such as
	// connect and disconnect records.
	ErrNoPayload = errors.New("usp: record carries no payload")
	// ErrIncompletePayload is returned by ExtractMsg for a SessionContextRecord
	// that is only one segment of a payload.
	ErrIncompletePayload = errors.New("usp: payload is segmented")
	// ErrRecordTooLarge is returned for records above the configured size limit.
	ErrRecordTooLarge = errors.New("usp: record exceeds size limit")
	// ErrNilMsg is returned when a nil Msg is encoded.
	ErrNilMsg = errors.New("usp: nil msg")
)
