package sar

import "errors"

var (
	// ErrInvalidFragmentSize is returned by Segment for a non-positive fragment size.
	ErrInvalidFragmentSize = errors.New("sar: fragment size must be positive")
	// ErrNoBegin is returned for an INPROCESS or COMPLETE segment with no pending buffer.
	ErrNoBegin = errors.New("sar: segment without BEGIN")
	// ErrDuplicate is returned for a segment that was already accepted.
	ErrDuplicate = errors.New("sar: duplicate segment")
	// ErrSequenceGap is returned when segments are missing before this one. The
	// pending buffer is kept.
	ErrSequenceGap = errors.New("sar: sequence gap")
	// ErrUnexpectedState is returned for a SAR state outside NONE..COMPLETE.
	ErrUnexpectedState = errors.New("sar: unexpected SAR state")
	// ErrTooLarge is returned when a session exceeds the buffered byte limit. The
	// pending buffer is dropped.
	ErrTooLarge = errors.New("sar: reassembled payload too large")
	// ErrTooManySessions is returned when starting a session would exceed the
	// session limit.
	ErrTooManySessions = errors.New("sar: too many pending sessions")
	// ErrUnknownStore is returned by NewStoreFromConfig for an unsupported backend.
	ErrUnknownStore = errors.New("sar: unknown store")
)
