package sar

import (
	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/record"
	"github.com/samber/oops"
)

// SegmentOptions controls how Segment numbers and sizes the records.
type SegmentOptions struct {
	SessionID uint64
	// FirstSequenceID is the sequence id of the first record; later records count up
	// from it.
	FirstSequenceID uint64
	// ExpectedID is copied into every record.
	ExpectedID      uint64
	MaxFragmentSize int
}

// Segment splits payload into SessionContextRecords of at most MaxFragmentSize
// payload bytes each. A payload that fits in one record is sent with both SAR
// states NONE; otherwise the records run BEGIN, INPROCESS..., COMPLETE. The
// returned records share memory with payload.
func Segment(payload []byte, opts SegmentOptions) ([]*record.SessionContextRecord, error) {
	if opts.MaxFragmentSize <= 0 {
		return nil, oops.Errorf("%w: %d", ErrInvalidFragmentSize, opts.MaxFragmentSize)
	}
	if len(payload) <= opts.MaxFragmentSize {
		return []*record.SessionContextRecord{
			record.NewUnfragmented(opts.SessionID, opts.FirstSequenceID, opts.ExpectedID, payload),
		}, nil
	}

	count := (len(payload) + opts.MaxFragmentSize - 1) / opts.MaxFragmentSize
	out := make([]*record.SessionContextRecord, 0, count)
	for i := 0; i < count; i++ {
		start := i * opts.MaxFragmentSize
		end := min(start+opts.MaxFragmentSize, len(payload))

		state := record.SARInProcess
		switch i {
		case 0:
			state = record.SARBegin
		case count - 1:
			state = record.SARComplete
		}
		out = append(out, &record.SessionContextRecord{
			SessionID:          opts.SessionID,
			SequenceID:         opts.FirstSequenceID + uint64(i),
			ExpectedID:         opts.ExpectedID,
			PayloadSARState:    state,
			PayloadrecSARState: state,
			Payload:            [][]byte{payload[start:end:end]},
		})
	}

	log.WithFields(logger.Fields{
		"at":         "sar.Segment",
		"session_id": opts.SessionID,
		"records":    count,
		"bytes":      len(payload),
	}).Debug("segmented payload")
	return out, nil
}
