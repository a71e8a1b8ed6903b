package sar

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/config"
	"github.com/go-usp/go-usp/lib/msg"
	"github.com/go-usp/go-usp/lib/record"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

// Reassembler rebuilds payloads from SessionContextRecords, one pending buffer per
// session_id. Segments must arrive in sequence_id order; the session layer uses
// Expected to request a retransmit after ErrSequenceGap.
type Reassembler struct {
	mu    sync.Mutex
	store Store

	maxBufferedBytes int
	maxSessions      int
	ttl              time.Duration
	now              func() time.Time
}

// NewReassembler returns a Reassembler over store with the limits in cfg. A zero
// limit disables the check.
func NewReassembler(store Store, cfg config.SARConfig) *Reassembler {
	return &Reassembler{
		store:            store,
		maxBufferedBytes: cfg.MaxBufferedBytes,
		maxSessions:      cfg.MaxSessions,
		ttl:              cfg.FragmentTTL,
		now:              time.Now,
	}
}

// NewReassemblerFromConfig creates the store selected by cfg and a Reassembler over
// it.
func NewReassemblerFromConfig(cfg config.SARConfig) (*Reassembler, error) {
	store, err := NewStoreFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewReassembler(store, cfg), nil
}

// Push feeds one record. When the record completes a payload, Push returns it with
// done set. A NONE record completes immediately; a pending buffer for the same
// session is discarded. BEGIN starts a new buffer, replacing any pending one.
func (r *Reassembler) Push(ctx context.Context, rec *record.SessionContextRecord) (payload []byte, done bool, err error) {
	if rec == nil {
		return nil, false, oops.Errorf("%w: nil record", ErrUnexpectedState)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	buf, err := r.load(ctx, rec.SessionID)
	if err != nil {
		return nil, false, err
	}

	switch rec.PayloadSARState {
	case record.SARNone:
		if buf != nil {
			r.discard(ctx, buf, "unfragmented record replaced pending buffer")
		}
		return rec.Concat(), true, nil

	case record.SARBegin:
		if buf != nil {
			r.discard(ctx, buf, "BEGIN restarted pending buffer")
		} else if err := r.checkSessions(ctx); err != nil {
			return nil, false, err
		}
		buf = &Buffer{SessionID: rec.SessionID, NextSequenceID: rec.SequenceID}
		return r.accept(ctx, buf, rec)

	case record.SARInProcess, record.SARComplete:
		if buf == nil {
			return nil, false, oops.Errorf("%w: session %d sequence %d", ErrNoBegin, rec.SessionID, rec.SequenceID)
		}
		switch {
		case rec.SequenceID < buf.NextSequenceID:
			log.WithFields(logger.Fields{
				"at":          "Reassembler.Push",
				"session_id":  rec.SessionID,
				"sequence_id": rec.SequenceID,
				"expected":    buf.NextSequenceID,
			}).Debug("ignoring duplicate segment")
			return nil, false, oops.Errorf("%w: session %d sequence %d", ErrDuplicate, rec.SessionID, rec.SequenceID)
		case rec.SequenceID > buf.NextSequenceID:
			return nil, false, oops.Errorf("%w: session %d got %d, expected %d",
				ErrSequenceGap, rec.SessionID, rec.SequenceID, buf.NextSequenceID)
		}
		return r.accept(ctx, buf, rec)
	}
	return nil, false, oops.Errorf("%w: %d", ErrUnexpectedState, rec.PayloadSARState)
}

// PushMsg is Push followed by decoding the completed payload. It returns nil with no
// error while the payload is incomplete.
func (r *Reassembler) PushMsg(ctx context.Context, rec *record.SessionContextRecord) (*msg.Msg, error) {
	payload, done, err := r.Push(ctx, rec)
	if err != nil || !done {
		return nil, err
	}
	m, err := msg.Decode(payload)
	if err != nil {
		return nil, oops.Wrapf(err, "reassembled payload for session %d", rec.SessionID)
	}
	return m, nil
}

// Expected returns the sequence id the pending buffer for sessionID waits for.
func (r *Reassembler) Expected(ctx context.Context, sessionID uint64) (uint64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	buf, err := r.load(ctx, sessionID)
	if err != nil || buf == nil {
		return 0, false, err
	}
	return buf.NextSequenceID, true, nil
}

// Pending returns the number of sessions with a pending buffer.
func (r *Reassembler) Pending(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Len(ctx)
}

// Discard drops the pending buffer for sessionID, if any.
func (r *Reassembler) Discard(ctx context.Context, sessionID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Delete(ctx, sessionID)
}

// Expire removes buffers that have not received a segment within the fragment
// TTL and returns how many were removed.
func (r *Reassembler) Expire(ctx context.Context) (int, error) {
	if r.ttl <= 0 {
		return 0, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n, err := r.store.Expire(ctx, r.now().Add(-r.ttl))
	if err != nil {
		return 0, oops.Wrapf(err, "expire pending buffers")
	}
	if n > 0 {
		log.WithFields(logger.Fields{
			"at":      "Reassembler.Expire",
			"expired": n,
			"ttl":     r.ttl,
		}).Warn("discarded stale fragment buffers")
	}
	return n, nil
}

// Close closes the underlying store.
func (r *Reassembler) Close() error {
	return r.store.Close()
}

// load returns the pending buffer for sessionID, dropping it when it outlived the
// TTL.
func (r *Reassembler) load(ctx context.Context, sessionID uint64) (*Buffer, error) {
	buf, err := r.store.Get(ctx, sessionID)
	if err != nil || buf == nil {
		return nil, err
	}
	if r.ttl > 0 && !buf.Updated.IsZero() && buf.Updated.Before(r.now().Add(-r.ttl)) {
		r.discard(ctx, buf, "pending buffer expired")
		return nil, nil
	}
	return buf, nil
}

func (r *Reassembler) checkSessions(ctx context.Context) error {
	if r.maxSessions <= 0 {
		return nil
	}
	n, err := r.store.Len(ctx)
	if err != nil {
		return err
	}
	if n >= r.maxSessions {
		return oops.Errorf("%w: limit %d", ErrTooManySessions, r.maxSessions)
	}
	return nil
}

// accept appends rec to buf, whose NextSequenceID must equal rec.SequenceID, and
// either stores the buffer or completes it.
func (r *Reassembler) accept(ctx context.Context, buf *Buffer, rec *record.SessionContextRecord) ([]byte, bool, error) {
	buf.Fragments = append(buf.Fragments, rec.Payload...)
	buf.NextSequenceID = rec.SequenceID + 1
	buf.Updated = r.now()

	if r.maxBufferedBytes > 0 && buf.Len() > r.maxBufferedBytes {
		r.discard(ctx, buf, "pending buffer exceeded size limit")
		return nil, false, oops.Errorf("%w: session %d buffered %d bytes, limit %d",
			ErrTooLarge, buf.SessionID, buf.Len(), r.maxBufferedBytes)
	}

	if rec.PayloadSARState == record.SARComplete {
		if err := r.store.Delete(ctx, buf.SessionID); err != nil {
			return nil, false, err
		}
		payload := bytes.Join(buf.Fragments, nil)
		log.WithFields(logger.Fields{
			"at":         "Reassembler.Push",
			"session_id": buf.SessionID,
			"fragments":  len(buf.Fragments),
			"bytes":      len(payload),
		}).Debug("reassembled payload")
		return payload, true, nil
	}

	if err := r.store.Put(ctx, buf); err != nil {
		return nil, false, err
	}
	return nil, false, nil
}

func (r *Reassembler) discard(ctx context.Context, buf *Buffer, reason string) {
	log.WithFields(logger.Fields{
		"at":         "Reassembler",
		"session_id": buf.SessionID,
		"next_seq":   buf.NextSequenceID,
		"bytes":      buf.Len(),
	}).Warn(reason)
	if err := r.store.Delete(ctx, buf.SessionID); err != nil {
		log.WithError(err).WithField("session_id", buf.SessionID).Error("failed to discard pending buffer")
	}
}
