package sar

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-i2p/logger"
	"github.com/go-usp/go-usp/lib/record"
	"github.com/go-usp/go-usp/lib/wire"
	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
)

// RedisStore keeps each pending buffer under prefix+session_id, encoded as a
// SessionContextRecord whose expected_id is the next sequence id. Keys expire
// after ttl, so Expire has nothing to do.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore takes ownership of client; Close closes it.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(sessionID uint64) string {
	return s.prefix + strconv.FormatUint(sessionID, 10)
}

// Ping checks that the server is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func encodeBuffer(buf *Buffer) []byte {
	rec := &record.SessionContextRecord{
		SessionID:       buf.SessionID,
		ExpectedID:      buf.NextSequenceID,
		PayloadSARState: record.SARInProcess,
		Payload:         buf.Fragments,
	}
	return wire.Marshal(rec)
}

func decodeBuffer(data []byte) (*Buffer, error) {
	var rec record.SessionContextRecord
	if err := rec.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return &Buffer{
		SessionID:      rec.SessionID,
		NextSequenceID: rec.ExpectedID,
		Fragments:      rec.Payload,
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID uint64) (*Buffer, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		log.WithError(err).WithField("session_id", sessionID).Error("failed to load pending buffer")
		return nil, oops.Wrapf(err, "redis get session %d", sessionID)
	}
	buf, err := decodeBuffer(data)
	if err != nil {
		return nil, oops.Wrapf(err, "decode pending buffer for session %d", sessionID)
	}
	return buf, nil
}

func (s *RedisStore) Put(ctx context.Context, buf *Buffer) error {
	key := s.key(buf.SessionID)
	data := encodeBuffer(buf)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, key, data, 0)
		if s.ttl > 0 {
			p.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithFields(logger.Fields{
			"at":         "RedisStore.Put",
			"session_id": buf.SessionID,
			"bytes":      len(data),
		}).Error("failed to store pending buffer")
		return oops.Wrapf(err, "redis put session %d", buf.SessionID)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID uint64) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		log.WithError(err).WithField("session_id", sessionID).Error("failed to delete pending buffer")
		return oops.Wrapf(err, "redis del session %d", sessionID)
	}
	return nil
}

func (s *RedisStore) Len(ctx context.Context) (int, error) {
	n := 0
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n++
	}
	if err := iter.Err(); err != nil {
		return 0, oops.Wrapf(err, "redis scan %s*", s.prefix)
	}
	return n, nil
}

func (s *RedisStore) Expire(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
