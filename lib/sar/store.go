package sar

import (
	"context"
	"time"

	"github.com/go-usp/go-usp/lib/config"
	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
)

// Buffer is the pending state of one session being reassembled.
type Buffer struct {
	SessionID uint64
	// NextSequenceID is the sequence id the next segment must carry.
	NextSequenceID uint64
	Fragments      [][]byte
	// Updated is the time the last segment was accepted. Stores that expire entries
	// on their own may leave it zero.
	Updated time.Time
}

// Len returns the number of buffered payload bytes.
func (b *Buffer) Len() int {
	n := 0
	for _, f := range b.Fragments {
		n += len(f)
	}
	return n
}

// Store keeps pending buffers between segments. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the buffer for sessionID, or nil if there is none.
	Get(ctx context.Context, sessionID uint64) (*Buffer, error)
	Put(ctx context.Context, buf *Buffer) error
	Delete(ctx context.Context, sessionID uint64) error
	// Len returns the number of pending sessions.
	Len(ctx context.Context) (int, error)
	// Expire removes buffers last updated before the cutoff and returns how many
	// were removed.
	Expire(ctx context.Context, before time.Time) (int, error)
	Close() error
}

// NewStoreFromConfig returns the Store selected by cfg.Store.
func NewStoreFromConfig(cfg config.SARConfig) (Store, error) {
	switch cfg.Store {
	case "", config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
			DialTimeout:  2 * time.Second,
		})
		return NewRedisStore(client, cfg.Redis.KeyPrefix, cfg.FragmentTTL), nil
	}
	return nil, oops.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
}
