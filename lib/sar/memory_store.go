package sar

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps pending buffers in a map.
type MemoryStore struct {
	mu      sync.Mutex
	buffers map[uint64]*Buffer
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buffers: make(map[uint64]*Buffer)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID uint64) (*Buffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok := s.buffers[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *buf
	cp.Fragments = append([][]byte(nil), buf.Fragments...)
	return &cp, nil
}

func (s *MemoryStore) Put(_ context.Context, buf *Buffer) error {
	cp := *buf
	cp.Fragments = append([][]byte(nil), buf.Fragments...)
	s.mu.Lock()
	s.buffers[buf.SessionID] = &cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID uint64) error {
	s.mu.Lock()
	delete(s.buffers, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffers), nil
}

func (s *MemoryStore) Expire(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, buf := range s.buffers {
		if buf.Updated.Before(before) {
			delete(s.buffers, id)
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	s.buffers = make(map[uint64]*Buffer)
	s.mu.Unlock()
	return nil
}
