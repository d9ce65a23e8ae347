package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore is the default TokenStore: a map with lazy expiry, good for a
// single process.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(_ context.Context, jti string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jti] = memoryEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, jti)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, jti)
	return nil
}
