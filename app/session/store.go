package session

import (
	"context"
	"sync"
	"time"
)

// Store persists session data by id. Implementations: MemoryStore for
// single-process deployments and tests, RedisStore when redis.addr is
// configured.
type Store interface {
	Load(ctx context.Context, id string) (Data, bool, error)
	Save(ctx context.Context, id string, data Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// sweepInterval bounds how long an abandoned entry can stay resident
// past its expiry.
const sweepInterval = 10 * time.Minute

type MemoryStore struct {
	mu        sync.Mutex
	sessions  map[string]memoryEntry
	nextSweep time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:  make(map[string]memoryEntry),
		nextSweep: time.Now().Add(sweepInterval),
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (Data, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok {
		return Data{}, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return Data{}, false, nil
	}
	return entry.data, true, nil
}

// Save upserts an entry. Load only evicts the id it is asked for, so
// Save doubles as the sweep point for sessions nobody comes back for.
func (s *MemoryStore) Save(_ context.Context, id string, data Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	if now.After(s.nextSweep) {
		for staleID, entry := range s.sessions {
			if now.After(entry.expiresAt) {
				delete(s.sessions, staleID)
			}
		}
		s.nextSweep = now.Add(sweepInterval)
	}
	s.sessions[id] = memoryEntry{data: data, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
