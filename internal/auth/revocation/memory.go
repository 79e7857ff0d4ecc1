package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the denylist used when no redis address is configured.
// Entries live until their ttl passes and are pruned on the next Revoke.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) HealthCheck(context.Context) error {
	return nil
}

func (s *MemoryStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, expiresAt := range s.expires {
		if !now.Before(expiresAt) {
			delete(s.expires, id)
		}
	}

	s.expires[tokenID] = now.Add(ttl)
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.expires[tokenID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiresAt) {
		delete(s.expires, tokenID)
		return false, nil
	}
	return true, nil
}
