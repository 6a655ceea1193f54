package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers session tokens invalidated by logout until
// their natural expiry, so the auth middleware can reject them early.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
	}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = time.Now().Add(ttl)
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.data[token]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(s.data, token) // cleanup expired
		return false
	}
	return true
}
