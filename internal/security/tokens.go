package security

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injectable so token expiry is testable.
type Clock func() time.Time

// TokenStore tracks issued admin bearer tokens with expiry timestamps.
// Tokens live only in process memory: a restart invalidates all of them.
// For multi-instance deployment this would need a shared backing store.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
	clock  Clock
}

// NewTokenStore creates a token store using the given clock (time.Now when nil).
func NewTokenStore(clock Clock) *TokenStore {
	if clock == nil {
		clock = time.Now
	}
	return &TokenStore{
		tokens: make(map[string]time.Time),
		clock:  clock,
	}
}

// NewTokenID generates a fresh token identifier.
func NewTokenID() string {
	return uuid.New().String()
}

// Put registers a token ID with its expiry.
func (s *TokenStore) Put(id string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[id] = expiresAt
}

// Valid reports whether a token ID is known and unexpired.
func (s *TokenStore) Valid(id string) bool {
	s.mu.RLock()
	expiresAt, ok := s.tokens[id]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return s.clock().Before(expiresAt)
}

// Revoke removes a token ID (logout).
func (s *TokenStore) Revoke(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, id)
}

// Sweep removes expired tokens and returns how many were dropped.
func (s *TokenStore) Sweep() int {
	now := s.clock()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, expiresAt := range s.tokens {
		if !now.Before(expiresAt) {
			delete(s.tokens, id)
			removed++
		}
	}
	return removed
}
