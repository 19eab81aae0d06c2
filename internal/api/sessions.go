package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// Sessions is an in-memory session registry mapping opaque tokens to
// the authenticated mailbox address.
type Sessions struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]string)}
}

// Open creates a session for the given address and returns its token.
func (s *Sessions) Open(email string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.tokens[token] = email
	s.mu.Unlock()
	return token, nil
}

// Lookup resolves a token to its address.
func (s *Sessions) Lookup(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email, ok := s.tokens[token]
	return email, ok
}

// Close invalidates a token.
func (s *Sessions) Close(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
