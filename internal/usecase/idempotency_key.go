package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// IdempotencyKeyManager scopes one idempotency key to one logical payment attempt.
//
// The same key is returned until Rotate is called. Callers rotate after every
// terminal outcome (success or error) so a later attempt is never coalesced
// with a completed one by the processor.
type IdempotencyKeyManager struct {
	mu      sync.Mutex
	current string
	newKey  func() string
}

func NewIdempotencyKeyManager() *IdempotencyKeyManager {
	return &IdempotencyKeyManager{newKey: uuid.NewString}
}

// Issue returns the key of the current attempt, generating it on first use.
func (m *IdempotencyKeyManager) Issue() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == "" {
		m.current = m.newKey()
	}
	return m.current
}

// Rotate discards the current key and returns a fresh one.
func (m *IdempotencyKeyManager) Rotate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.current
	for {
		m.current = m.newKey()
		if m.current != prev {
			return m.current
		}
	}
}
