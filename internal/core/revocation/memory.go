// Package revocation provides the in-process token denylist used by
// single-instance deployments. Multi-instance deployments swap in the
// redis-backed registry instead.
package revocation

import (
	"context"
	"sync"
)

// Memory is a concurrency-safe set of revoked jtis. Entries live for the
// process lifetime; there is no expiry sweep.
type Memory struct {
	mu   sync.RWMutex
	jtis map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{jtis: make(map[string]struct{})}
}

// Revoke adds jti to the set. Revoking twice is a no-op.
func (m *Memory) Revoke(_ context.Context, jti string) error {
	m.mu.Lock()
	m.jtis[jti] = struct{}{}
	m.mu.Unlock()
	return nil
}

// IsRevoked reports whether jti has been revoked.
func (m *Memory) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.RLock()
	_, ok := m.jtis[jti]
	m.mu.RUnlock()
	return ok, nil
}
