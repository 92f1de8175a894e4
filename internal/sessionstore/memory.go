// Package sessionstore keeps ephemeral negotiation sessions.
package sessionstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rachmurali02/social-app/internal/domain"
)

const DefaultTTL = 2 * time.Hour

const maxIDAttempts = 5

type Option func(*config)

type config struct {
	ttl   time.Duration
	now   func() time.Time
	newID func() (string, error)
}

func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

func WithIDGenerator(gen func() (string, error)) Option {
	return func(c *config) {
		if gen != nil {
			c.newID = gen
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		ttl:   DefaultTTL,
		now:   func() time.Time { return time.Now().UTC() },
		newID: NewID,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// MemoryStore is a process-local session store. A Get issued after an
// Upsert returned observes that Upsert. Sessions older than the TTL are
// invisible and removed by DeleteExpired.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*domain.Session
	cfg   config
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]*domain.Session),
		cfg:   newConfig(opts),
	}
}

// Create assigns a fresh id and timestamps to s and stores a copy.
func (m *MemoryStore) Create(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.cfg.now()
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := m.cfg.newID()
		if err != nil {
			return fmt.Errorf("generate session id: %w", err)
		}
		if cur, ok := m.items[id]; ok && !m.expired(cur, now) {
			continue
		}

		s.ID = id
		s.CreatedAt = now
		s.UpdatedAt = now
		if s.Options == nil {
			s.Options = []domain.Option{}
		}
		m.items[id] = s.Clone()
		return nil
	}

	return fmt.Errorf("generate session id: %d collisions in a row", maxIDAttempts)
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.items[id]
	if !ok || m.expired(s, m.cfg.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return s.Clone(), nil
}

// Upsert merges the patch field by field. A missing or expired session is
// replaced by a new one built from the patch alone. A patch that would move
// a seat already held by another user is refused with ErrForbidden.
func (m *MemoryStore) Upsert(_ context.Context, id string, patch domain.SessionPatch) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.cfg.now()
	s, ok := m.items[id]
	if !ok || m.expired(s, now) {
		s = &domain.Session{ID: id, Options: []domain.Option{}, CreatedAt: now}
		m.items[id] = s
	}

	if err := checkClaims(s, patch); err != nil {
		return nil, err
	}

	patch.Apply(s)
	s.UpdatedAt = now

	return s.Clone(), nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.cfg.now()
	removed := 0
	for id, s := range m.items {
		if m.expired(s, now) {
			delete(m.items, id)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MemoryStore) expired(s *domain.Session, now time.Time) bool {
	return now.Sub(s.CreatedAt) > m.cfg.ttl
}

// checkClaims refuses a patch that reassigns a seat another user holds.
func checkClaims(s *domain.Session, patch domain.SessionPatch) error {
	if patch.InitiatorID != nil && s.InitiatorID != "" && s.InitiatorID != *patch.InitiatorID {
		return fmt.Errorf("%w: session already has an initiator", domain.ErrForbidden)
	}
	if patch.CounterpartyID != nil && s.CounterpartyID != "" && s.CounterpartyID != *patch.CounterpartyID {
		return fmt.Errorf("%w: counterparty seat already taken", domain.ErrForbidden)
	}
	return nil
}
