package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/domain/repository"
	"tripgenie-service/pkg/metrics"
)

// MemorySessionStore is the default single-instance session store. Every
// mutation runs under one lock, and callers only ever see deep copies, so
// a reader can never observe a half-applied selection change.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	metrics  *metrics.Metrics
	stop     chan struct{}
	stopOnce sync.Once
}

type memoryEntry struct {
	session   *entity.PlanningSession
	expiresAt time.Time
}

// NewMemorySessionStore creates an in-memory session store. A ttl of zero
// disables expiry; otherwise a background sweep evicts stale sessions.
func NewMemorySessionStore(ttl time.Duration, m *metrics.Metrics) *MemorySessionStore {
	store := &MemorySessionStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		metrics:  m,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go store.sweep()
	}
	return store
}

// Put stores a deep copy of the session, replacing any existing one.
func (s *MemorySessionStore) Put(ctx context.Context, session *entity.PlanningSession) error {
	clone, err := cloneSession(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memoryEntry{
		session:   clone,
		expiresAt: s.deadline(),
	}
	return nil
}

// Get returns a deep copy of the session.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*entity.PlanningSession, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || s.expired(entry) {
		return nil, repository.ErrSessionNotFound
	}
	return cloneSession(entry.session)
}

// Update applies mutate under the store lock. The mutation runs on a copy;
// a failing mutate leaves the stored session untouched.
func (s *MemorySessionStore) Update(ctx context.Context, id string, mutate func(*entity.PlanningSession) error) (*entity.PlanningSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok || s.expired(entry) {
		return nil, repository.ErrSessionNotFound
	}

	working, err := cloneSession(entry.session)
	if err != nil {
		return nil, err
	}
	if err := mutate(working); err != nil {
		return nil, err
	}

	s.sessions[id] = memoryEntry{
		session:   working,
		expiresAt: s.deadline(),
	}
	return cloneSession(working)
}

// Delete removes a session. Unknown ids are a no-op.
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Close stops the background sweep.
func (s *MemorySessionStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemorySessionStore) deadline() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(s.ttl)
}

func (s *MemorySessionStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)
}

func (s *MemorySessionStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemorySessionStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.sessions {
		if s.expired(entry) {
			delete(s.sessions, id)
			if s.metrics != nil {
				s.metrics.SessionsExpired.Inc()
			}
		}
	}
}

// cloneSession deep-copies through JSON so nested slices and maps are never
// shared between the store and its callers.
func cloneSession(session *entity.PlanningSession) (*entity.PlanningSession, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to copy session %s: %w", session.ID, err)
	}
	var clone entity.PlanningSession
	if err := json.Unmarshal(raw, &clone); err != nil {
		return nil, fmt.Errorf("failed to copy session %s: %w", session.ID, err)
	}
	return &clone, nil
}
