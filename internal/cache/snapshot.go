package cache

import (
	"sync"
	"time"

	"github.com/challenge-dashboard-api/internal/models"
)

// DefaultTTL bounds how stale a served snapshot may be.
const DefaultTTL = 60 * time.Second

// ContactSnapshot is an explicit time-bounded cache of the full contact
// collection: the data, when it was fetched, and how long it stays
// fresh. The owning service decides when to populate or drop it; nothing
// here is package-global. Consumers must treat the returned slice as
// read-only.
type ContactSnapshot struct {
	mu        sync.Mutex
	data      []models.Contact
	fetchedAt time.Time
	ttl       time.Duration
}

// NewContactSnapshot creates an empty snapshot with the given TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewContactSnapshot(ttl time.Duration) *ContactSnapshot {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ContactSnapshot{ttl: ttl}
}

// Get returns the cached collection and true while the snapshot is
// fresh. A never-populated, invalidated or expired snapshot returns
// false and the caller re-fetches. An empty collection is a valid
// cached state, not a miss.
func (s *ContactSnapshot) Get() ([]models.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetchedAt.IsZero() || time.Since(s.fetchedAt) > s.ttl {
		return nil, false
	}
	return s.data, true
}

// Put replaces the snapshot contents and restarts the TTL clock.
func (s *ContactSnapshot) Put(contacts []models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = contacts
	s.fetchedAt = time.Now()
}

// Invalidate drops the snapshot so the next Get is a miss.
func (s *ContactSnapshot) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.fetchedAt = time.Time{}
}

// TTL reports the configured time-to-live.
func (s *ContactSnapshot) TTL() time.Duration {
	return s.ttl
}
