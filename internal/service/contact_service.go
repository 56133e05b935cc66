package service

import (
	"context"

	"github.com/challenge-dashboard-api/internal/cache"
	"github.com/challenge-dashboard-api/internal/models"
	"github.com/challenge-dashboard-api/internal/repository"
	"github.com/rs/zerolog"
)

// contactService is the concrete implementation of ContactService
type contactService struct {
	contactRepo repository.ContactRepository
	snapshot    *cache.ContactSnapshot
	log         zerolog.Logger
}

// newContactService creates a new ContactService owning the snapshot
func newContactService(contactRepo repository.ContactRepository, snapshot *cache.ContactSnapshot, log zerolog.Logger) *contactService {
	return &contactService{
		contactRepo: contactRepo,
		snapshot:    snapshot,
		log:         log.With().Str("service", "contact").Logger(),
	}
}

// Snapshot returns the cached contact collection, fetching from the
// store when the cache is cold, invalidated or expired. Population is
// a blocking synchronous call; there is no background refresh.
func (s *contactService) Snapshot(ctx context.Context) ([]models.Contact, error) {
	if contacts, ok := s.snapshot.Get(); ok {
		return contacts, nil
	}
	return s.Refresh(ctx)
}

// Refresh unconditionally re-fetches the collection and repopulates
// the snapshot.
func (s *contactService) Refresh(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	s.snapshot.Put(contacts)
	s.log.Debug().Int("count", len(contacts)).Msg("Contact snapshot refreshed")
	return contacts, nil
}

// Invalidate drops the snapshot so the next read is a full re-fetch
func (s *contactService) Invalidate() {
	s.snapshot.Invalidate()
}
