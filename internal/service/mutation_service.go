package service

import (
	"context"
	"errors"
	"sync"

	"github.com/challenge-dashboard-api/internal/models"
	"github.com/challenge-dashboard-api/internal/repository"
	"github.com/challenge-dashboard-api/internal/validation"
	"github.com/rs/zerolog"
)

// mutationService is the concrete implementation of MutationService.
// It owns the delete-confirmation state: a single pending-confirm slot,
// because one logical operator drives the dashboard. The slot never
// expires on its own; only a confirming or replacing request moves it.
type mutationService struct {
	contactRepo repository.ContactRepository
	contacts    ContactService
	log         zerolog.Logger

	mu            sync.Mutex
	pendingDelete *int64
}

// newMutationService creates a new MutationService
func newMutationService(contactRepo repository.ContactRepository, contacts ContactService, log zerolog.Logger) *mutationService {
	return &mutationService{
		contactRepo: contactRepo,
		contacts:    contacts,
		log:         log.With().Str("service", "mutation").Logger(),
	}
}

// UpdateChallenge validates and writes a status/current_day change.
// Invalid values never reach the store. The snapshot is invalidated
// only after the store confirms the write, so a failed mutation leaves
// the cached read state intact.
func (s *mutationService) UpdateChallenge(ctx context.Context, id int64, req *models.UpdateContactRequest) error {
	if errs := validation.ValidateChallengeUpdate(req); len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	err := s.contactRepo.UpdateChallenge(ctx, id, models.ContactStatus(req.Status), *req.CurrentDay)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return &StoreError{Op: "update", Err: err}
	}

	s.contacts.Invalidate()
	s.log.Info().
		Int64("id", id).
		Str("status", req.Status).
		Int("current_day", *req.CurrentDay).
		Msg("Contact updated")
	return nil
}

// RequestDelete drives the two-step delete confirmation. The first
// request for an id parks it in the pending slot without touching the
// store; repeating the same id performs the delete and clears the slot.
// A request for a different id replaces the slot, it never confirms the
// first. A failed store delete keeps the slot set so the identical
// request can be retried.
func (s *mutationService) RequestDelete(ctx context.Context, id int64) (models.DeleteOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingDelete == nil || *s.pendingDelete != id {
		pending := id
		s.pendingDelete = &pending
		s.log.Info().Int64("id", id).Msg("Delete requested, awaiting confirmation")
		return models.DeleteConfirmationRequired, nil
	}

	if err := s.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Row already gone; the intent is consumed either way.
			s.pendingDelete = nil
			return "", err
		}
		return "", &StoreError{Op: "delete", Err: err}
	}

	s.pendingDelete = nil
	s.contacts.Invalidate()
	s.log.Info().Int64("id", id).Msg("Contact deleted")
	return models.DeleteDone, nil
}
