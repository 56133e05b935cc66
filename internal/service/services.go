package service

import (
	"context"
	"io"

	"github.com/challenge-dashboard-api/internal/cache"
	"github.com/challenge-dashboard-api/internal/config"
	"github.com/challenge-dashboard-api/internal/models"
	"github.com/challenge-dashboard-api/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ContactService defines the interface for cached contact reads
type ContactService interface {
	Snapshot(ctx context.Context) ([]models.Contact, error)
	Refresh(ctx context.Context) ([]models.Contact, error)
	Invalidate()
}

// MutationService defines the interface for contact mutations
type MutationService interface {
	UpdateChallenge(ctx context.Context, id int64, req *models.UpdateContactRequest) error
	RequestDelete(ctx context.Context, id int64) (models.DeleteOutcome, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	WriteContactsCSV(w io.Writer, contacts []models.Contact) error
}

// SessionService validates operator session tokens against the
// external session store
type SessionService interface {
	Validate(ctx context.Context, token string) (string, error)
	Enabled() bool
}

// Services holds all service interfaces
type Services struct {
	Contacts  ContactService
	Mutations MutationService
	Export    ExportService
	Sessions  SessionService
}

// NewServices creates all services. rdb may be nil, which disables
// operator session validation.
func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *Services {
	contactSvc := newContactService(repos.Contact, cache.NewContactSnapshot(cfg.Dashboard.CacheTTL), log)
	mutationSvc := newMutationService(repos.Contact, contactSvc, log)
	exportSvc := newExportService(log)
	sessionSvc := newSessionService(rdb, log)

	return &Services{
		Contacts:  contactSvc,
		Mutations: mutationSvc,
		Export:    exportSvc,
		Sessions:  sessionSvc,
	}
}
