package repository

import (
	"context"
	"errors"

	"github.com/challenge-dashboard-api/internal/database"
	"github.com/challenge-dashboard-api/internal/models"
)

// ErrNotFound is returned when a mutation targets an id with no row.
var ErrNotFound = errors.New("contact not found")

// ContactRepository defines the interface for contact data operations
type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	UpdateChallenge(ctx context.Context, id int64, status models.ContactStatus, currentDay int) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Contact ContactRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Contact: NewContactRepo(db),
	}
}
