package mocks

import (
	"context"

	"github.com/challenge-dashboard-api/internal/models"
	"github.com/challenge-dashboard-api/internal/repository"
)

// MockContactRepository is a mock implementation of ContactRepository
// backed by an in-memory slice. The slice keeps insertion order so
// tests see a stable collection order, like the real query does.
type MockContactRepository struct {
	Contacts []models.Contact

	ListErr   error
	UpdateErr error
	DeleteErr error

	ListCalls   int
	UpdateCalls int
	DeleteCalls int
}

var _ repository.ContactRepository = (*MockContactRepository)(nil)

func NewMockContactRepository(contacts ...models.Contact) *MockContactRepository {
	return &MockContactRepository{
		Contacts: append([]models.Contact{}, contacts...),
	}
}

func (m *MockContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]models.Contact{}, m.Contacts...), nil
}

func (m *MockContactRepository) UpdateChallenge(ctx context.Context, id int64, status models.ContactStatus, currentDay int) error {
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Contacts {
		if m.Contacts[i].ID == id {
			m.Contacts[i].Status = status
			m.Contacts[i].CurrentDay = currentDay
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i := range m.Contacts {
		if m.Contacts[i].ID == id {
			m.Contacts = append(m.Contacts[:i], m.Contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *MockContactRepository) Count(ctx context.Context) (int, error) {
	return len(m.Contacts), nil
}
