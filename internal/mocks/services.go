package mocks

import (
	"context"

	"github.com/challenge-dashboard-api/internal/service"
)

// MockSessionService is a mock implementation of SessionService with a
// fixed token-to-operator table
type MockSessionService struct {
	Sessions      map[string]string
	ValidateCalls int
}

// Verify interface compliance
var _ service.SessionService = (*MockSessionService)(nil)

func NewMockSessionService() *MockSessionService {
	return &MockSessionService{
		Sessions: make(map[string]string),
	}
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (string, error) {
	m.ValidateCalls++
	if operator, ok := m.Sessions[token]; ok {
		return operator, nil
	}
	return "", service.ErrSessionInvalid
}

func (m *MockSessionService) Enabled() bool {
	return true
}
