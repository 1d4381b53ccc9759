package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/memodeck/memodeck/internal/models"
)

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Get(ctx context.Context, cardID string) (*models.ReviewProgress, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewProgress), args.Error(1)
}

func (m *MockProgressRepository) Set(ctx context.Context, cardID string, progress models.ReviewProgress) error {
	args := m.Called(ctx, cardID, progress)
	return args.Error(0)
}

func (m *MockProgressRepository) Delete(ctx context.Context, cardID string) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func (m *MockProgressRepository) All(ctx context.Context) (map[string]models.ReviewProgress, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]models.ReviewProgress), args.Error(1)
}
