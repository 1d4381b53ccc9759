package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/memodeck/memodeck/internal/models"
	"github.com/memodeck/memodeck/internal/streak"
)

// MockGamifyService is a mock implementation of services.GamifyService
type MockGamifyService struct {
	mock.Mock
}

func (m *MockGamifyService) Snapshot(ctx context.Context) (*models.GamifySnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GamifySnapshot), args.Error(1)
}

func (m *MockGamifyService) OnReviewProgress(ctx context.Context, totalReviews int) error {
	args := m.Called(ctx, totalReviews)
	return args.Error(0)
}

func (m *MockGamifyService) OnStreakEvents(ctx context.Context, events []streak.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockGamifyService) OnCardCreated(ctx context.Context, totalCards int) error {
	args := m.Called(ctx, totalCards)
	return args.Error(0)
}

func (m *MockGamifyService) OnDeckCreated(ctx context.Context, totalDecks int) error {
	args := m.Called(ctx, totalDecks)
	return args.Error(0)
}
