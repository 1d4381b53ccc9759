package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/memodeck/memodeck/internal/models"
)

// MockGamifyRepository is a mock implementation of repository.GamifyRepository
type MockGamifyRepository struct {
	mock.Mock
}

func (m *MockGamifyRepository) GetExperience(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGamifyRepository) AddExperience(ctx context.Context, amount int) (int, error) {
	args := m.Called(ctx, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockGamifyRepository) UnlockedAchievements(ctx context.Context) (map[string]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]time.Time), args.Error(1)
}

func (m *MockGamifyRepository) UnlockAchievement(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockGamifyRepository) AppendActivity(ctx context.Context, entry models.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGamifyRepository) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityEntry), args.Error(1)
}
