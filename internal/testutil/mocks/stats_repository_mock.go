package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/memodeck/memodeck/internal/models"
)

// MockStatsRepository is a mock implementation of repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStats(ctx context.Context) (*models.StudyStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyStats), args.Error(1)
}

func (m *MockStatsRepository) SetDailyGoal(ctx context.Context, goal int) error {
	args := m.Called(ctx, goal)
	return args.Error(0)
}

func (m *MockStatsRepository) RecordReview(ctx context.Context, date string, correct bool) error {
	args := m.Called(ctx, date, correct)
	return args.Error(0)
}

func (m *MockStatsRepository) History(ctx context.Context, limit int) ([]models.DailyStat, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyStat), args.Error(1)
}

func (m *MockStatsRepository) TodayReviewed(ctx context.Context, date string) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsRepository) GetStreak(ctx context.Context) (*models.StreakState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StreakState), args.Error(1)
}

func (m *MockStatsRepository) SaveStreak(ctx context.Context, state models.StreakState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}
