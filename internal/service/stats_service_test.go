// internal/service/stats_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go_5_goal_keep/internal/model"
	"go_5_goal_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_statsService_GetStats(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("正常系: 目標を取得して統計を返す", func(t *testing.T) {
		db := setupTestDBGoal()
		mockGoalRepo := new(mocks.GoalRepository)
		statsService := NewStatsService(db, mockGoalRepo)

		goals := []*model.Goal{
			makeGoal(model.CategoryFitness, 1, 1, today),
			makeGoal(model.CategoryLearning, 2, 7),
		}
		mockGoalRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(goals, nil).Once()

		stats, err := statsService.GetStats(ctx, userID, today)

		require.NoError(t, err)
		assert.Equal(t, 2, stats.Summary.TotalGoals)
		assert.InDelta(t, 50.0, stats.DailyRate, 0.01)
		mockGoalRepo.AssertExpectations(t)
	})

	t.Run("正常系: 目標0件でも空の統計を返す", func(t *testing.T) {
		db := setupTestDBGoal()
		mockGoalRepo := new(mocks.GoalRepository)
		statsService := NewStatsService(db, mockGoalRepo)

		mockGoalRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
			Return(nil, nil).Once()

		stats, err := statsService.GetStats(ctx, userID, today)

		require.NoError(t, err)
		assert.Equal(t, 0.0, stats.DailyRate)
		assert.Equal(t, 0, stats.Summary.TotalGoals)
		mockGoalRepo.AssertExpectations(t)
	})
}

func Test_statsService_GetMonthGrid(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	goalID := uuid.New()

	t.Run("正常系: 所有する目標のカレンダーを返す", func(t *testing.T) {
		db := setupTestDBGoal()
		mockGoalRepo := new(mocks.GoalRepository)
		statsService := NewStatsService(db, mockGoalRepo)

		goal := &model.Goal{
			GoalID: goalID,
			UserID: userID,
			CompletionHistory: []model.GoalCompletion{
				{CompletedAt: time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)},
			},
		}
		mockGoalRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), goalID).
			Return(goal, nil).Once()

		grid, err := statsService.GetMonthGrid(ctx, userID, goalID, 2024, time.February)

		require.NoError(t, err)
		assert.Equal(t, 2024, grid.Year)
		assert.Len(t, grid.Days, 29)
		assert.True(t, grid.Days[28].Completed)
		mockGoalRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他ユーザーの目標は参照できない", func(t *testing.T) {
		db := setupTestDBGoal()
		mockGoalRepo := new(mocks.GoalRepository)
		statsService := NewStatsService(db, mockGoalRepo)

		goal := &model.Goal{GoalID: goalID, UserID: uuid.New()}
		mockGoalRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), goalID).
			Return(goal, nil).Once()

		_, err := statsService.GetMonthGrid(ctx, userID, goalID, 2024, time.February)
		assert.ErrorIs(t, err, model.ErrForbidden)
		mockGoalRepo.AssertExpectations(t)
	})

	t.Run("異常系: 月の範囲外", func(t *testing.T) {
		db := setupTestDBGoal()
		mockGoalRepo := new(mocks.GoalRepository)
		statsService := NewStatsService(db, mockGoalRepo)

		_, err := statsService.GetMonthGrid(ctx, userID, goalID, 2024, time.Month(13))
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		_, err = statsService.GetMonthGrid(ctx, userID, goalID, 2024, time.Month(0))
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
