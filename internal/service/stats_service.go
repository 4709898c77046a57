// internal/service/stats_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_goal_keep/internal/middleware"
	"go_5_goal_keep/internal/model"
	"go_5_goal_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	// GetStats はユーザーの全目標を対象にダッシュボード統計を計算します。
	// today はテスト注入可能にするため引数で受け取ります。
	GetStats(ctx context.Context, userID uuid.UUID, today time.Time) (*model.StatsResponse, error)
	// GetMonthGrid は指定目標の月間カレンダーを組み立てます。month は 1-12。
	GetMonthGrid(ctx context.Context, userID, goalID uuid.UUID, year int, month time.Month) (*model.MonthGridResponse, error)
}

type statsService struct {
	db       *gorm.DB
	goalRepo repository.GoalRepository
}

func NewStatsService(db *gorm.DB, goalRepo repository.GoalRepository) StatsService {
	return &statsService{
		db:       db,
		goalRepo: goalRepo,
	}
}

func (s *statsService) GetStats(ctx context.Context, userID uuid.UUID, today time.Time) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	goals, err := s.goalRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to fetch goals for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計情報の取得に失敗しました。", "", err)
	}

	// 目標0件でも全項目0のレスポンスを返す (NaN や除算エラーにしない)
	return ComputeStats(goals, today), nil
}

func (s *statsService) GetMonthGrid(ctx context.Context, userID, goalID uuid.UUID, year int, month time.Month) (*model.MonthGridResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "goal_id", goalID)

	if month < time.January || month > time.December {
		return nil, model.NewAppError("VALIDATION_ERROR", "月は1〜12で指定してください。", "month", model.ErrInvalidInput)
	}

	goal, err := s.goalRepo.FindByID(ctx, s.db, goalID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "目標が見つかりません。", "goal_id", model.ErrNotFound)
		}
		logger.Error("Failed to find goal for calendar", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "目標の取得に失敗しました。", "", err)
	}
	if goal.UserID != userID {
		logger.Warn("Goal ownership mismatch", "owner_id", goal.UserID)
		return nil, model.NewAppError("FORBIDDEN", "この目標を操作する権限がありません。", "goal_id", model.ErrForbidden)
	}

	return BuildMonthGrid(goal, year, month), nil
}
