// internal/service/goal_service.go
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

type GoalService interface {
	CreateGoal(ctx context.Context, userID uuid.UUID, req *model.CreateGoalRequest) (*model.Goal, error)
	GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*model.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*model.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *model.UpdateGoalRequest) (*model.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error
	// CompleteGoal は「今日の分を達成した」イベントを適用します。
	// now はテスト注入可能にするため必ず引数で受け取ります。
	CompleteGoal(ctx context.Context, userID, goalID uuid.UUID, now time.Time) (*model.CompleteGoalResponse, error)
}

type goalService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	goalRepo repository.GoalRepository
}

func NewGoalService(db *gorm.DB, goalRepo repository.GoalRepository) GoalService {
	return &goalService{
		db:       db,
		goalRepo: goalRepo,
	}
}

func (s *goalService) CreateGoal(ctx context.Context, userID uuid.UUID, req *model.CreateGoalRequest) (*model.Goal, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if req.Title == "" || req.DailyTarget == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "タイトルと毎日の目標は必須です。", "title,daily_target", model.ErrInvalidInput)
	}

	frequency := model.ReminderNone
	if req.ReminderFrequency != "" {
		frequency = model.ReminderFrequency(req.ReminderFrequency)
	}
	if err := validateReminder(frequency, req.ReminderDays); err != nil {
		return nil, err
	}

	goal := &model.Goal{
		GoalID:      uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DailyTarget: req.DailyTarget,
		// 未知のカテゴリはエラーにせず Other に倒す
		Category:          model.ParseCategory(req.Category),
		CurrentLevel:      1,
		Streak:            0,
		ReminderFrequency: frequency,
		ReminderTime:      req.ReminderTime,
		ReminderDays:      req.ReminderDays,
	}

	if err := s.goalRepo.Create(ctx, s.db, goal); err != nil {
		logger.Error("Failed to create goal", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "目標の作成に失敗しました。", "", err)
	}

	logger.Info("Goal created", "goal_id", goal.GoalID)
	return goal, nil
}

func (s *goalService) GetGoal(ctx context.Context, userID, goalID uuid.UUID) (*model.Goal, error) {
	goal, err := s.findOwnedGoal(ctx, s.db, userID, goalID)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *goalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*model.Goal, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	goals, err := s.goalRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list goals", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "目標一覧の取得に失敗しました。", "", err)
	}
	return goals, nil
}

// UpdateGoal は編集対象のフィールドだけを更新します。
// streak / current_level / 完了履歴はこの操作では決して変更されません。
func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, req *model.UpdateGoalRequest) (*model.Goal, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "goal_id", goalID)

	var updated *model.Goal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		goal, err := s.findOwnedGoal(ctx, tx, userID, goalID)
		if err != nil {
			return err
		}

		if req.Title != nil {
			goal.Title = *req.Title
		}
		if req.Description != nil {
			goal.Description = *req.Description
		}
		if req.DailyTarget != nil {
			goal.DailyTarget = *req.DailyTarget
		}
		if req.Category != nil {
			goal.Category = model.ParseCategory(*req.Category)
		}
		if req.ReminderFrequency != nil {
			goal.ReminderFrequency = model.ReminderFrequency(*req.ReminderFrequency)
		}
		if req.ReminderTime != nil {
			goal.ReminderTime = *req.ReminderTime
		}
		if req.ReminderDays != nil {
			goal.ReminderDays = *req.ReminderDays
		}

		// 編集後の状態で整合性をチェック (Weekly なのに曜日未選択、など)
		if err := validateReminder(goal.ReminderFrequency, goal.ReminderDays); err != nil {
			return err
		}

		if err := s.goalRepo.Update(ctx, tx, goal); err != nil {
			logger.Error("Failed to update goal", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "目標の更新に失敗しました。", "", err)
		}
		updated = goal
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Goal updated")
	return updated, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "goal_id", goalID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.findOwnedGoal(ctx, tx, userID, goalID); err != nil {
			return err
		}
		if err := s.goalRepo.Delete(ctx, tx, goalID); err != nil {
			logger.Error("Failed to delete goal", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "目標の削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Goal deleted")
	return nil
}

// CompleteGoal は完了イベントをトランザクション内で適用します。
// 行ロック (SELECT ... FOR UPDATE) により、同一目標への同時完了は直列化され、
// 同じ暦日に2回成功することはありません。別目標同士の完了は並行に進みます。
func (s *goalService) CompleteGoal(ctx context.Context, userID, goalID uuid.UUID, now time.Time) (*model.CompleteGoalResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "goal_id", goalID)

	var progress *ProgressResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		goal, err := s.goalRepo.FindByIDForUpdate(ctx, tx, goalID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("NOT_FOUND", "目標が見つかりません。", "goal_id", model.ErrNotFound)
			}
			logger.Error("Failed to lock goal for completion", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "目標の取得に失敗しました。", "", err)
		}
		if goal.UserID != userID {
			logger.Warn("Goal ownership mismatch", "owner_id", goal.UserID)
			return model.NewAppError("FORBIDDEN", "この目標を操作する権限がありません。", "goal_id", model.ErrForbidden)
		}

		result, err := AdvanceProgress(goal, now)
		if err != nil {
			if errors.Is(err, model.ErrAlreadyCompleted) {
				logger.Info("Duplicate completion attempt", "last_completed", goal.LastCompleted)
				return model.NewAppError("ALREADY_COMPLETED", "この目標は今日すでに達成済みです！", "", model.ErrAlreadyCompleted)
			}
			return err
		}

		if err := s.goalRepo.Update(ctx, tx, result.Goal); err != nil {
			logger.Error("Failed to persist progress", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "達成の記録に失敗しました。", "", err)
		}
		// 履歴は追記専用。1回の成功につき必ず1件増える。
		completion := &model.GoalCompletion{
			CompletionID: uuid.New(),
			GoalID:       goal.GoalID,
			CompletedAt:  now,
		}
		if err := s.goalRepo.AppendCompletion(ctx, tx, completion); err != nil {
			logger.Error("Failed to append completion history", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "達成履歴の記録に失敗しました。", "", err)
		}

		progress = result
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	// コミット済みの状態を履歴付きで取り直す
	reloaded, err := s.goalRepo.FindByID(ctx, s.db, goalID)
	if err != nil {
		logger.Error("Failed to reload goal after completion", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "目標の再取得に失敗しました。", "", err)
	}

	logger.Info("Goal completed",
		"streak", reloaded.Streak,
		"level", reloaded.CurrentLevel,
		"leveled_up", progress.LeveledUp,
	)

	return &model.CompleteGoalResponse{
		Goal:      reloaded,
		LeveledUp: progress.LeveledUp,
		OldLevel:  progress.OldLevel,
		NewLevel:  progress.NewLevel,
	}, nil
}

// findOwnedGoal は目標を取得し、所有者を確認します
func (s *goalService) findOwnedGoal(ctx context.Context, db *gorm.DB, userID, goalID uuid.UUID) (*model.Goal, error) {
	logger := middleware.GetLogger(ctx)

	goal, err := s.goalRepo.FindByID(ctx, db, goalID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "目標が見つかりません。", "goal_id", model.ErrNotFound)
		}
		logger.Error("Failed to find goal", "goal_id", goalID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "目標の取得に失敗しました。", "", err)
	}
	if goal.UserID != userID {
		logger.Warn("Goal ownership mismatch", "goal_id", goalID, "owner_id", goal.UserID)
		return nil, model.NewAppError("FORBIDDEN", "この目標を操作する権限がありません。", "goal_id", model.ErrForbidden)
	}
	return goal, nil
}

// validateReminder はリマインダー設定の整合性をチェックします。
// Weekly なのに曜日が1つも選ばれていない場合は編集段階で弾きます。
func validateReminder(frequency model.ReminderFrequency, days []int) error {
	switch frequency {
	case model.ReminderNone, model.ReminderDaily, "":
		return nil
	case model.ReminderWeekly:
		if len(days) == 0 {
			return model.NewAppError("VALIDATION_ERROR", "毎週のリマインダーには曜日を1つ以上選択してください。", "reminder_days", model.ErrInvalidInput)
		}
		return nil
	default:
		return model.NewAppError("VALIDATION_ERROR", "リマインダー頻度の値が不正です。", "reminder_frequency", model.ErrInvalidInput)
	}
}
