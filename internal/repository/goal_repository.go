// internal/repository/goal_repository.go
package repository

import (
	"context"
	"errors"

	"go_5_goal_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalRepository interface {
	Create(ctx context.Context, tx *gorm.DB, goal *model.Goal) error // トランザクション対応
	FindByID(ctx context.Context, db *gorm.DB, goalID uuid.UUID) (*model.Goal, error)
	// FindByIDForUpdate は行ロック (SELECT ... FOR UPDATE) 付きで取得します。
	// 完了処理の read-modify-write を目標単位で直列化するために使います。
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) (*model.Goal, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Goal, error)
	Update(ctx context.Context, tx *gorm.DB, goal *model.Goal) error
	Delete(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) error
	AppendCompletion(ctx context.Context, tx *gorm.DB, completion *model.GoalCompletion) error
	// FindRemindable はリマインダーが有効な目標を所有者付きで取得します
	FindRemindable(ctx context.Context, db *gorm.DB) ([]*model.Goal, error)
}

type gormGoalRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormGoalRepository() GoalRepository {
	return &gormGoalRepository{}
}

// 履歴は挿入順 = 時系列順で取得する
func preloadHistory(db *gorm.DB) *gorm.DB {
	return db.Preload("CompletionHistory", func(db *gorm.DB) *gorm.DB {
		return db.Order("goal_completions.completed_at ASC")
	})
}

func (r *gormGoalRepository) Create(ctx context.Context, tx *gorm.DB, goal *model.Goal) error {
	return tx.WithContext(ctx).Create(goal).Error
}

func (r *gormGoalRepository) FindByID(ctx context.Context, db *gorm.DB, goalID uuid.UUID) (*model.Goal, error) {
	var goal model.Goal
	result := preloadHistory(db.WithContext(ctx)).Where("goal_id = ?", goalID).First(&goal)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &goal, nil
}

func (r *gormGoalRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) (*model.Goal, error) {
	var goal model.Goal
	// 履歴のPreloadはしない (ロック対象は goals 行のみ)
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("goal_id = ?", goalID).
		First(&goal)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &goal, nil
}

func (r *gormGoalRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Goal, error) {
	var goals []*model.Goal
	result := preloadHistory(db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals)
	if result.Error != nil {
		return nil, result.Error
	}
	return goals, nil
}

func (r *gormGoalRepository) Update(ctx context.Context, tx *gorm.DB, goal *model.Goal) error {
	// goal オブジェクト全体を渡して更新。存在確認は呼び出し元(Service)で行っている想定。
	// 履歴は AppendCompletion で追記するため、ここでは関連を保存しない。
	result := tx.WithContext(ctx).Omit("CompletionHistory").Save(goal)
	return result.Error
}

func (r *gormGoalRepository) Delete(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) error {
	// 物理削除。履歴も合わせて削除する (外部キーのCASCADEに頼らない)
	if err := tx.WithContext(ctx).Where("goal_id = ?", goalID).Delete(&model.GoalCompletion{}).Error; err != nil {
		return err
	}
	result := tx.WithContext(ctx).Where("goal_id = ?", goalID).Delete(&model.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormGoalRepository) AppendCompletion(ctx context.Context, tx *gorm.DB, completion *model.GoalCompletion) error {
	return tx.WithContext(ctx).Create(completion).Error
}

func (r *gormGoalRepository) FindRemindable(ctx context.Context, db *gorm.DB) ([]*model.Goal, error) {
	var goals []*model.Goal
	result := db.WithContext(ctx).
		Preload("User").
		Where("reminder_frequency <> ?", model.ReminderNone).
		Find(&goals)
	if result.Error != nil {
		return nil, result.Error
	}
	return goals, nil
}
