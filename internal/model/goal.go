// internal/model/goal.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GoalCategory は目標のカテゴリです
type GoalCategory string

const (
	CategoryFitness  GoalCategory = "Fitness"
	CategoryMindset  GoalCategory = "Mindset"
	CategoryLearning GoalCategory = "Learning"
	CategoryWork     GoalCategory = "Work"
	CategoryPersonal GoalCategory = "Personal"
	CategoryOther    GoalCategory = "Other"
)

// Categories は全カテゴリの一覧 (表示順)
var Categories = []GoalCategory{
	CategoryFitness,
	CategoryMindset,
	CategoryLearning,
	CategoryWork,
	CategoryPersonal,
	CategoryOther,
}

// ParseCategory は入力文字列をカテゴリに変換します。
// 未知の値は Other に倒します (エラーにはしない)。
func ParseCategory(s string) GoalCategory {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryOther
}

// ReminderFrequency はリマインダーの頻度です
type ReminderFrequency string

const (
	ReminderNone   ReminderFrequency = "None"
	ReminderDaily  ReminderFrequency = "Daily"
	ReminderWeekly ReminderFrequency = "Weekly"
)

// Goal は1つの目標(習慣)を表します
type Goal struct {
	GoalID      uuid.UUID    `gorm:"type:uuid;primaryKey" json:"goal_id"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	DailyTarget string       `gorm:"not null" json:"daily_target"` // 毎日の目標 (自由記述)
	Category    GoalCategory `gorm:"not null;default:Other" json:"category"`

	// 進捗状態。Completion Engine 以外は変更しない
	CurrentLevel  int        `gorm:"not null;default:1" json:"current_level"`
	Streak        int        `gorm:"not null;default:0" json:"streak"`
	LastCompleted *time.Time `json:"last_completed"`

	// 完了履歴 (追記専用、completed_at 昇順でPreloadする)
	CompletionHistory []GoalCompletion `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"completion_history"`

	// リマインダー設定
	ReminderFrequency ReminderFrequency `gorm:"not null;default:None" json:"reminder_frequency"`
	ReminderTime      string            `json:"reminder_time,omitempty"`                       // "HH:MM"。None の場合は無視
	ReminderDays      []int             `gorm:"serializer:json" json:"reminder_days,omitempty"` // 曜日 0(日)〜6(土)。Weekly のみ有効

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 関連 (リマインダー送信時のPreload用)
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"-"`
}

func (Goal) TableName() string {
	return "goals"
}

// HasReminder はリマインダーが有効かどうかを返します
func (g *Goal) HasReminder() bool {
	return g.ReminderFrequency != "" && g.ReminderFrequency != ReminderNone
}

// GoalCompletion は目標の完了イベント1件を表します。
// 1目標につき1暦日1件が Completion Engine により保証されます。
type GoalCompletion struct {
	CompletionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	GoalID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	CompletedAt  time.Time `gorm:"not null" json:"completed_at"`
}

func (GoalCompletion) TableName() string {
	return "goal_completions"
}

// 目標作成リクエストDTO
type CreateGoalRequest struct {
	Title             string `json:"title" validate:"required,min=1,max=200"`
	Description       string `json:"description" validate:"max=1000"`
	DailyTarget       string `json:"daily_target" validate:"required,min=1,max=200"`
	Category          string `json:"category"`
	ReminderFrequency string `json:"reminder_frequency" validate:"omitempty,oneof=None Daily Weekly"`
	ReminderTime      string `json:"reminder_time" validate:"omitempty,len=5"`
	ReminderDays      []int  `json:"reminder_days" validate:"omitempty,dive,min=0,max=6"`
}

// 目標更新(部分)リクエストDTO。nil のフィールドは変更しない。
// streak / current_level / completion_history はこのDTOでは触れない。
type UpdateGoalRequest struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	DailyTarget       *string `json:"daily_target,omitempty" validate:"omitempty,min=1,max=200"`
	Category          *string `json:"category,omitempty"`
	ReminderFrequency *string `json:"reminder_frequency,omitempty" validate:"omitempty,oneof=None Daily Weekly"`
	ReminderTime      *string `json:"reminder_time,omitempty" validate:"omitempty,len=5"`
	ReminderDays      *[]int  `json:"reminder_days,omitempty" validate:"omitempty,dive,min=0,max=6"`
}

// CompleteGoalResponse は完了APIのレスポンスDTO。
// レベルアップ演出のために新旧レベルを明示的に返します。
type CompleteGoalResponse struct {
	Goal      *Goal `json:"goal"`
	LeveledUp bool  `json:"leveled_up"`
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
}
