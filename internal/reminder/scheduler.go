// internal/reminder/scheduler.go
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go_5_goal_keep/internal/model"
	"go_5_goal_keep/internal/repository"
	"go_5_goal_keep/internal/service"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler はリマインダー設定のある目標を定期巡回し、
// 送信時刻になったものにメールを送ります。
type Scheduler struct {
	db       *gorm.DB
	goalRepo repository.GoalRepository
	mailer   service.Mailer
	cron     *cron.Cron
	spec     string // cron spec (例: "@every 1m")
	logger   *slog.Logger
}

func NewScheduler(db *gorm.DB, goalRepo repository.GoalRepository, mailer service.Mailer, spec string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:       db,
		goalRepo: goalRepo,
		mailer:   mailer,
		cron:     cron.New(),
		spec:     spec,
		logger:   logger,
	}
}

// Start はバックグラウンドの巡回を開始します
func (s *Scheduler) Start() error {
	s.logger.Info("Starting reminder scheduler", "spec", s.spec)

	_, err := s.cron.AddFunc(s.spec, func() {
		s.dispatch(time.Now())
	})
	if err != nil {
		return fmt.Errorf("failed to add reminder cron job: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop は巡回を停止し、実行中のジョブの完了を待ちます
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped")
}

// dispatch は1回の巡回処理です。now 時点で送信対象の目標にメールを送ります。
func (s *Scheduler) dispatch(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	goals, err := s.goalRepo.FindRemindable(ctx, s.db)
	if err != nil {
		s.logger.Error("Failed to fetch remindable goals", "error", err)
		return
	}

	for _, goal := range goals {
		if !Due(goal, now) {
			continue
		}
		if goal.User == nil {
			s.logger.Warn("Remindable goal has no user loaded", "goal_id", goal.GoalID)
			continue
		}
		subject := fmt.Sprintf("【GoalKeep】リマインダー: %s", goal.Title)
		body := fmt.Sprintf("%s さん\n\n「%s」の時間です。\n今日の目標: %s\n\n現在のストリーク: %d日 (レベル%d)",
			goal.User.Name, goal.Title, goal.DailyTarget, goal.Streak, goal.CurrentLevel)

		if err := s.mailer.Send(ctx, goal.User.Email, subject, body); err != nil {
			s.logger.Error("Failed to send reminder", "error", err, "goal_id", goal.GoalID)
			continue
		}
		s.logger.Info("Reminder sent", "goal_id", goal.GoalID, "to", goal.User.Email)
	}
}

// Due は now 時点でリマインダーを送るべきかを判定する純粋関数です。
// 時刻は "HH:MM" の分単位で一致したときのみ true (巡回間隔は1分が前提)。
// Weekly は now の曜日 (0=日曜) が ReminderDays に含まれる場合のみ対象。
// 当日すでに達成済みの目標には送りません。
func Due(goal *model.Goal, now time.Time) bool {
	if !goal.HasReminder() || goal.ReminderTime == "" {
		return false
	}
	if now.Format("15:04") != goal.ReminderTime {
		return false
	}
	if goal.LastCompleted != nil && service.SameCalendarDay(*goal.LastCompleted, now) {
		return false
	}

	switch goal.ReminderFrequency {
	case model.ReminderDaily:
		return true
	case model.ReminderWeekly:
		weekday := int(now.Weekday())
		for _, d := range goal.ReminderDays {
			if d == weekday {
				return true
			}
		}
		return false
	default:
		return false
	}
}
