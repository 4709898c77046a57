// internal/reminder/scheduler_test.go
package reminder

import (
	"testing"
	"time"

	"go_5_goal_keep/internal/model"

	"github.com/stretchr/testify/assert"
)

func Test_Due(t *testing.T) {
	// 2025-06-15 は日曜日
	sundayMorning := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	newGoal := func(frequency model.ReminderFrequency, reminderTime string, days []int) *model.Goal {
		return &model.Goal{
			Title:             "毎日ランニング",
			ReminderFrequency: frequency,
			ReminderTime:      reminderTime,
			ReminderDays:      days,
		}
	}

	tests := []struct {
		name string
		goal *model.Goal
		now  time.Time
		want bool
	}{
		{
			name: "Daily: 時刻一致で送信対象",
			goal: newGoal(model.ReminderDaily, "09:00", nil),
			now:  sundayMorning,
			want: true,
		},
		{
			name: "Daily: 時刻不一致なら対象外",
			goal: newGoal(model.ReminderDaily, "09:00", nil),
			now:  sundayMorning.Add(1 * time.Minute),
			want: false,
		},
		{
			name: "Daily: 時刻未設定なら対象外",
			goal: newGoal(model.ReminderDaily, "", nil),
			now:  sundayMorning,
			want: false,
		},
		{
			name: "Weekly: 今日の曜日が選択されていれば対象 (日曜=0)",
			goal: newGoal(model.ReminderWeekly, "09:00", []int{0, 3}),
			now:  sundayMorning,
			want: true,
		},
		{
			name: "Weekly: 今日の曜日が未選択なら対象外",
			goal: newGoal(model.ReminderWeekly, "09:00", []int{1, 2}),
			now:  sundayMorning,
			want: false,
		},
		{
			name: "None: 常に対象外",
			goal: newGoal(model.ReminderNone, "09:00", nil),
			now:  sundayMorning,
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Due(tc.goal, tc.now))
		})
	}
}

// 当日すでに達成済みの目標にはリマインダーを送らない
func Test_Due_SkipsCompletedToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)
	completedEarlier := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	completedYesterday := time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)

	goal := &model.Goal{
		ReminderFrequency: model.ReminderDaily,
		ReminderTime:      "20:00",
		LastCompleted:     &completedEarlier,
	}
	assert.False(t, Due(goal, now))

	goal.LastCompleted = &completedYesterday
	assert.True(t, Due(goal, now))
}
