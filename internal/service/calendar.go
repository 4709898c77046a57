// internal/service/calendar.go
package service

import (
	"time"

	"go_5_goal_keep/internal/model"
)

// CompletedOnDate は指定した暦日に完了履歴があるかどうかを返します。
// 時刻部分は無視し、年・月・日のみで比較します。
func CompletedOnDate(goal *model.Goal, date time.Time) bool {
	for _, c := range goal.CompletionHistory {
		if SameCalendarDay(c.CompletedAt, date) {
			return true
		}
	}
	return false
}

// DaysInMonth はその月の日数を返します (うるう年の2月も正しく29を返す)。
// time.Date は day=0 を前月末日に正規化するため、翌月の0日目 = 当月末日となる。
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstCompletionOnDay は履歴中で指定の暦日に一致する最初のタイムスタンプを返します。
// 重複チェックにより通常は1日1件ですが、移行データ等で複数あっても最初の一致を使います。
func firstCompletionOnDay(history []model.GoalCompletion, year int, month time.Month, day int) *time.Time {
	for _, c := range history {
		y, m, d := c.CompletedAt.Date()
		if y == year && m == month && d == day {
			t := c.CompletedAt
			return &t
		}
	}
	return nil
}

// BuildMonthGrid は7列のカレンダー描画用に、指定月の完了状況を組み立てます。
// month は 1-12 (time.Month)。LeadingBlanks は1日の曜日 (0=日曜) に等しく、
// グリッド先頭の空白セル数になります。純粋関数で、同じ入力には同じ出力を返します。
func BuildMonthGrid(goal *model.Goal, year int, month time.Month) *model.MonthGridResponse {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	numDays := DaysInMonth(year, month)

	days := make([]model.CalendarDay, 0, numDays)
	for day := 1; day <= numDays; day++ {
		completedAt := firstCompletionOnDay(goal.CompletionHistory, year, month, day)
		days = append(days, model.CalendarDay{
			Day:         day,
			Completed:   completedAt != nil,
			CompletedAt: completedAt,
		})
	}

	return &model.MonthGridResponse{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: int(firstOfMonth.Weekday()),
		Days:          days,
	}
}
