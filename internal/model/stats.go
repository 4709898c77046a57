// internal/model/stats.go
package model

import "time"

// MomentumDay は直近7日間の1日分の完了状況です
type MomentumDay struct {
	Date           string  `json:"date"` // "2006-01-02" (ローカル暦日)
	Weekday        string  `json:"weekday"`
	CompletedCount int     `json:"completed_count"`
	Rate           float64 `json:"rate"` // completed/total*100。目標0件なら0
}

// CategoryStat はカテゴリごとの当日完了状況です。
// 目標が1件もないカテゴリは集計結果に含めません。
type CategoryStat struct {
	Category       GoalCategory `json:"category"`
	Total          int          `json:"total"`
	CompletedToday int          `json:"completed_today"`
	CompletionRate float64      `json:"completion_rate"`
}

// LevelBucket はレベル分布チャートの1本分です。
// Lv.1〜min(maxLevel,5) と、maxLevel>5 のときのあふれ分 "6+" を持ちます。
type LevelBucket struct {
	Label string `json:"label"` // "1".."5" または "6+"
	Count int    `json:"count"`
}

// StatsSummary は全体サマリです
type StatsSummary struct {
	TotalGoals       int     `json:"total_goals"`
	TotalCompletions int     `json:"total_completions"`
	AverageLevel     float64 `json:"average_level"` // 小数1桁丸め。目標0件なら0
	MaxStreak        int     `json:"max_streak"`
	ReminderEnabled  int     `json:"reminder_enabled"`
}

// StatsResponse は統計APIのレスポンスDTO
type StatsResponse struct {
	DailyRate       float64      `json:"daily_rate"` // 本日の達成率 (%)
	CompletedToday  int          `json:"completed_today"`
	WeeklyMomentum  []MomentumDay  `json:"weekly_momentum"` // 7要素、古い日が先頭
	CategoryStats   []CategoryStat `json:"category_stats"`
	LevelHistogram  map[int]int    `json:"level_histogram"`
	LevelBuckets    []LevelBucket  `json:"level_buckets"`
	Summary         StatsSummary   `json:"summary"`
}

// CalendarDay は月間カレンダーの1セル分です
type CalendarDay struct {
	Day         int        `json:"day"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"` // 履歴中の最初の一致
}

// MonthGridResponse は月間カレンダーAPIのレスポンスDTO。
// LeadingBlanks は1日の曜日 (0=日曜) と等しく、7列グリッドの先頭空白数になります。
type MonthGridResponse struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"` // 1-12
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
}
