// internal/service/stats.go
package service

import (
	"math"
	"strconv"
	"time"

	"go_5_goal_keep/internal/model"
)

// レベル分布チャートに個別バーとして表示する最大レベル。
// これを超えるレベルは "6+" バケットにまとめる。
const maxLevelBuckets = 5

// ComputeStats は目標の集合から統計情報を計算する純粋関数です。
// today は「今日」として扱う暦日で、テストのために必ず引数で受け取ります。
// 率の計算はすべて分母0をガードし、NaN/Inf ではなく0を返します。
func ComputeStats(goals []*model.Goal, today time.Time) *model.StatsResponse {
	total := len(goals)

	// 1. 本日の達成率
	completedToday := 0
	for _, g := range goals {
		if CompletedOnDate(g, today) {
			completedToday++
		}
	}
	dailyRate := 0.0
	if total > 0 {
		dailyRate = float64(completedToday) / float64(total) * 100
	}

	// 2. 直近7日間のモメンタム (古い日が先頭)
	momentum := make([]model.MomentumDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count := 0
		for _, g := range goals {
			if CompletedOnDate(g, day) {
				count++
			}
		}
		rate := 0.0
		if total > 0 {
			rate = float64(count) / float64(total) * 100
		}
		momentum = append(momentum, model.MomentumDay{
			Date:           day.Format("2006-01-02"),
			Weekday:        day.Format("Mon"),
			CompletedCount: count,
			Rate:           rate,
		})
	}

	// 3. カテゴリ別の当日完了状況 (目標が1件もないカテゴリは含めない)
	categoryStats := make([]model.CategoryStat, 0, len(model.Categories))
	for _, cat := range model.Categories {
		catTotal := 0
		catCompleted := 0
		for _, g := range goals {
			if g.Category != cat {
				continue
			}
			catTotal++
			if CompletedOnDate(g, today) {
				catCompleted++
			}
		}
		if catTotal == 0 {
			continue
		}
		categoryStats = append(categoryStats, model.CategoryStat{
			Category:       cat,
			Total:          catTotal,
			CompletedToday: catCompleted,
			CompletionRate: float64(catCompleted) / float64(catTotal) * 100,
		})
	}

	// 4. レベル分布
	histogram := make(map[int]int)
	maxLevel := 0
	for _, g := range goals {
		histogram[g.CurrentLevel]++
		if g.CurrentLevel > maxLevel {
			maxLevel = g.CurrentLevel
		}
	}
	buckets := make([]model.LevelBucket, 0, maxLevelBuckets+1)
	for lvl := 1; lvl <= min(maxLevel, maxLevelBuckets); lvl++ {
		buckets = append(buckets, model.LevelBucket{
			Label: strconv.Itoa(lvl),
			Count: histogram[lvl],
		})
	}
	if maxLevel > maxLevelBuckets {
		overflow := 0
		for lvl, count := range histogram {
			if lvl > maxLevelBuckets {
				overflow += count
			}
		}
		buckets = append(buckets, model.LevelBucket{Label: "6+", Count: overflow})
	}

	// 5. 全体サマリ
	totalCompletions := 0
	sumLevels := 0
	maxStreak := 0
	reminderEnabled := 0
	for _, g := range goals {
		totalCompletions += len(g.CompletionHistory)
		sumLevels += g.CurrentLevel
		if g.Streak > maxStreak {
			maxStreak = g.Streak
		}
		if g.HasReminder() {
			reminderEnabled++
		}
	}
	averageLevel := 0.0
	if total > 0 {
		// 小数1桁に丸める
		averageLevel = math.Round(float64(sumLevels)/float64(total)*10) / 10
	}

	return &model.StatsResponse{
		DailyRate:      dailyRate,
		CompletedToday: completedToday,
		WeeklyMomentum: momentum,
		CategoryStats:  categoryStats,
		LevelHistogram: histogram,
		LevelBuckets:   buckets,
		Summary: model.StatsSummary{
			TotalGoals:       total,
			TotalCompletions: totalCompletions,
			AverageLevel:     averageLevel,
			MaxStreak:        maxStreak,
			ReminderEnabled:  reminderEnabled,
		},
	}
}
