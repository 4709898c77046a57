// internal/service/progress.go
package service

import (
	"time"

	"go_5_goal_keep/internal/model"
)

// ProgressResult は完了イベント適用後の進捗です。
// レベルアップ演出の判定のために新旧レベルを保持します。
type ProgressResult struct {
	Goal      *model.Goal
	OldLevel  int
	NewLevel  int
	LeveledUp bool
}

// SameCalendarDay は2つの時刻が同じ暦日 (年・月・日) かどうかを判定します。
// 「24時間以内」ではなく暦日の比較であることに注意 (深夜0時をまたぐと別日扱い)。
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AdvanceProgress は「目標を完了する」イベントを1件適用します。
// 同一暦日の2回目は ErrAlreadyCompleted を返し、goal は変更しません。
// 成功時は元の goal を変更せず、更新済みのコピーを返します (copy-on-write)。
//
// ストリークは連続達成日数ですが、日を空けても自動ではリセットされません。
// レベルはストリークが7の正の倍数に達した瞬間にのみ上がり、下がることはありません。
// 履歴への追記 (1回の成功につき1件) は呼び出し側が永続化と合わせて行います。
func AdvanceProgress(goal *model.Goal, now time.Time) (*ProgressResult, error) {
	if goal.LastCompleted != nil && SameCalendarDay(*goal.LastCompleted, now) {
		return nil, model.ErrAlreadyCompleted
	}

	updated := *goal
	oldLevel := updated.CurrentLevel

	updated.Streak++
	if updated.Streak > 0 && updated.Streak%7 == 0 {
		updated.CurrentLevel++
	}
	completedAt := now
	updated.LastCompleted = &completedAt

	return &ProgressResult{
		Goal:      &updated,
		OldLevel:  oldLevel,
		NewLevel:  updated.CurrentLevel,
		LeveledUp: updated.CurrentLevel > oldLevel,
	}, nil
}
