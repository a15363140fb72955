package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/streakd/internal/model"
)

func goalTask(openedToday, dailyGoal int) model.Task {
	task := model.NewTask(model.TaskDraft{Name: "task", DailyGoal: dailyGoal}, time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC))
	task.OpenedToday = openedToday
	return task
}

func TestFirstCompletionStartsStreakAtOne(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	next, unlocked := Update([]model.Task{goalTask(1, 1)}, model.DefaultUserStats(), now)

	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, 1, next.LongestStreak)
	require.NotNil(t, next.LastCompletionDate)
	assert.True(t, next.LastCompletionDate.Equal(now))
	assert.Empty(t, unlocked)
}

func TestCompletionYesterdayIncrementsStreak(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	prev := model.DefaultUserStats()
	prev.CurrentStreak = 4
	prev.LongestStreak = 4
	prev.LastCompletionDate = &yesterday

	next, _ := Update([]model.Task{goalTask(2, 2)}, prev, now)
	assert.Equal(t, 5, next.CurrentStreak)
	assert.Equal(t, 5, next.LongestStreak)
}

func TestCompletionSameDayKeepsStreak(t *testing.T) {
	now := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	prev := model.DefaultUserStats()
	prev.CurrentStreak = 4
	prev.LongestStreak = 7
	prev.LastCompletionDate = &earlier

	next, _ := Update([]model.Task{goalTask(1, 1)}, prev, now)
	assert.Equal(t, 4, next.CurrentStreak)
	assert.Equal(t, 7, next.LongestStreak)
}

func TestGapResetsStreakToOneOnCompletion(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	threeDaysAgo := now.AddDate(0, 0, -3)

	prev := model.DefaultUserStats()
	prev.CurrentStreak = 9
	prev.LongestStreak = 9
	prev.LastCompletionDate = &threeDaysAgo

	next, _ := Update([]model.Task{goalTask(1, 1)}, prev, now)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, 9, next.LongestStreak)
}

func TestNoCompletionAfterGapBreaksStreak(t *testing.T) {
	now := time.Date(2026, 8, 20, 0, 30, 0, 0, time.UTC)
	twoDaysAgo := now.AddDate(0, 0, -2)

	prev := model.DefaultUserStats()
	prev.CurrentStreak = 6
	prev.LongestStreak = 6
	prev.LastCompletionDate = &twoDaysAgo

	next, _ := Update([]model.Task{goalTask(0, 1)}, prev, now)
	assert.Equal(t, 0, next.CurrentStreak)
	require.NotNil(t, next.LastCompletionDate)
	assert.True(t, next.LastCompletionDate.Equal(twoDaysAgo), "last completion date must not move without a completion")
}

func TestNoCompletionYesterdayCompletedLeavesStreakAlone(t *testing.T) {
	// The day is not over; a completion yesterday keeps the streak alive.
	now := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	prev := model.DefaultUserStats()
	prev.CurrentStreak = 3
	prev.LastCompletionDate = &yesterday

	next, _ := Update([]model.Task{goalTask(0, 2)}, prev, now)
	assert.Equal(t, 3, next.CurrentStreak)
}

func TestPerfectDaysRequiresEveryTaskComplete(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	partial := []model.Task{goalTask(1, 1), goalTask(1, 3)}
	next, _ := Update(partial, model.DefaultUserStats(), now)
	assert.Equal(t, 0, next.PerfectDays)

	full := []model.Task{goalTask(1, 1), goalTask(3, 3)}
	next, _ = Update(full, model.DefaultUserStats(), now)
	assert.Equal(t, 1, next.PerfectDays)

	// Empty task list is never a perfect day.
	next, _ = Update(nil, model.DefaultUserStats(), now)
	assert.Equal(t, 0, next.PerfectDays)
}

func TestStreakAchievementUnlockOrder(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	prev := model.DefaultUserStats()
	prev.CurrentStreak = 6
	prev.LongestStreak = 6
	prev.LastCompletionDate = &yesterday

	next, unlocked := Update([]model.Task{goalTask(1, 1)}, prev, now)
	assert.Equal(t, 7, next.CurrentStreak)

	require.Len(t, unlocked, 2)
	assert.Equal(t, "streak-3", unlocked[0].ID)
	assert.Equal(t, "streak-7", unlocked[1].ID)
	assert.True(t, next.HasAchievement("streak-3"))
	assert.True(t, next.HasAchievement("streak-7"))
}

func TestTaskCountAndPerfectWeekUnlocks(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	prev := model.DefaultUserStats()
	prev.TotalTasksCompleted = 52
	prev.PerfectDays = 6

	next, unlocked := Update([]model.Task{goalTask(1, 1)}, prev, now)

	ids := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"tasks-10", "tasks-50", "perfect-week"}, ids)
	assert.Equal(t, 7, next.PerfectDays)
}

func TestAchievementsAreAppendOnly(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	prev := model.DefaultUserStats()
	prev.Achievements = []string{"streak-3"}

	// A run with no completions and a long gap must not remove ids.
	next, unlocked := Update([]model.Task{goalTask(0, 1)}, prev, now)
	assert.Empty(t, unlocked)
	assert.True(t, next.HasAchievement("streak-3"))
}

func TestUpdateDoesNotAliasPreviousStats(t *testing.T) {
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	prev := model.DefaultUserStats()
	prev.CurrentStreak = 2

	next, _ := Update([]model.Task{goalTask(1, 1)}, prev, now)
	next.Achievements = append(next.Achievements, "scribble")

	assert.NotContains(t, prev.Achievements, "scribble")
	assert.Equal(t, 2, prev.CurrentStreak)
}

func TestRecordActivityTracksBucketsAndPeaks(t *testing.T) {
	morning := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)  // Thursday
	evening := time.Date(2026, 8, 21, 19, 0, 0, 0, time.UTC) // Friday

	stats := model.DefaultUserStats()
	stats = RecordActivity(stats, morning)
	stats = RecordActivity(stats, evening)
	stats = RecordActivity(stats, evening)

	patterns := stats.ActivityPatterns
	assert.Equal(t, 1, patterns.CompletionRates[model.TimeOfDayMorning])
	assert.Equal(t, 2, patterns.CompletionRates[model.TimeOfDayEvening])
	require.NotNil(t, patterns.MostProductiveHour)
	assert.Equal(t, 19, *patterns.MostProductiveHour)
	require.NotNil(t, patterns.MostProductiveDay)
	assert.Equal(t, int(time.Friday), *patterns.MostProductiveDay)
}
