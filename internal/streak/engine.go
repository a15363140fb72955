// Package streak computes the completion streak, perfect days, and
// achievement unlocks from the current task list.
package streak

import (
	"time"

	"github.com/sandeepkv93/streakd/internal/model"
)

// Update applies one streak transition and the achievement unlock scan.
// It runs on every completion event and once per day at reset time.
// The returned achievements are the ones newly unlocked by this call,
// in scan order, for the presentation layer to announce.
//
// Known quirk, kept on purpose: PerfectDays increments on every run
// that sees all tasks complete, so several completion events within
// one day can each add a perfect day.
func Update(tasks []model.Task, prev model.UserStats, now time.Time) (model.UserStats, []model.Achievement) {
	next := prev.Clone()

	completedToday := anyGoalReached(tasks)
	allCompletedToday := len(tasks) > 0 && allGoalsReached(tasks)

	if completedToday {
		switch {
		case prev.LastCompletionDate != nil && model.CalendarDaysBetween(*prev.LastCompletionDate, now) == 1:
			next.CurrentStreak = prev.CurrentStreak + 1
		case prev.LastCompletionDate != nil && model.SameCalendarDay(*prev.LastCompletionDate, now):
			// Already counted today; streak holds.
		default:
			next.CurrentStreak = 1
		}
		if allCompletedToday {
			next.PerfectDays = prev.PerfectDays + 1
		}
		at := now
		next.LastCompletionDate = &at
	} else if prev.LastCompletionDate == nil || model.CalendarDaysBetween(*prev.LastCompletionDate, now) > 1 {
		next.CurrentStreak = 0
	}
	// A completion exactly one day ago with nothing done yet today
	// leaves the streak alone; the day is not over.

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}

	unlocked := scanUnlocks(&next)
	return next, unlocked
}

// RecordActivity tracks when a completion happened so reminders can
// target productive hours and days.
func RecordActivity(prev model.UserStats, now time.Time) model.UserStats {
	next := prev.Clone()
	patterns := &next.ActivityPatterns

	if patterns.CompletionRates == nil {
		patterns.CompletionRates = make(map[model.TimeOfDay]int, 3)
	}
	patterns.CompletionRates[model.TimeOfDayFor(now.Hour())]++

	if patterns.HourCounts == nil {
		patterns.HourCounts = make(map[int]int)
	}
	if patterns.DayCounts == nil {
		patterns.DayCounts = make(map[int]int)
	}
	hour := now.Hour()
	day := int(now.Weekday())
	patterns.HourCounts[hour]++
	patterns.DayCounts[day]++

	if patterns.MostProductiveHour == nil || patterns.HourCounts[hour] > patterns.HourCounts[*patterns.MostProductiveHour] {
		patterns.MostProductiveHour = &hour
	}
	if patterns.MostProductiveDay == nil || patterns.DayCounts[day] > patterns.DayCounts[*patterns.MostProductiveDay] {
		patterns.MostProductiveDay = &day
	}
	return next
}

// scanUnlocks appends every newly earned achievement id to the stats
// set. Scan order is fixed: streak thresholds ascending, then task
// count thresholds ascending, then perfect week.
func scanUnlocks(stats *model.UserStats) []model.Achievement {
	unlocked := make([]model.Achievement, 0)

	for _, a := range model.StreakAchievements() {
		if stats.CurrentStreak >= a.Threshold && !stats.HasAchievement(a.ID) {
			stats.Achievements = append(stats.Achievements, a.ID)
			unlocked = append(unlocked, a)
		}
	}
	for _, a := range model.TaskCountAchievements() {
		if stats.TotalTasksCompleted >= a.Threshold && !stats.HasAchievement(a.ID) {
			stats.Achievements = append(stats.Achievements, a.ID)
			unlocked = append(unlocked, a)
		}
	}
	if perfectWeek := model.PerfectWeekAchievement(); stats.PerfectDays >= perfectWeek.Threshold && !stats.HasAchievement(perfectWeek.ID) {
		stats.Achievements = append(stats.Achievements, perfectWeek.ID)
		unlocked = append(unlocked, perfectWeek)
	}
	return unlocked
}

func anyGoalReached(tasks []model.Task) bool {
	for _, task := range tasks {
		if task.GoalReached() {
			return true
		}
	}
	return false
}

func allGoalsReached(tasks []model.Task) bool {
	for _, task := range tasks {
		if !task.GoalReached() {
			return false
		}
	}
	return true
}
