// Package stats aggregates task progress into dashboard figures.
package stats

import (
	"time"

	"github.com/sandeepkv93/streakd/internal/model"
)

// Bucket counts tasks by status within one reporting window.
type Bucket struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Total      int `json:"total"`
}

func (b *Bucket) add(status model.Status) {
	b.Total++
	switch status {
	case model.StatusCompleted:
		b.Completed++
	case model.StatusInProgress:
		b.InProgress++
	default:
		b.Pending++
	}
}

// Summary is the aggregate view the dashboard renders. DailyProgress
// has seven entries: index 0 is six days ago, index 6 is today.
type Summary struct {
	Daily                Bucket                 `json:"daily"`
	Weekly               Bucket                 `json:"weekly"`
	Monthly              Bucket                 `json:"monthly"`
	DailyProgress        [7]int                 `json:"dailyProgress"`
	PriorityDistribution map[model.Priority]int `json:"priorityDistribution"`
	Streak               int                    `json:"streak"`
	LongestStreak        int                    `json:"longestStreak"`
	Achievements         []string               `json:"achievements"`
}

// Compute derives the summary from the current task list. Daily counts
// every task by live status. Weekly and monthly count only tasks whose
// last open falls inside the current week (starting Sunday) or month.
//
// For days before today, DailyProgress uses "last opened fell on that
// calendar day" as a proxy for goal completion; per-day open counts are
// not reconstructable from current state. Today's entry checks the live
// openedToday >= dailyGoal condition, which is exact.
func Compute(tasks []model.Task, userStats model.UserStats, now time.Time) Summary {
	summary := Summary{
		PriorityDistribution: map[model.Priority]int{
			model.PriorityHigh:   0,
			model.PriorityMedium: 0,
			model.PriorityLow:    0,
		},
		Streak:        userStats.CurrentStreak,
		LongestStreak: userStats.LongestStreak,
		Achievements:  append([]string(nil), userStats.Achievements...),
	}

	weekStart := model.StartOfWeek(now)
	monthStart := model.StartOfMonth(now)

	for _, task := range tasks {
		summary.Daily.add(task.Status)

		priority := task.Priority
		if !priority.IsValid() {
			priority = model.PriorityMedium
		}
		summary.PriorityDistribution[priority]++

		if task.LastOpened == nil {
			continue
		}
		opened := *task.LastOpened

		if !opened.Before(weekStart) {
			summary.Weekly.add(task.Status)
		}
		if !opened.Before(monthStart) {
			summary.Monthly.add(task.Status)
		}

		for i := 0; i < 7; i++ {
			if i == 6 {
				if task.GoalReached() {
					summary.DailyProgress[i]++
				}
				continue
			}
			day := now.AddDate(0, 0, i-6)
			if model.SameCalendarDay(opened, day) {
				summary.DailyProgress[i]++
			}
		}
	}

	return summary
}
