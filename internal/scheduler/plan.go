package scheduler

import (
	"time"

	"github.com/sandeepkv93/streakd/internal/model"
)

// Kind tells the receiver what a fired event means.
type Kind string

const (
	// KindTask is a per-task reminder at the task's own clock time.
	KindTask Kind = "task"
	// KindDaily is the once-a-day nudge about still-pending tasks.
	KindDaily Kind = "daily"
)

// Event is one scheduled reminder.
type Event struct {
	TaskID    string
	Name      string
	Kind      Kind
	TriggerAt time.Time
}

// Plan computes today's remaining reminders from current state. It is
// a pure function: the engine decides when, Plan decides what.
//
// Per-task reminders fire at the task's clock time when that moment is
// still ahead and the goal is not yet reached. The daily nudge fires at
// the next enabled preferred time, provided anything is still pending
// and the nudge has not gone out today.
func Plan(tasks []model.Task, stats model.UserStats, lastReminderDate string, now time.Time) []Event {
	events := make([]Event, 0, len(tasks)+1)

	anyPending := false
	for _, task := range tasks {
		if !task.GoalReached() {
			anyPending = true
		}
		if task.ReminderTime == "" || task.GoalReached() {
			continue
		}
		at, err := clockToday(task.ReminderTime, now)
		if err != nil || at.Before(now) {
			continue
		}
		events = append(events, Event{
			TaskID:    task.ID,
			Name:      task.Name,
			Kind:      KindTask,
			TriggerAt: at,
		})
	}

	if anyPending && lastReminderDate != model.DayKey(now) {
		if at, ok := nextNudge(stats.ReminderPreferences, now); ok {
			events = append(events, Event{Kind: KindDaily, TriggerAt: at})
		}
	}
	return events
}

// nextNudge picks the earliest preferred time later than now whose
// time-of-day bucket is enabled.
func nextNudge(prefs model.ReminderPreferences, now time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, clock := range prefs.PreferredTimes {
		at, err := clockToday(clock, now)
		if err != nil || at.Before(now) {
			continue
		}
		if !bucketEnabled(prefs, at.Hour()) {
			continue
		}
		if !found || at.Before(best) {
			best = at
			found = true
		}
	}
	return best, found
}

func bucketEnabled(prefs model.ReminderPreferences, hour int) bool {
	switch model.TimeOfDayFor(hour) {
	case model.TimeOfDayMorning:
		return prefs.Morning
	case model.TimeOfDayAfternoon:
		return prefs.Afternoon
	default:
		return prefs.Evening
	}
}

func clockToday(clock string, now time.Time) (time.Time, error) {
	hour, minute, err := model.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}
