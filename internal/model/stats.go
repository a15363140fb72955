package model

import "time"

// TimeOfDay buckets completion activity for reminder heuristics.
type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
)

// TimeOfDayFor maps an hour to its bucket: before 12 is morning,
// before 17 afternoon, otherwise evening.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour < 12:
		return TimeOfDayMorning
	case hour < 17:
		return TimeOfDayAfternoon
	default:
		return TimeOfDayEvening
	}
}

type ReminderPreferences struct {
	Morning        bool     `json:"morning"`
	Afternoon      bool     `json:"afternoon"`
	Evening        bool     `json:"evening"`
	PreferredTimes []string `json:"preferredTimes"`
}

// ActivityPatterns accumulates when completions happen so reminders can
// target the user's productive hours.
type ActivityPatterns struct {
	MostProductiveHour *int              `json:"mostProductiveHour"`
	MostProductiveDay  *int              `json:"mostProductiveDay"`
	CompletionRates    map[TimeOfDay]int `json:"completionRates"`
	HourCounts         map[int]int       `json:"hourCounts,omitempty"`
	DayCounts          map[int]int       `json:"dayCounts,omitempty"`
}

// UserStats is the process-wide streak and achievement state. The
// Achievements set is append-only: ids are never removed once unlocked.
type UserStats struct {
	CurrentStreak       int                 `json:"currentStreak"`
	LongestStreak       int                 `json:"longestStreak"`
	LastCompletionDate  *time.Time          `json:"lastCompletionDate"`
	TotalTasksCompleted int                 `json:"totalTasksCompleted"`
	Achievements        []string            `json:"achievements"`
	PerfectDays         int                 `json:"perfectDays"`
	ReminderPreferences ReminderPreferences `json:"reminderPreferences"`
	ActivityPatterns    ActivityPatterns    `json:"activityPatterns"`
}

func DefaultUserStats() UserStats {
	return UserStats{
		Achievements: []string{},
		ReminderPreferences: ReminderPreferences{
			Morning:        true,
			Afternoon:      true,
			Evening:        true,
			PreferredTimes: []string{"09:00", "13:00", "18:00"},
		},
		ActivityPatterns: ActivityPatterns{
			CompletionRates: map[TimeOfDay]int{
				TimeOfDayMorning:   0,
				TimeOfDayAfternoon: 0,
				TimeOfDayEvening:   0,
			},
		},
	}
}

// HasAchievement reports whether an achievement id is already unlocked.
func (s UserStats) HasAchievement(id string) bool {
	for _, got := range s.Achievements {
		if got == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate freely without
// aliasing the owner's maps and slices.
func (s UserStats) Clone() UserStats {
	out := s
	out.Achievements = append([]string(nil), s.Achievements...)
	out.ReminderPreferences.PreferredTimes = append([]string(nil), s.ReminderPreferences.PreferredTimes...)
	out.ActivityPatterns.CompletionRates = cloneCounts(s.ActivityPatterns.CompletionRates)
	out.ActivityPatterns.HourCounts = cloneCounts(s.ActivityPatterns.HourCounts)
	out.ActivityPatterns.DayCounts = cloneCounts(s.ActivityPatterns.DayCounts)
	if s.LastCompletionDate != nil {
		at := *s.LastCompletionDate
		out.LastCompletionDate = &at
	}
	if s.ActivityPatterns.MostProductiveHour != nil {
		v := *s.ActivityPatterns.MostProductiveHour
		out.ActivityPatterns.MostProductiveHour = &v
	}
	if s.ActivityPatterns.MostProductiveDay != nil {
		v := *s.ActivityPatterns.MostProductiveDay
		out.ActivityPatterns.MostProductiveDay = &v
	}
	return out
}

func cloneCounts[K comparable](src map[K]int) map[K]int {
	if src == nil {
		return nil
	}
	out := make(map[K]int, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
