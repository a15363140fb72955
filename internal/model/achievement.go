package model

import "strings"

// Achievement is immutable catalog data; unlocked state lives in
// UserStats.Achievements as an append-only id set.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Threshold   int    `json:"threshold"`
	Icon        string `json:"icon"`
}

const AchievementPerfectWeek = "perfect-week"

// Achievements is the full catalog. Streak and task-count entries are
// kept in ascending threshold order; the unlock scan depends on it.
var Achievements = []Achievement{
	{ID: "streak-3", Name: "3-Day Streak", Description: "Complete tasks for 3 consecutive days", Threshold: 3, Icon: "🔥"},
	{ID: "streak-7", Name: "7-Day Streak", Description: "Complete tasks for 7 consecutive days", Threshold: 7, Icon: "🔥"},
	{ID: "streak-14", Name: "14-Day Streak", Description: "Complete tasks for 14 consecutive days", Threshold: 14, Icon: "🔥"},
	{ID: "streak-30", Name: "Monthly Master", Description: "Complete tasks for 30 consecutive days", Threshold: 30, Icon: "🏆"},
	{ID: "tasks-10", Name: "Getting Started", Description: "Complete 10 tasks", Threshold: 10, Icon: "🚀"},
	{ID: "tasks-50", Name: "Productivity Pro", Description: "Complete 50 tasks", Threshold: 50, Icon: "⭐"},
	{ID: "tasks-100", Name: "Task Champion", Description: "Complete 100 tasks", Threshold: 100, Icon: "👑"},
	{ID: AchievementPerfectWeek, Name: "Perfect Week", Description: "Complete all tasks for 7 consecutive days", Threshold: 7, Icon: "📅"},
}

func StreakAchievements() []Achievement {
	return achievementsWithPrefix("streak-")
}

func TaskCountAchievements() []Achievement {
	return achievementsWithPrefix("tasks-")
}

func PerfectWeekAchievement() Achievement {
	for _, a := range Achievements {
		if a.ID == AchievementPerfectWeek {
			return a
		}
	}
	return Achievement{}
}

// AchievementByID looks up a catalog entry, reporting whether it exists.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

func achievementsWithPrefix(prefix string) []Achievement {
	out := make([]Achievement, 0, len(Achievements))
	for _, a := range Achievements {
		if strings.HasPrefix(a.ID, prefix) {
			out = append(out, a)
		}
	}
	return out
}
