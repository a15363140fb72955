package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	ID          string
	Name        string
	Category    string
	Status      string
	Priority    string
	OpenedToday int
	DailyGoal   int
	ProgressBar string
	DueDate     string
	Reminder    string
}

type TaskListData struct {
	Rows         []TaskRowData
	SelectedID   string
	QuickAddView string
	CaptureMode  bool
	FilterLine   string
	Total        int
}

type StatsPanelData struct {
	Daily         BucketData
	Weekly        BucketData
	Monthly       BucketData
	DailyProgress [7]int
	WeekdayLabels [7]string
	Priorities    []PriorityCountData
	Streak        int
	LongestStreak int
	PerfectDays   int
}

type BucketData struct {
	Completed  int
	InProgress int
	Pending    int
	Total      int
}

type PriorityCountData struct {
	Priority string
	Count    int
}

type AchievementRowData struct {
	Icon        string
	Name        string
	Description string
	Unlocked    bool
}

type HelpPanelData struct {
	CurrentView  string
	BindingsView string
	HelpView     string
}

func RenderTaskList(data TaskListData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if data.CaptureMode {
		b.WriteString(data.QuickAddView + "\n")
	}
	if data.FilterLine != "" {
		b.WriteString(data.FilterLine + "\n")
	}
	if len(data.Rows) == 0 {
		if data.Total > 0 {
			b.WriteString("(no tasks match the current filter)")
		} else {
			b.WriteString("(no tasks yet, press a to add one)")
		}
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %s %d/%d", cursor, statusBadge(row.Status), priorityBadge(row.Priority), row.Name, row.OpenedToday, row.DailyGoal))
		if row.ProgressBar != "" {
			b.WriteString(" " + row.ProgressBar)
		}
		if row.Category != "" {
			b.WriteString(" #" + row.Category)
		}
		if row.DueDate != "" {
			b.WriteString(" due:" + row.DueDate)
		}
		if row.Reminder != "" {
			b.WriteString(" @" + row.Reminder)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("streak: %d (best %d) | perfect days: %d\n", data.Streak, data.LongestStreak, data.PerfectDays))
	renderBucketLine(&b, "today", data.Daily)
	renderBucketLine(&b, "week", data.Weekly)
	renderBucketLine(&b, "month", data.Monthly)

	b.WriteString("\nlast 7 days:\n")
	for i, count := range data.DailyProgress {
		label := ""
		if i < len(data.WeekdayLabels) {
			label = data.WeekdayLabels[i]
		}
		b.WriteString(fmt.Sprintf("%3s %s %d\n", label, strings.Repeat("#", count), count))
	}

	if len(data.Priorities) > 0 {
		b.WriteString("\npriorities:\n")
		for _, p := range data.Priorities {
			b.WriteString(fmt.Sprintf("  %-6s %d\n", p.Priority, p.Count))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderAchievementsPanel(rows []AchievementRowData) string {
	var b strings.Builder
	b.WriteString("achievements:\n")
	for _, row := range rows {
		mark := "[ ]"
		if row.Unlocked {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s - %s\n", mark, row.Icon, row.Name, row.Description))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nview: %s\n%s\n%s",
		strings.ToLower(data.CurrentView),
		data.BindingsView,
		data.HelpView,
	)
}

func renderBucketLine(b *strings.Builder, label string, bucket BucketData) {
	b.WriteString(fmt.Sprintf("%-5s done:%d active:%d pending:%d total:%d\n", label, bucket.Completed, bucket.InProgress, bucket.Pending, bucket.Total))
}

func statusBadge(status string) string {
	switch status {
	case "completed":
		return "[DONE]"
	case "in_progress":
		return "[WIP]"
	default:
		return "[TODO]"
	}
}

func priorityBadge(priority string) string {
	switch priority {
	case "high":
		return "!"
	case "low":
		return "."
	default:
		return "-"
	}
}
