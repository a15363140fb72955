package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/streakd/internal/model"
)

// ImportRecord is one loosely typed task record from an export file.
// Values arrive as whatever the decoder produced (JSON numbers decode
// to float64), so every field is coerced individually.
type ImportRecord map[string]any

// ImportBatch merges records into the collection. Every record gets a
// fresh id so importing the same file twice duplicates tasks instead
// of clobbering them. OpenedToday always restarts at zero; lifetime
// counters and timestamps survive when parseable. Returns the number
// of tasks added.
func (s *Store) ImportBatch(records []ImportRecord) int {
	if len(records) == 0 {
		return 0
	}
	now := s.now()
	added := 0
	for _, rec := range records {
		task := model.Task{
			ID:           uuid.New().String(),
			Name:         stringField(rec, "name"),
			Link:         stringField(rec, "link"),
			Moto:         stringField(rec, "moto"),
			Notes:        stringField(rec, "notes"),
			Category:     stringField(rec, "category"),
			DailyGoal:    intField(rec, "dailyGoal", 1),
			OpenedToday:  0,
			TotalOpened:  intField(rec, "totalOpened", 0),
			LastOpened:   timeField(rec, "lastOpened"),
			CreatedAt:    now,
			Status:       model.StatusPending,
			Priority:     model.PriorityMedium,
			Recurring:    model.RecurringNone,
			ReminderTime: "",
		}
		if created := timeField(rec, "createdAt"); created != nil {
			task.CreatedAt = *created
		}
		if status := model.Status(stringField(rec, "status")); status.IsValid() {
			task.Status = status
		}
		if priority := model.Priority(stringField(rec, "priority")); priority.IsValid() {
			task.Priority = priority
		}
		if recurring := model.Recurring(stringField(rec, "recurring")); recurring.IsValid() {
			task.Recurring = recurring
		}
		if clock := stringField(rec, "reminderTime"); clock != "" {
			if _, _, err := model.ParseClock(clock); err == nil {
				task.ReminderTime = clock
			}
		}
		task.DueDate = timeField(rec, "dueDate")
		if task.DailyGoal <= 0 {
			task.DailyGoal = 1
		}
		s.tasks = append(s.tasks, task)
		added++
	}
	s.persistTasks()
	s.announce("Import finished", pluralTasks(added)+" imported", "success")
	return added
}

func stringField(rec ImportRecord, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

func intField(rec ImportRecord, key string, fallback int) int {
	switch v := rec[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func timeField(rec ImportRecord, key string) *time.Time {
	switch v := rec[key].(type) {
	case time.Time:
		return &v
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return &ts
		}
	}
	return nil
}

func pluralTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return strconv.Itoa(n) + " tasks"
}
