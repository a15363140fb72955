package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("model: invalid task status")
	ErrInvalidPriority  = errors.New("model: invalid task priority")
	ErrInvalidRecurring = errors.New("model: invalid recurring mode")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities with the most urgent first: high < medium < low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Recurring string

const (
	RecurringNone    Recurring = "none"
	RecurringDaily   Recurring = "daily"
	RecurringWeekly  Recurring = "weekly"
	RecurringMonthly Recurring = "monthly"
)

func (r Recurring) IsValid() bool {
	switch r {
	case RecurringNone, RecurringDaily, RecurringWeekly, RecurringMonthly:
		return true
	default:
		return false
	}
}

// Task is a tracked activity with a daily open goal. Recurring is
// informational only; no recurrence engine acts on it.
type Task struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Link         string     `json:"link"`
	Moto         string     `json:"moto,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Category     string     `json:"category,omitempty"`
	DailyGoal    int        `json:"dailyGoal"`
	OpenedToday  int        `json:"openedToday"`
	TotalOpened  int        `json:"totalOpened"`
	LastOpened   *time.Time `json:"lastOpened"`
	CreatedAt    time.Time  `json:"createdAt"`
	Status       Status     `json:"status"`
	Priority     Priority   `json:"priority"`
	DueDate      *time.Time `json:"dueDate"`
	Recurring    Recurring  `json:"recurring"`
	ReminderTime string     `json:"reminderTime,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.Recurring.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRecurring, t.Recurring)
	}
	if t.DailyGoal <= 0 {
		return errors.New("model: task daily goal must be positive")
	}
	if t.OpenedToday < 0 || t.TotalOpened < 0 {
		return errors.New("model: task open counters must be non-negative")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.ReminderTime != "" {
		if _, _, err := ParseClock(t.ReminderTime); err != nil {
			return err
		}
	}
	return nil
}

// GoalReached reports whether today's opens have met the daily goal.
func (t Task) GoalReached() bool {
	return t.OpenedToday >= t.DailyGoal
}

// TaskDraft carries the caller-supplied fields for a new task. Defaulting
// and coercion happen once, in NewTask, never at call sites.
type TaskDraft struct {
	Name         string
	Link         string
	Moto         string
	Notes        string
	Category     string
	DailyGoal    int
	Status       Status
	Priority     Priority
	DueDate      *time.Time
	Recurring    Recurring
	ReminderTime string
}

func NewTask(draft TaskDraft, now time.Time) Task {
	task := Task{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(draft.Name),
		Link:         strings.TrimSpace(draft.Link),
		Moto:         draft.Moto,
		Notes:        draft.Notes,
		Category:     strings.TrimSpace(draft.Category),
		DailyGoal:    draft.DailyGoal,
		CreatedAt:    now,
		Status:       draft.Status,
		Priority:     draft.Priority,
		DueDate:      draft.DueDate,
		Recurring:    draft.Recurring,
		ReminderTime: strings.TrimSpace(draft.ReminderTime),
	}
	if task.DailyGoal <= 0 {
		task.DailyGoal = 1
	}
	if !task.Status.IsValid() {
		task.Status = StatusPending
	}
	if !task.Priority.IsValid() {
		task.Priority = PriorityMedium
	}
	if !task.Recurring.IsValid() {
		task.Recurring = RecurringNone
	}
	if _, _, err := ParseClock(task.ReminderTime); err != nil {
		task.ReminderTime = ""
	}
	return task
}

var ErrInvalidClock = errors.New("model: invalid HH:MM time")

// ParseClock parses an HH:MM time-of-day string. The empty string is
// accepted and means "no reminder".
func ParseClock(v string) (hour int, minute int, err error) {
	if v == "" {
		return 0, 0, nil
	}
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return hour, minute, nil
}
