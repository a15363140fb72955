// Package store owns the authoritative task list and user stats. All
// mutation goes through its methods; consumers receive copies. The
// store is not safe for concurrent use: the update loop serializes
// every command, matching the single event queue the app runs on.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sandeepkv93/streakd/internal/model"
	"github.com/sandeepkv93/streakd/internal/reset"
	"github.com/sandeepkv93/streakd/internal/storage"
	"github.com/sandeepkv93/streakd/internal/streak"
)

// Notification is a user-facing announcement emitted on store side
// effects (task added, achievement unlocked). Presentation decides how
// to show it.
type Notification struct {
	Title string
	Body  string
	Level string
}

type Notifier interface {
	Send(Notification) error
}

type NoopNotifier struct{}

func (NoopNotifier) Send(Notification) error { return nil }

type Store struct {
	kv       storage.KV
	notifier Notifier
	now      func() time.Time

	tasks            []model.Task
	stats            model.UserStats
	lastResetDate    string
	lastReminderDate string

	// Persistence is best effort: the in-memory state stays
	// authoritative when a write fails, and the error is only kept
	// for the status bar.
	lastSaveErr error
}

func New(kv storage.KV, snap storage.Snapshot, notifier Notifier, now func() time.Time) *Store {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	if now == nil {
		now = time.Now
	}
	stats := snap.UserStats
	if stats.Achievements == nil {
		stats.Achievements = []string{}
	}
	return &Store{
		kv:               kv,
		notifier:         notifier,
		now:              now,
		tasks:            append([]model.Task(nil), snap.Tasks...),
		stats:            stats,
		lastResetDate:    snap.LastResetDate,
		lastReminderDate: snap.LastReminderDate,
	}
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []model.Task {
	return append([]model.Task(nil), s.tasks...)
}

// Task returns a single task by id.
func (s *Store) Task(id string) (model.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

// Stats returns a deep copy of the user stats.
func (s *Store) Stats() model.UserStats {
	return s.stats.Clone()
}

func (s *Store) LastResetDate() string    { return s.lastResetDate }
func (s *Store) LastReminderDate() string { return s.lastReminderDate }

// LastError reports the most recent persistence failure, if any.
func (s *Store) LastError() error { return s.lastSaveErr }

// Add creates a task from the draft and appends it to the collection.
func (s *Store) Add(draft model.TaskDraft) model.Task {
	task := model.NewTask(draft, s.now())
	s.tasks = append(s.tasks, task)
	s.persistTasks()
	s.announce("Task added", fmt.Sprintf("%q is now tracked", task.Name), "success")
	return task
}

// Patch carries the fields Update may overwrite. Nil fields are left
// untouched.
type Patch struct {
	Name         *string
	Link         *string
	Moto         *string
	Notes        *string
	Category     *string
	DailyGoal    *int
	Status       *model.Status
	Priority     *model.Priority
	DueDate      *time.Time
	Recurring    *model.Recurring
	ReminderTime *string
}

// Update merges the patch onto the task with the given id. Unknown ids
// are a silent no-op.
func (s *Store) Update(id string, patch Patch) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	task := &s.tasks[i]
	if patch.Name != nil {
		task.Name = *patch.Name
	}
	if patch.Link != nil {
		task.Link = *patch.Link
	}
	if patch.Moto != nil {
		task.Moto = *patch.Moto
	}
	if patch.Notes != nil {
		task.Notes = *patch.Notes
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.DailyGoal != nil && *patch.DailyGoal > 0 {
		task.DailyGoal = *patch.DailyGoal
	}
	if patch.Status != nil && patch.Status.IsValid() {
		task.Status = *patch.Status
	}
	if patch.Priority != nil && patch.Priority.IsValid() {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		task.DueDate = &due
	}
	if patch.Recurring != nil && patch.Recurring.IsValid() {
		task.Recurring = *patch.Recurring
	}
	if patch.ReminderTime != nil {
		if _, _, err := model.ParseClock(*patch.ReminderTime); err == nil {
			task.ReminderTime = *patch.ReminderTime
		}
	}
	s.persistTasks()
}

// Delete removes the task with the given id. Unknown ids are a silent
// no-op.
func (s *Store) Delete(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.persistTasks()
}

// IncrementOpen records one open event against the task. Crossing the
// daily goal for the first time since the last reset is a completion
// event: it bumps the completion total, runs the streak engine, and
// records activity patterns. Completed status is sticky until the daily
// reset zeroes the counter.
func (s *Store) IncrementOpen(id string) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	now := s.now()
	task := &s.tasks[i]

	wasCompleted := task.Status == model.StatusCompleted
	newOpenedToday := task.OpenedToday + 1

	if newOpenedToday >= task.DailyGoal && task.Status != model.StatusCompleted {
		task.Status = model.StatusCompleted
	} else if newOpenedToday > 0 && task.Status == model.StatusPending {
		task.Status = model.StatusInProgress
	}

	task.OpenedToday = newOpenedToday
	task.TotalOpened++
	opened := now
	task.LastOpened = &opened

	if task.Status == model.StatusCompleted && !wasCompleted {
		s.stats.TotalTasksCompleted++
		s.runStreakEngine(now)
		s.stats = streak.RecordActivity(s.stats, now)
	}

	s.persistTasks()
	s.persistStats()
}

// ExportAll returns the full collection verbatim; serialization is the
// exporter's concern.
func (s *Store) ExportAll() []model.Task {
	return s.Tasks()
}

// UpdateReminderPreferences overwrites the reminder preferences.
func (s *Store) UpdateReminderPreferences(prefs model.ReminderPreferences) {
	s.stats.ReminderPreferences = prefs
	s.persistStats()
	s.announce("Preferences updated", "reminder preferences saved", "success")
}

// RunDailyReset zeroes every task's daily counter and runs the streak
// engine once, then records the reset date. Invoking it again for the
// same calendar date is a no-op, so the polling driver may call it
// freely. Task status is deliberately left alone: a task completed
// yesterday keeps showing completed with openedToday 0 until its next
// open.
func (s *Store) RunDailyReset(now time.Time) bool {
	if !reset.Due(s.lastResetDate, now) {
		return false
	}
	today := model.DayKey(now)
	for i := range s.tasks {
		s.tasks[i].OpenedToday = 0
	}
	s.runStreakEngine(now)
	s.lastResetDate = today
	s.persistTasks()
	s.persistStats()
	s.persistDate(storage.KeyLastResetDate, today)
	return true
}

// MarkReminderSent records that the once-per-day reminder nudge went
// out. Returns false when it already fired today.
func (s *Store) MarkReminderSent(now time.Time) bool {
	today := model.DayKey(now)
	if s.lastReminderDate == today {
		return false
	}
	s.lastReminderDate = today
	s.persistDate(storage.KeyLastReminderDate, today)
	return true
}

func (s *Store) runStreakEngine(now time.Time) {
	next, unlocked := streak.Update(s.tasks, s.stats, now)
	s.stats = next
	for _, a := range unlocked {
		s.announce("Achievement unlocked", fmt.Sprintf("%s %s: %s", a.Icon, a.Name, a.Description), "success")
	}
}

func (s *Store) indexOf(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) announce(title, body, level string) {
	_ = s.notifier.Send(Notification{Title: title, Body: body, Level: level})
}

func (s *Store) persistTasks() {
	if err := storage.SaveTasks(context.Background(), s.kv, s.tasks); err != nil {
		s.lastSaveErr = err
	}
}

func (s *Store) persistStats() {
	if err := storage.SaveUserStats(context.Background(), s.kv, s.stats); err != nil {
		s.lastSaveErr = err
	}
}

func (s *Store) persistDate(key, day string) {
	if err := storage.SaveDate(context.Background(), s.kv, key, day); err != nil {
		s.lastSaveErr = err
	}
}
