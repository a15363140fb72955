package update

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/streakd/internal/model"
	"github.com/sandeepkv93/streakd/internal/query"
	"github.com/sandeepkv93/streakd/internal/scheduler"
	"github.com/sandeepkv93/streakd/internal/storage"
	"github.com/sandeepkv93/streakd/internal/store"
)

type testKV struct {
	blobs map[string][]byte
}

func (kv *testKV) Get(_ context.Context, key string) ([]byte, error) {
	blob, ok := kv.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return blob, nil
}

func (kv *testKV) Put(_ context.Context, key string, blob []byte) error {
	kv.blobs[key] = append([]byte(nil), blob...)
	return nil
}

func (kv *testKV) Delete(_ context.Context, key string) error {
	delete(kv.blobs, key)
	return nil
}

func (kv *testKV) Close() error { return nil }

var appNow = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) Model {
	t.Helper()
	notices := NewNoticeBuffer()
	st := store.New(
		&testKV{blobs: make(map[string][]byte)},
		storage.Snapshot{UserStats: model.DefaultUserStats()},
		notices,
		func() time.Time { return appNow },
	)
	m := NewModel(st, notices, nil, nil, DefaultRuntimeConfig())
	return m.WithClock(func() time.Time { return appNow })
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.CurrentView != ViewTasks {
		t.Fatalf("expected default view %q, got %q", ViewTasks, m.CurrentView)
	}
	if m.Criteria.Status != query.FilterAll {
		t.Fatalf("expected default status filter, got %q", m.Criteria.Status)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(keyRunes("3"))
	next = updated.(Model)
	if next.CurrentView != ViewAchievements {
		t.Fatalf("expected achievements view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: ViewStats})
	next := updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewStats {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestQuickAddCreatesTask(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("a"))
	next := updated.(Model)
	if !next.CaptureMode {
		t.Fatal("expected capture mode after add key")
	}

	updated, _ = next.Update(keyRunes("morning run goal:3 prio:high"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	tasks := next.Store.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Name != "morning run" || tasks[0].DailyGoal != 3 || tasks[0].Priority != model.PriorityHigh {
		t.Fatalf("unexpected task: %+v", tasks[0])
	}
	if next.SelectedTaskID != tasks[0].ID {
		t.Fatal("new task should be selected")
	}
	if next.CaptureMode {
		t.Fatal("capture mode should close on enter")
	}
}

func TestOpenSelectedWalksStatus(t *testing.T) {
	m := newTestModel(t)
	task := m.Store.Add(model.TaskDraft{Name: "practice", DailyGoal: 2})
	m.syncSelection()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := updated.(Model)

	got, _ := next.Store.Task(task.ID)
	if got.Status != model.StatusInProgress || got.OpenedToday != 1 {
		t.Fatalf("unexpected task after open: %+v", got)
	}
	if !strings.Contains(next.Status.Text, "opened") {
		t.Fatalf("expected open status, got %q", next.Status.Text)
	}
}

func TestDeleteSelectedRemovesTask(t *testing.T) {
	m := newTestModel(t)
	m.Store.Add(model.TaskDraft{Name: "practice"})
	m.syncSelection()

	updated, _ := m.Update(keyRunes("d"))
	next := updated.(Model)

	if len(next.Store.Tasks()) != 0 {
		t.Fatal("expected task deleted")
	}
	if next.SelectedTaskID != "" {
		t.Fatalf("expected empty selection, got %q", next.SelectedTaskID)
	}
}

func TestPaletteFilterCommand(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatal("expected palette active")
	}

	updated, _ = next.Update(keyRunes("filter status:pending prio:high"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatal("palette should close after execution")
	}
	if next.Criteria.Status != "pending" || next.Criteria.Priority != "high" {
		t.Fatalf("filter not applied: %+v", next.Criteria)
	}
}

func TestPaletteSortCommand(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("sort priority desc"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if next.Criteria.SortBy != query.SortByPriority || next.Criteria.SortDirection != query.SortDesc {
		t.Fatalf("sort not applied: %+v", next.Criteria)
	}
}

func TestPaletteOpenByName(t *testing.T) {
	m := newTestModel(t)
	m.Store.Add(model.TaskDraft{Name: "morning run"})

	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("open morning"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	tasks := next.Store.Tasks()
	if tasks[0].OpenedToday != 1 {
		t.Fatalf("expected task opened via palette, got %+v", tasks[0])
	}
}

func TestPaletteUnknownCommandSetsErrorStatus(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestResetDueMsgResetsCounters(t *testing.T) {
	m := newTestModel(t)
	task := m.Store.Add(model.TaskDraft{Name: "practice"})
	m.Store.IncrementOpen(task.ID)

	updated, _ := m.Update(ResetDueMsg{At: appNow.AddDate(0, 0, 1)})
	next := updated.(Model)

	got, _ := next.Store.Task(task.ID)
	if got.OpenedToday != 0 {
		t.Fatalf("expected counter reset, got %d", got.OpenedToday)
	}
	if got.Status != model.StatusCompleted {
		t.Fatalf("status must survive the reset, got %q", got.Status)
	}
}

func TestResetDueMsgForAlreadyResetDateIsQuiet(t *testing.T) {
	// The poller ticks once per calendar date without looking at store
	// state, so the loop must absorb a tick for a date that has
	// already been reset.
	m := newTestModel(t)
	task := m.Store.Add(model.TaskDraft{Name: "practice"})
	m.Store.RunDailyReset(appNow)
	m.Store.IncrementOpen(task.ID)

	updated, _ := m.Update(ResetDueMsg{At: appNow})
	next := updated.(Model)

	got, _ := next.Store.Task(task.ID)
	if got.OpenedToday != 1 {
		t.Fatalf("counter must survive a duplicate reset tick, got %d", got.OpenedToday)
	}
	if next.Status.Text == "daily counters reset" {
		t.Fatal("duplicate tick must not announce a reset")
	}
}

func TestReminderFiredMarksDailySent(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(ReminderFiredMsg{Event: scheduler.Event{Kind: scheduler.KindDaily, TriggerAt: appNow}})
	next := updated.(Model)

	if next.Store.LastReminderDate() != model.DayKey(appNow) {
		t.Fatalf("expected reminder date recorded, got %q", next.Store.LastReminderDate())
	}
	if len(next.Notifications) == 0 {
		t.Fatal("expected a visible notification")
	}

	// A second daily event on the same date stays quiet.
	updated, _ = next.Update(ReminderFiredMsg{Event: scheduler.Event{Kind: scheduler.KindDaily, TriggerAt: appNow}})
	next = updated.(Model)
	if len(next.Notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(next.Notifications))
	}
}

func TestAchievementNoticeSurfacesInUI(t *testing.T) {
	m := newTestModel(t)

	// Nine completed tasks: the next completion crosses the tasks-10
	// line. A task completes at most once per day, so each needs its
	// own task.
	st := m.Store
	for i := 0; i < 9; i++ {
		task := st.Add(model.TaskDraft{Name: "warmup"})
		st.IncrementOpen(task.ID)
	}
	fresh := st.Add(model.TaskDraft{Name: "another"})
	m.drainNotices()
	m.Notifications = nil
	m.SelectedTaskID = fresh.ID

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next := updated.(Model)

	found := false
	for _, n := range next.Notifications {
		if n.Title == "Achievement unlocked" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected achievement notification, got %+v", next.Notifications)
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := newTestModel(t)
	m.Store.Add(model.TaskDraft{Name: "practice"})
	m.syncSelection()
	m.Status = StatusBar{Text: "all good"}

	out := m.View()
	if !strings.Contains(out, "view: Tasks") {
		t.Fatalf("expected view text in output: %q", out)
	}
	if !strings.Contains(out, "practice") {
		t.Fatalf("expected task name in output: %q", out)
	}
	if !strings.Contains(out, "status: all good") {
		t.Fatalf("expected status in output: %q", out)
	}
}

func TestHelpPanelRendersBindings(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyRunes("?"))
	next := updated.(Model)
	if !next.HelpVisible {
		t.Fatal("expected help visible after toggle")
	}

	out := next.View()
	if !strings.Contains(out, "help:") {
		t.Fatalf("expected help panel in output: %q", out)
	}
	if !strings.Contains(out, "quit") {
		t.Fatalf("expected quit binding in help output: %q", out)
	}
}

func TestUpdateQuitKey(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(keyRunes("q"))
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting flag true")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
