package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/streakd/internal/scheduler"
	"github.com/sandeepkv93/streakd/internal/store"
)

func waitForReminderCmd(ch <-chan scheduler.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderFiredMsg{Event: ev}
	}
}

func waitForResetCmd(ch <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		at, ok := <-ch
		if !ok {
			return nil
		}
		return ResetDueMsg{At: at}
	}
}

func (m Model) onResetDue(msg ResetDueMsg) (tea.Model, tea.Cmd) {
	if m.Store.RunDailyReset(msg.At) {
		m.drainNotices()
		m.Status = StatusBar{Text: "daily counters reset"}
		m.replanReminders()
	}
	if m.ResetC != nil {
		return m, waitForResetCmd(m.ResetC)
	}
	return m, nil
}

func (m Model) onReminderFired(msg ReminderFiredMsg) (tea.Model, tea.Cmd) {
	switch msg.Event.Kind {
	case scheduler.KindDaily:
		if m.Store.MarkReminderSent(msg.Event.TriggerAt) {
			m.notify(store.Notification{
				Title: "Task reminder",
				Body:  "you still have tasks waiting today",
				Level: "info",
			})
			m.Status = StatusBar{Text: "daily reminder sent"}
		}
	case scheduler.KindTask:
		m.notify(store.Notification{
			Title: "Task reminder",
			Body:  fmt.Sprintf("time for %q", msg.Event.Name),
			Level: "info",
		})
		m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s", msg.Event.Name)}
	}

	if m.Scheduler != nil {
		return m, waitForReminderCmd(m.Scheduler.C())
	}
	return m, nil
}
