package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/streakd/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	if m.Scheduler != nil {
		cmds = append(cmds, waitForReminderCmd(m.Scheduler.C()))
	}
	if m.ResetC != nil {
		cmds = append(cmds, waitForResetCmd(m.ResetC))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.CaptureMode {
			return m.handleQuickAddKey(typed), nil
		}
		return m.handleGlobalKey(typed)

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil

	case ResetDueMsg:
		return m.onResetDue(typed)

	case ReminderFiredMsg:
		return m.onReminderFired(typed)
	}

	return m, nil
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Tasks:
		m.CurrentView = ViewTasks
		return m, nil
	case m.Keys.Stats:
		m.CurrentView = ViewStats
		return m, nil
	case m.Keys.Achievements:
		m.CurrentView = ViewAchievements
		return m, nil
	case m.Keys.Add:
		if m.CurrentView == ViewTasks {
			m.CaptureMode = true
			m.quickAddInput.SetValue("")
			m.quickAddInput.Focus()
			return m, nil
		}
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "j", "down":
		if m.CurrentView == ViewTasks {
			m.moveSelection(1)
			return m, nil
		}
	case "k", "up":
		if m.CurrentView == ViewTasks {
			m.moveSelection(-1)
			return m, nil
		}
	case m.Keys.Open:
		if m.CurrentView == ViewTasks {
			m.openSelected()
			return m, nil
		}
	case m.Keys.Delete:
		if m.CurrentView == ViewTasks {
			m.deleteSelected()
			return m, nil
		}
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.CaptureMode = false
		m.quickAddInput.Blur()
		m.quickAddInput.SetValue("")
	case "enter":
		m = m.submitQuickAdd()
	default:
		if msg.Type == tea.KeyRunes {
			m.quickAddInput.SetValue(m.quickAddInput.Value() + string(msg.Runes))
			return m
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		_ = cmd
	}
	return m
}

func (m Model) View() string {
	body := ""
	switch m.CurrentView {
	case ViewTasks:
		body = m.renderTasksView()
	case ViewStats:
		body = m.renderStatsView()
	case ViewAchievements:
		body = m.renderAchievementsView()
	}

	side := strings.TrimSpace(strings.Join([]string{
		views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value()),
		m.renderHelpIfVisible(),
	}, "\n"))

	notification := ""
	if len(m.Notifications) > 0 {
		last := m.Notifications[len(m.Notifications)-1]
		notification = views.RenderNotification(last.Level, last.Title+": "+last.Body)
	}

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = "status: error: " + m.Status.Text
		} else {
			status = "status: " + m.Status.Text
		}
	}

	stats := m.Store.Stats()
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("streakd | view: %s | streak: %d", m.CurrentView, stats.CurrentStreak),
		Body:         body,
		SidePane:     side,
		StatusLine:   status,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s tasks | %s stats | %s wins | %s add | / cmd | %s help | %s quit",
			m.Keys.Tasks, m.Keys.Stats, m.Keys.Achievements, m.Keys.Add, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewTasks, ViewStats, ViewAchievements:
		return true
	default:
		return false
	}
}
