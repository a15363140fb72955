package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/streakd/internal/commands"
	"github.com/sandeepkv93/streakd/internal/query"
	"github.com/sandeepkv93/streakd/internal/store"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.CurrentView = ViewTasks
			task := m.addTask(a)
			return commands.Result{Message: fmt.Sprintf("added %q", task.Name)}, nil
		},
		Open: func(a commands.OpenArgs) (commands.Result, error) {
			task, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task matches %q", a.Target)}
			}
			m.Store.IncrementOpen(task.ID)
			m.drainNotices()
			m.replanReminders()
			opened, _ := m.Store.Task(task.ID)
			return commands.Result{Message: fmt.Sprintf("opened %q (%d/%d today)", opened.Name, opened.OpenedToday, opened.DailyGoal)}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			task, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task matches %q", a.Target)}
			}
			m.Store.Delete(task.ID)
			m.syncSelection()
			m.replanReminders()
			return commands.Result{Message: fmt.Sprintf("deleted %q", task.Name)}, nil
		},
		Goal: func(a commands.GoalArgs) (commands.Result, error) {
			task, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no task matches %q", a.Target)}
			}
			goal := a.Goal
			m.Store.Update(task.ID, store.Patch{DailyGoal: &goal})
			return commands.Result{Message: fmt.Sprintf("goal for %q is now %d", task.Name, goal)}, nil
		},
		Filter: func(a commands.FilterArgs) (commands.Result, error) {
			if a.Status != "" {
				m.Criteria.Status = a.Status
			}
			if a.Priority != "" {
				m.Criteria.Priority = a.Priority
			}
			m.Criteria.Category = a.Category
			if a.Status == "" && a.Priority == "" && a.Category == "" {
				m.Criteria.Status = query.FilterAll
				m.Criteria.Priority = query.FilterAll
			}
			m.syncSelection()
			return commands.Result{Message: "filter applied"}, nil
		},
		Sort: func(a commands.SortArgs) (commands.Result, error) {
			m.Criteria.SortBy = query.SortBy(a.Field)
			m.Criteria.SortDirection = query.SortDirection(a.Direction)
			return commands.Result{Message: fmt.Sprintf("sorting by %s %s", a.Field, a.Direction)}, nil
		},
		Search: func(a commands.SearchArgs) (commands.Result, error) {
			m.Criteria.SearchTerm = a.Query
			m.syncSelection()
			if a.Query == "" {
				return commands.Result{Message: "search cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("searching for %q", a.Query)}, nil
		},
		Import: func(a commands.ImportArgs) (commands.Result, error) {
			added, err := m.importTasksFile(a.Path)
			if err != nil {
				return commands.Result{}, err
			}
			m.drainNotices()
			m.syncSelection()
			m.replanReminders()
			return commands.Result{Message: fmt.Sprintf("imported %d task(s) from %s", added, a.Path)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			count, err := m.exportTasksFile(a.Path)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("exported %d task(s) to %s", count, a.Path)}, nil
		},
		View: func(a commands.ViewArgs) (commands.Result, error) {
			switch a.Name {
			case "tasks":
				m.CurrentView = ViewTasks
			case "stats":
				m.CurrentView = ViewStats
			case "achievements", "wins":
				m.CurrentView = ViewAchievements
			case "help":
				m.HelpVisible = true
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", a.Name)}
			}
			return commands.Result{Message: "switched to " + a.Name}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}
