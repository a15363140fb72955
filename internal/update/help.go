package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/streakd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()

	var md strings.Builder
	md.WriteString("### global\n")
	for _, kb := range m.globalBindings() {
		md.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
	}
	md.WriteString("\n### " + strings.ToLower(string(m.CurrentView)) + "\n")
	for _, kb := range m.viewBindings() {
		md.WriteString(fmt.Sprintf("- `%s` %s\n", kb.Key, kb.Action))
	}

	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView:  string(m.CurrentView),
		BindingsView: views.RenderMarkdown(md.String()),
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Tasks, Action: "switch to Tasks"},
		{Key: m.Keys.Stats, Action: "switch to Stats"},
		{Key: m.Keys.Achievements, Action: "switch to Achievements"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewTasks:
		return []KeyBinding{
			{Key: m.Keys.Add, Action: "quick add task"},
			{Key: "j/k", Action: "move selection"},
			{Key: m.Keys.Open, Action: "open selected task"},
			{Key: m.Keys.Delete, Action: "delete selected task"},
		}
	case ViewStats, ViewAchievements:
		return []KeyBinding{
			{Key: "1", Action: "back to task list"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
