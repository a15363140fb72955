package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/streakd/internal/query"
	"github.com/sandeepkv93/streakd/internal/scheduler"
	"github.com/sandeepkv93/streakd/internal/store"
)

type View string

const (
	ViewTasks        View = "Tasks"
	ViewStats        View = "Stats"
	ViewAchievements View = "Achievements"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks        string
	Stats        string
	Achievements string
	Add          string
	Open         string
	Delete       string
	Help         string
	Quit         string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the bubbletea model. The store owns all task state; the
// model only keeps presentation state (current view, cursor, inputs)
// plus handles to the reminder engine and reset channel.
type Model struct {
	Store     *store.Store
	Scheduler *scheduler.Engine
	ResetC    <-chan time.Time

	CurrentView    View
	SelectedTaskID string
	Criteria       query.Criteria
	Palette        CommandPaletteState
	HelpVisible    bool
	CaptureMode    bool
	Status         StatusBar
	Notifications  []store.Notification
	DesktopEnabled bool
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	notices *NoticeBuffer
	desktop DesktopNotifier
	clock   func() time.Time

	quickAddInput textinput.Model
	commandInput  textinput.Model
	goalProgress  progress.Model
	helpModel     help.Model
}

// NoticeBuffer collects store notifications so the update loop can
// surface them after the mutation that produced them. Safe without a
// lock: store methods only run on the update goroutine.
type NoticeBuffer struct {
	items []store.Notification
}

func (b *NoticeBuffer) Send(n store.Notification) error {
	b.items = append(b.items, n)
	return nil
}

func (b *NoticeBuffer) drain() []store.Notification {
	items := b.items
	b.items = nil
	return items
}

type DesktopNotifier interface {
	Send(store.Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(store.Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n store.Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ResetDueMsg struct {
	At time.Time
}

type ReminderFiredMsg struct {
	Event scheduler.Event
}

// NewNoticeBuffer builds the notifier the store must be constructed
// with so its announcements reach the UI.
func NewNoticeBuffer() *NoticeBuffer {
	return &NoticeBuffer{}
}

func NewModel(st *store.Store, notices *NoticeBuffer, engine *scheduler.Engine, resetC <-chan time.Time, cfg RuntimeConfig) Model {
	m := Model{
		Store:          st,
		Scheduler:      engine,
		ResetC:         resetC,
		CurrentView:    ViewTasks,
		Criteria:       query.DefaultCriteria(),
		DesktopEnabled: cfg.DesktopNotifications,
		notices:        notices,
		desktop:        NoopDesktopNotifier{},
		clock:          time.Now,
		Keys: GlobalKeyMap{
			Tasks:        "1",
			Stats:        "2",
			Achievements: "3",
			Add:          "a",
			Open:         "enter",
			Delete:       "d",
			Help:         "?",
			Quit:         "q",
		},
	}
	if cfg.DesktopNotifications {
		m.desktop = ExecDesktopNotifier{}
	}

	quickAdd := textinput.New()
	quickAdd.Placeholder = "task name, e.g. morning run goal:3"
	quickAdd.CharLimit = 120
	m.quickAddInput = quickAdd

	command := textinput.New()
	command.Placeholder = "add | open | delete | goal | filter | sort | search | import | export | view"
	command.CharLimit = 200
	m.commandInput = command

	m.goalProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(12))
	m.helpModel = help.New()

	m.syncSelection()
	return m
}

// WithClock swaps the wall clock, for tests.
func (m Model) WithClock(clock func() time.Time) Model {
	if clock != nil {
		m.clock = clock
	}
	return m
}

func (m *Model) notify(n store.Notification) {
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 10 {
		m.Notifications = m.Notifications[len(m.Notifications)-10:]
	}
	if m.DesktopEnabled {
		_ = m.desktop.Send(n)
	}
}

// drainNotices moves buffered store announcements into the visible
// notification log. Call after any store mutation.
func (m *Model) drainNotices() {
	for _, n := range m.notices.drain() {
		m.notify(n)
	}
}
