package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/streakd/internal/commands"
	"github.com/sandeepkv93/streakd/internal/model"
	"github.com/sandeepkv93/streakd/internal/query"
	"github.com/sandeepkv93/streakd/internal/scheduler"
	"github.com/sandeepkv93/streakd/internal/stats"
	"github.com/sandeepkv93/streakd/internal/views"
)

func (m *Model) visibleTasks() []model.Task {
	return query.FilterAndSort(m.Store.Tasks(), m.Criteria)
}

// syncSelection keeps the cursor on a task that is actually visible.
func (m *Model) syncSelection() {
	visible := m.visibleTasks()
	if len(visible) == 0 {
		m.SelectedTaskID = ""
		return
	}
	for _, task := range visible {
		if task.ID == m.SelectedTaskID {
			return
		}
	}
	m.SelectedTaskID = visible[0].ID
}

func (m *Model) moveSelection(delta int) {
	visible := m.visibleTasks()
	if len(visible) == 0 {
		m.SelectedTaskID = ""
		return
	}
	index := 0
	for i, task := range visible {
		if task.ID == m.SelectedTaskID {
			index = i
			break
		}
	}
	index += delta
	if index < 0 {
		index = 0
	}
	if index > len(visible)-1 {
		index = len(visible) - 1
	}
	m.SelectedTaskID = visible[index].ID
}

func (m *Model) openSelected() {
	if m.SelectedTaskID == "" {
		return
	}
	m.Store.IncrementOpen(m.SelectedTaskID)
	m.drainNotices()
	m.replanReminders()
	if task, ok := m.Store.Task(m.SelectedTaskID); ok {
		m.Status = StatusBar{Text: fmt.Sprintf("opened %q (%d/%d today)", task.Name, task.OpenedToday, task.DailyGoal)}
	}
}

func (m *Model) deleteSelected() {
	if m.SelectedTaskID == "" {
		return
	}
	task, ok := m.Store.Task(m.SelectedTaskID)
	if !ok {
		return
	}
	m.Store.Delete(task.ID)
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", task.Name)}
	m.syncSelection()
	m.replanReminders()
}

// submitQuickAdd routes the quick-add line through the command parser
// so "name goal:3 prio:high" works the same in both entry points.
func (m Model) submitQuickAdd() Model {
	raw := strings.TrimSpace(m.quickAddInput.Value())
	m.CaptureMode = false
	m.quickAddInput.Blur()
	m.quickAddInput.SetValue("")
	if raw == "" {
		return m
	}

	cmd, err := commands.Parse("add " + raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.addTask(*cmd.Add)
	return m
}

func (m *Model) addTask(args commands.AddArgs) model.Task {
	task := m.Store.Add(model.TaskDraft{
		Name:      args.Name,
		Category:  args.Category,
		DailyGoal: args.Goal,
		Priority:  model.Priority(args.Priority),
	})
	m.drainNotices()
	m.SelectedTaskID = task.ID
	m.Status = StatusBar{Text: fmt.Sprintf("added %q", task.Name)}
	m.replanReminders()
	return task
}

// resolveTarget finds a task by exact id, then by case-insensitive
// name, then by unique name prefix.
func (m *Model) resolveTarget(target string) (model.Task, bool) {
	tasks := m.Store.Tasks()
	for _, task := range tasks {
		if task.ID == target {
			return task, true
		}
	}
	for _, task := range tasks {
		if strings.EqualFold(task.Name, target) {
			return task, true
		}
	}
	var match model.Task
	found := 0
	for _, task := range tasks {
		if strings.HasPrefix(strings.ToLower(task.Name), strings.ToLower(target)) {
			match = task
			found++
		}
	}
	if found == 1 {
		return match, true
	}
	return model.Task{}, false
}

// replanReminders recomputes the reminder plan from current state.
func (m *Model) replanReminders() {
	if m.Scheduler == nil {
		return
	}
	plan := scheduler.Plan(m.Store.Tasks(), m.Store.Stats(), m.Store.LastReminderDate(), m.clock())
	if err := m.Scheduler.Replan(plan); err != nil {
		m.LastError = err
	}
}

func (m Model) renderTasksView() string {
	visible := m.visibleTasks()
	rows := make([]views.TaskRowData, 0, len(visible))
	for _, task := range visible {
		pct := float64(task.OpenedToday) / float64(task.DailyGoal)
		if pct > 1 {
			pct = 1
		}
		row := views.TaskRowData{
			ID:          task.ID,
			Name:        task.Name,
			Category:    task.Category,
			Status:      string(task.Status),
			Priority:    string(task.Priority),
			OpenedToday: task.OpenedToday,
			DailyGoal:   task.DailyGoal,
			ProgressBar: m.goalProgress.ViewAs(pct),
			Reminder:    task.ReminderTime,
		}
		if task.DueDate != nil {
			row.DueDate = model.DayKey(*task.DueDate)
		}
		rows = append(rows, row)
	}
	return views.RenderTaskList(views.TaskListData{
		Rows:         rows,
		SelectedID:   m.SelectedTaskID,
		QuickAddView: m.quickAddInput.View(),
		CaptureMode:  m.CaptureMode,
		FilterLine:   m.filterLine(),
		Total:        len(m.Store.Tasks()),
	})
}

func (m Model) filterLine() string {
	parts := make([]string, 0, 4)
	if m.Criteria.Status != query.FilterAll && m.Criteria.Status != "" {
		parts = append(parts, "status:"+m.Criteria.Status)
	}
	if m.Criteria.Priority != query.FilterAll && m.Criteria.Priority != "" {
		parts = append(parts, "prio:"+m.Criteria.Priority)
	}
	if m.Criteria.Category != "" {
		parts = append(parts, "cat:"+m.Criteria.Category)
	}
	if m.Criteria.SearchTerm != "" {
		parts = append(parts, "search:"+m.Criteria.SearchTerm)
	}
	if len(parts) == 0 {
		return ""
	}
	return "filter: " + strings.Join(parts, " ")
}

func (m Model) renderStatsView() string {
	now := m.clock()
	summary := stats.Compute(m.Store.Tasks(), m.Store.Stats(), now)
	userStats := m.Store.Stats()

	var labels [7]string
	for i := 0; i < 7; i++ {
		labels[i] = now.AddDate(0, 0, i-6).Format("Mon")
	}

	priorities := []views.PriorityCountData{
		{Priority: string(model.PriorityHigh), Count: summary.PriorityDistribution[model.PriorityHigh]},
		{Priority: string(model.PriorityMedium), Count: summary.PriorityDistribution[model.PriorityMedium]},
		{Priority: string(model.PriorityLow), Count: summary.PriorityDistribution[model.PriorityLow]},
	}

	return views.RenderStatsPanel(views.StatsPanelData{
		Daily:         bucketData(summary.Daily),
		Weekly:        bucketData(summary.Weekly),
		Monthly:       bucketData(summary.Monthly),
		DailyProgress: summary.DailyProgress,
		WeekdayLabels: labels,
		Priorities:    priorities,
		Streak:        summary.Streak,
		LongestStreak: summary.LongestStreak,
		PerfectDays:   userStats.PerfectDays,
	})
}

func (m Model) renderAchievementsView() string {
	userStats := m.Store.Stats()
	rows := make([]views.AchievementRowData, 0, len(model.Achievements))
	for _, a := range model.Achievements {
		rows = append(rows, views.AchievementRowData{
			Icon:        a.Icon,
			Name:        a.Name,
			Description: a.Description,
			Unlocked:    userStats.HasAchievement(a.ID),
		})
	}
	return views.RenderAchievementsPanel(rows)
}

func bucketData(b stats.Bucket) views.BucketData {
	return views.BucketData{
		Completed:  b.Completed,
		InProgress: b.InProgress,
		Pending:    b.Pending,
		Total:      b.Total,
	}
}
