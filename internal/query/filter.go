// Package query holds the pure filter and sort engine for task views.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/sandeepkv93/streakd/internal/model"
)

type SortBy string

const (
	SortByName       SortBy = "name"
	SortByDate       SortBy = "date"
	SortByOpenCount  SortBy = "openCount"
	SortByLastOpened SortBy = "lastOpened"
	SortByPriority   SortBy = "priority"
	SortByDueDate    SortBy = "dueDate"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterAll matches any status or priority.
const FilterAll = "all"

// Criteria is ephemeral view state; it is never persisted.
type Criteria struct {
	Status        string
	Priority      string
	Category      string
	SortBy        SortBy
	SortDirection SortDirection
	SearchTerm    string
}

func DefaultCriteria() Criteria {
	return Criteria{
		Status:        FilterAll,
		Priority:      FilterAll,
		SortBy:        SortByName,
		SortDirection: SortAsc,
	}
}

// FilterAndSort returns the subset of tasks matching the criteria, in
// the requested order. The input slice is never mutated.
func FilterAndSort(tasks []model.Task, criteria Criteria) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if matches(task, criteria) {
			out = append(out, task)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j], criteria)
	})
	return out
}

func matches(task model.Task, criteria Criteria) bool {
	if criteria.Status != "" && criteria.Status != FilterAll && string(task.Status) != criteria.Status {
		return false
	}
	if criteria.Priority != "" && criteria.Priority != FilterAll && string(task.Priority) != criteria.Priority {
		return false
	}
	if criteria.Category != "" && task.Category != criteria.Category {
		return false
	}
	if criteria.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(task.Name), strings.ToLower(criteria.SearchTerm)) {
		return false
	}
	return true
}

func less(a, b model.Task, criteria Criteria) bool {
	cmp := compare(a, b, criteria.SortBy)
	if criteria.SortDirection == SortDesc {
		return cmp > 0
	}
	return cmp < 0
}

func compare(a, b model.Task, by SortBy) int {
	switch by {
	case SortByName:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByDate:
		return compareTimes(a.CreatedAt, b.CreatedAt)
	case SortByOpenCount:
		return a.TotalOpened - b.TotalOpened
	case SortByLastOpened:
		return compareNullableTimes(a.LastOpened, b.LastOpened)
	case SortByPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	case SortByDueDate:
		return compareNullableTimes(a.DueDate, b.DueDate)
	default:
		return 0
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// compareNullableTimes treats nil as greater than any real date, via a
// sentinel instead of a date comparison. The direction flip in less
// then yields nulls last when ascending and nulls first when
// descending.
func compareNullableTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return compareTimes(*a, *b)
	}
}
