// Package view projects a store snapshot into what a client renders: tasks
// filtered by search text and archive visibility, optionally sorted by due
// date, each annotated with a human due label.
package view

import (
	"sort"
	"strings"
	"time"

	"taskflow/internal/model"
)

// Query selects and orders tasks. The zero value shows every non-archived
// task in stored (drag) order.
type Query struct {
	Search        string
	ShowArchived  bool
	SortByDueDate bool
}

// TaskView is a task plus render-time annotations. Annotations are derived
// from the query time, never stored.
type TaskView struct {
	model.Task

	IsToday  bool   `json:"isToday"`
	DueLabel string `json:"dueLabel"`
}

type ProjectView struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Color model.Color `json:"color"`
	Tasks []TaskView  `json:"tasks"`
}

// Apply filters and orders every project's tasks at now.
func Apply(projects []model.Project, q Query, now time.Time) []ProjectView {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		pv := ProjectView{ID: p.ID, Name: p.Name, Color: p.Color, Tasks: []TaskView{}}
		for _, t := range p.Tasks {
			if t.Archived != q.ShowArchived {
				continue
			}
			if needle != "" && !strings.Contains(strings.ToLower(t.Text), needle) {
				continue
			}
			pv.Tasks = append(pv.Tasks, annotate(t, now))
		}
		if q.SortByDueDate {
			sortByDue(pv.Tasks, now)
		}
		out = append(out, pv)
	}
	return out
}

func annotate(t model.Task, now time.Time) TaskView {
	v := TaskView{Task: t.Clone()}
	if t.DueDate == nil {
		return v
	}

	due := *t.DueDate
	today := midnight(now)
	dueDay := midnight(due)

	switch {
	case dueDay.Equal(today):
		v.IsToday = true
		v.DueLabel = "Today"
	case dueDay.Equal(today.AddDate(0, 0, 1)):
		v.DueLabel = "Tomorrow"
	case due.Before(now) && t.Status != model.StatusDone:
		v.DueLabel = "Overdue"
	default:
		v.DueLabel = due.Format("Jan 2")
	}
	return v
}

// sortByDue orders undated tasks last and, among dated ones, overdue
// not-done tasks first, then ascending due date. Equal keys keep their
// relative stored order so sorting never shuffles a hand-arranged list.
func sortByDue(tasks []TaskView, now time.Time) {
	rank := func(t TaskView) int {
		switch {
		case t.DueDate == nil:
			return 2
		case t.DueDate.Before(now) && t.Status != model.StatusDone:
			return 0
		default:
			return 1
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		ra, rb := rank(a), rank(b)
		if ra != rb {
			return ra < rb
		}
		if a.DueDate == nil || b.DueDate == nil {
			return false
		}
		return a.DueDate.Before(*b.DueDate)
	})
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
