package model

import (
	"time"
)

type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusDone     Status = "done"
)

// Next returns the following status in the todo -> progress -> done cycle.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusProgress
	case StatusProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Next returns the following priority in the low -> medium -> high cycle.
func (p Priority) Next() Priority {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Recurrence string

const (
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurDaily, RecurWeekly, RecurMonthly:
		return true
	}
	return false
}

// Task is a unit of work owned by exactly one project.
//
// Optional fields are pointers without omitempty on purpose: absent values
// serialize as explicit null so a round-tripped blob is distinguishable from
// one written before the field existed.
type Task struct {
	ID           string      `json:"id"`
	Text         string      `json:"text"`
	Status       Status      `json:"status"`
	Priority     Priority    `json:"priority"`
	DueDate      *time.Time  `json:"dueDate"`
	CreatedAt    time.Time   `json:"createdAt"`
	Archived     bool        `json:"archived"`
	Dependencies []string    `json:"dependencies"`
	Recurring    *Recurrence `json:"recurring"`
	// RecurringDay is a weekday index 0-6 (Sunday=0), meaningful only when
	// Recurring is weekly.
	RecurringDay   *int       `json:"recurringDay"`
	LastRecurredAt *time.Time `json:"lastRecurredAt"`
	Notes          *string    `json:"notes"`
}

// Clone returns a deep copy.
func (t Task) Clone() Task {
	out := t
	out.DueDate = cloneTimePtr(t.DueDate)
	out.LastRecurredAt = cloneTimePtr(t.LastRecurredAt)
	if t.Dependencies != nil {
		out.Dependencies = append([]string{}, t.Dependencies...)
	}
	if t.Recurring != nil {
		r := *t.Recurring
		out.Recurring = &r
	}
	if t.RecurringDay != nil {
		d := *t.RecurringDay
		out.RecurringDay = &d
	}
	if t.Notes != nil {
		n := *t.Notes
		out.Notes = &n
	}
	return out
}

func cloneTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
