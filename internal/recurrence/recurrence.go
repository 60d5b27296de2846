// Package recurrence decides when a completed recurring task spawns its next
// occurrence and what that occurrence looks like. The planning functions are
// pure; the store applies their results under its own lock.
package recurrence

import (
	"time"

	"taskflow/internal/model"
)

// Minimum whole days that must elapse since the last spawn (or creation)
// before a completed task recurs again.
const (
	daysDaily   = 1
	daysWeekly  = 7
	daysMonthly = 30
)

// Eligible reports whether a task is due to spawn its next occurrence at now.
// Only done, recurring tasks qualify; elapsed time is measured in whole days
// from LastRecurredAt, falling back to CreatedAt for a task that has never
// recurred.
func Eligible(t model.Task, now time.Time) bool {
	if t.Recurring == nil || t.Status != model.StatusDone {
		return false
	}

	since := t.CreatedAt
	if t.LastRecurredAt != nil {
		since = *t.LastRecurredAt
	}
	elapsed := int(now.Sub(since).Hours() / 24)

	switch *t.Recurring {
	case model.RecurDaily:
		return elapsed >= daysDaily
	case model.RecurWeekly:
		return elapsed >= daysWeekly
	case model.RecurMonthly:
		return elapsed >= daysMonthly
	}
	return false
}

// NextDueDate computes the successor's due date. Weekly tasks pinned to a
// weekday land on the next occurrence of that weekday, never today; the other
// intervals are plain offsets from now. The time of day is carried over from
// now rather than normalized to midnight.
func NextDueDate(t model.Task, now time.Time) time.Time {
	switch *t.Recurring {
	case model.RecurDaily:
		return now.AddDate(0, 0, 1)
	case model.RecurWeekly:
		if t.RecurringDay != nil {
			until := (*t.RecurringDay - int(now.Weekday()) + 7) % 7
			if until == 0 {
				until = 7
			}
			return now.AddDate(0, 0, until)
		}
		return now.AddDate(0, 0, 7)
	default:
		return now.AddDate(0, 0, 30)
	}
}

// Plan returns the successor task for t, or ok=false when t is not eligible.
// The successor copies everything from t except: a fresh ID is left for the
// caller to assign, status resets to todo, CreatedAt and LastRecurredAt are
// stamped with now, and the due date advances per the interval.
func Plan(t model.Task, now time.Time) (model.Task, bool) {
	if !Eligible(t, now) {
		return model.Task{}, false
	}

	succ := t.Clone()
	succ.ID = ""
	succ.Status = model.StatusTodo
	succ.CreatedAt = now
	at := now
	succ.LastRecurredAt = &at
	due := NextDueDate(t, now)
	succ.DueDate = &due
	return succ, true
}
