package store

import (
	"time"

	"taskflow/internal/model"
)

// QuickDue is a one-click due date preset.
type QuickDue string

const (
	DueToday    QuickDue = "today"
	DueTomorrow QuickDue = "tomorrow"
	DueNextWeek QuickDue = "nextWeek"
)

// SetQuickDue assigns a preset due date, normalized to local midnight.
// Unknown project/task ids are a no-op.
func (s *Store) SetQuickDue(projectID, taskID string, pick QuickDue) (model.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var offset int
	switch pick {
	case DueToday:
		offset = 0
	case DueTomorrow:
		offset = 1
	case DueNextWeek:
		offset = 7
	default:
		return model.Task{}, false, &ValidationError{Field: "due", Reason: "must be today, tomorrow or nextWeek"}
	}

	due := midnight(s.clock.Now()).AddDate(0, 0, offset).Format(time.RFC3339)
	return s.updateTaskLocked(projectID, taskID, TaskPatch{DueDate: &due})
}

// SetWeeklyOn pins the task to a weekly cadence on the given weekday
// (Sunday=0) and sets the due date to the next occurrence of that weekday,
// at least one day out. Unknown project/task ids are a no-op.
func (s *Store) SetWeeklyOn(projectID, taskID string, weekday int) (model.Task, bool, error) {
	if weekday < 0 || weekday > 6 {
		return model.Task{}, false, &ValidationError{Field: "weekday", Reason: "must be a weekday index 0-6"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	until := (weekday - int(now.Weekday()) + 7) % 7
	if until == 0 {
		until = 7
	}
	due := midnight(now).AddDate(0, 0, until).Format(time.RFC3339)

	weekly := string(model.RecurWeekly)
	return s.updateTaskLocked(projectID, taskID, TaskPatch{
		DueDate:      &due,
		Recurring:    &weekly,
		RecurringDay: &weekday,
	})
}

// RemoveDueDate clears the due date together with any recurrence tied to it.
// Unknown project/task ids are a no-op.
func (s *Store) RemoveDueDate(projectID, taskID string) (model.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear := ""
	return s.updateTaskLocked(projectID, taskID, TaskPatch{
		DueDate:   &clear,
		Recurring: &clear,
	})
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
