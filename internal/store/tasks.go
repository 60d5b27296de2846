package store

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

const ymdLayout = "2006-01-02"

// TaskPatch is a partial task update.
// nil pointer => "no change"
// empty string for clearable fields (DueDate/Recurring/Notes) => clear
type TaskPatch struct {
	Text         *string         `json:"text,omitempty"`
	Status       *model.Status   `json:"status,omitempty"`
	Priority     *model.Priority `json:"priority,omitempty"`
	DueDate      *string         `json:"dueDate,omitempty"`
	Archived     *bool           `json:"archived,omitempty"`
	Dependencies *[]string       `json:"dependencies,omitempty"`
	Recurring    *string         `json:"recurring,omitempty"`
	RecurringDay *int            `json:"recurringDay,omitempty"`
	Notes        *string         `json:"notes,omitempty"`
}

// AddTask appends a task to a project's sequence. Unlike update/delete, an
// unknown project here IS an error: the caller explicitly chose a target.
func (s *Store) AddTask(projectID, text string, dependencies []string, recurring *model.Recurrence) (model.Task, error) {
	if strings.TrimSpace(text) == "" {
		return model.Task{}, errBlank("text")
	}
	if recurring != nil && !recurring.Valid() {
		return model.Task{}, &ValidationError{Field: "recurring", Reason: "must be daily, weekly or monthly"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProjectLocked(projectID)
	if p == nil {
		return model.Task{}, &ValidationError{Field: "projectId", Reason: "unknown project"}
	}

	if dependencies == nil {
		dependencies = []string{}
	}
	t := model.Task{
		ID:           uuid.NewString(),
		Text:         text,
		Status:       model.StatusTodo,
		Priority:     model.PriorityMedium,
		CreatedAt:    s.clock.Now(),
		Dependencies: append([]string{}, dependencies...),
	}
	if recurring != nil {
		r := *recurring
		t.Recurring = &r
	}

	p.Tasks = append(p.Tasks, t)
	s.saveLocked()
	return t.Clone(), nil
}

// UpdateTask merges the patch into the task. Unknown project/task ids are a
// no-op (found=false), tolerating stale references from the scheduler.
func (s *Store) UpdateTask(projectID, taskID string, patch TaskPatch) (model.Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateTaskLocked(projectID, taskID, patch)
}

func (s *Store) updateTaskLocked(projectID, taskID string, patch TaskPatch) (model.Task, bool, error) {
	p := s.findProjectLocked(projectID)
	if p == nil {
		return model.Task{}, false, nil
	}
	i := taskIndex(p.Tasks, taskID)
	if i < 0 {
		return model.Task{}, false, nil
	}

	t := p.Tasks[i].Clone()
	if err := applyPatch(&t, patch); err != nil {
		return model.Task{}, false, err
	}
	p.Tasks[i] = t
	s.saveLocked()
	return t.Clone(), true, nil
}

func applyPatch(t *model.Task, p TaskPatch) error {
	if p.Text != nil {
		if strings.TrimSpace(*p.Text) == "" {
			return errBlank("text")
		}
		t.Text = *p.Text
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return &ValidationError{Field: "status", Reason: "must be todo, progress or done"}
		}
		t.Status = *p.Status
	}
	if p.Priority != nil {
		if !p.Priority.Valid() {
			return &ValidationError{Field: "priority", Reason: "must be low, medium or high"}
		}
		t.Priority = *p.Priority
	}
	if p.Archived != nil {
		t.Archived = *p.Archived
	}
	if p.Dependencies != nil {
		if *p.Dependencies == nil {
			t.Dependencies = []string{}
		} else {
			t.Dependencies = append([]string{}, (*p.Dependencies)...)
		}
	}

	if p.DueDate != nil {
		if *p.DueDate == "" {
			t.DueDate = nil
		} else {
			due, err := parseDueDate(*p.DueDate)
			if err != nil {
				return err
			}
			t.DueDate = &due
		}
	}

	if p.Recurring != nil {
		if *p.Recurring == "" {
			t.Recurring = nil
			t.RecurringDay = nil
		} else {
			r := model.Recurrence(*p.Recurring)
			if !r.Valid() {
				return &ValidationError{Field: "recurring", Reason: "must be daily, weekly or monthly"}
			}
			t.Recurring = &r
			if r != model.RecurWeekly {
				t.RecurringDay = nil
			}
		}
	}
	if p.RecurringDay != nil {
		d := *p.RecurringDay
		if d < 0 || d > 6 {
			return &ValidationError{Field: "recurringDay", Reason: "must be a weekday index 0-6"}
		}
		t.RecurringDay = &d
	}

	if p.Notes != nil {
		if *p.Notes == "" {
			t.Notes = nil
		} else {
			n := *p.Notes
			t.Notes = &n
		}
	}

	return nil
}

func parseDueDate(raw string) (time.Time, error) {
	if due, err := time.Parse(time.RFC3339, raw); err == nil {
		return due, nil
	}
	if due, err := time.ParseInLocation(ymdLayout, raw, time.Local); err == nil {
		return due, nil
	}
	return time.Time{}, &ValidationError{Field: "dueDate", Reason: "must be RFC3339 or " + ymdLayout}
}

// DeleteTask removes a task. Unknown project/task ids are a no-op.
func (s *Store) DeleteTask(projectID, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProjectLocked(projectID)
	if p == nil {
		return
	}
	i := taskIndex(p.Tasks, taskID)
	if i < 0 {
		return
	}
	p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
	s.saveLocked()
}

// ReorderTask moves fromTaskID into toTaskID's slot within one project's
// sequence. Cross-project requests and unknown ids are no-ops: dragging a
// task between projects is intentionally unsupported, and membership never
// changes here, only position.
func (s *Store) ReorderTask(projectID, fromTaskID, toTaskID string) {
	if fromTaskID == toTaskID {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProjectLocked(projectID)
	if p == nil {
		return
	}
	from := taskIndex(p.Tasks, fromTaskID)
	to := taskIndex(p.Tasks, toTaskID)
	if from < 0 || to < 0 {
		return
	}

	t := p.Tasks[from]
	p.Tasks = append(p.Tasks[:from], p.Tasks[from+1:]...)
	p.Tasks = append(p.Tasks[:to], append([]model.Task{t}, p.Tasks[to:]...)...)
	s.saveLocked()
}

// ToggleStatus advances the task through todo -> progress -> done -> todo.
func (s *Store) ToggleStatus(projectID, taskID string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.peekTaskLocked(projectID, taskID)
	if !ok {
		return model.Task{}, false
	}
	next := t.Status.Next()
	out, ok, _ := s.updateTaskLocked(projectID, taskID, TaskPatch{Status: &next})
	return out, ok
}

// CyclePriority advances the task through low -> medium -> high -> low.
func (s *Store) CyclePriority(projectID, taskID string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.peekTaskLocked(projectID, taskID)
	if !ok {
		return model.Task{}, false
	}
	next := t.Priority.Next()
	out, ok, _ := s.updateTaskLocked(projectID, taskID, TaskPatch{Priority: &next})
	return out, ok
}

// ToggleArchived flips the archived flag. Archived tasks stay in storage but
// drop out of active views and analytics.
func (s *Store) ToggleArchived(projectID, taskID string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.peekTaskLocked(projectID, taskID)
	if !ok {
		return model.Task{}, false
	}
	flipped := !t.Archived
	out, ok, _ := s.updateTaskLocked(projectID, taskID, TaskPatch{Archived: &flipped})
	return out, ok
}

func (s *Store) peekTaskLocked(projectID, taskID string) (model.Task, bool) {
	p := s.findProjectLocked(projectID)
	if p == nil {
		return model.Task{}, false
	}
	i := taskIndex(p.Tasks, taskID)
	if i < 0 {
		return model.Task{}, false
	}
	return p.Tasks[i], true
}
