package store

import (
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/recurrence"
)

// RecurrencePass scans every project for completed recurring tasks whose
// interval has elapsed and appends one successor each. The original task
// keeps its done status and is stamped with LastRecurredAt so a later pass
// within the same interval does not spawn twice.
//
// The whole pass runs inside the write lock: eligibility is read-then-write,
// and a concurrent status toggle between those steps must not be lost.
func (s *Store) RecurrencePass(now time.Time) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var spawned []model.Task
	for i := range s.projects {
		p := &s.projects[i]
		// Successors append to the same slice; iterate only the tasks that
		// existed when the pass started.
		n := len(p.Tasks)
		for j := 0; j < n; j++ {
			succ, ok := recurrence.Plan(p.Tasks[j], now)
			if !ok {
				continue
			}
			succ.ID = uuid.NewString() + "-recurring"

			at := now
			p.Tasks[j].LastRecurredAt = &at
			p.Tasks = append(p.Tasks, succ)
			spawned = append(spawned, succ.Clone())
		}
	}

	if len(spawned) > 0 {
		s.saveLocked()
	}
	return spawned
}
