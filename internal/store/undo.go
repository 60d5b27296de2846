package store

import "taskflow/internal/model"

// pushSnapshotLocked records the pre-mutation collection for Undo. Only bulk
// destructive operations snapshot; per-task edits are cheap to redo by hand
// and would drown the history.
func (s *Store) pushSnapshotLocked() {
	s.history = append(s.history, model.CloneProjects(s.projects))
	if s.undoDepth > 0 && len(s.history) > s.undoDepth {
		s.history = s.history[len(s.history)-s.undoDepth:]
	}
}

// ClearCompleted drops every done, non-archived task across all projects.
// The prior state is pushed onto the undo stack first, even when nothing
// matches, so Undo after a no-op clear restores an identical collection.
func (s *Store) ClearCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushSnapshotLocked()

	removed := 0
	for i := range s.projects {
		kept := s.projects[i].Tasks[:0]
		for _, t := range s.projects[i].Tasks {
			if t.Status != model.StatusDone || t.Archived {
				kept = append(kept, t)
			} else {
				removed++
			}
		}
		s.projects[i].Tasks = kept
	}
	s.saveLocked()
	return removed
}

// Undo restores the most recent snapshot. Returns false when the stack is
// empty.
func (s *Store) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.history) == 0 {
		return false
	}
	s.projects = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.saveLocked()
	return true
}

// UndoDepth reports how many snapshots are currently available.
func (s *Store) UndoDepth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
