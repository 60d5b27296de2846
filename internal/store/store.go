package store

import (
	"log"
	"math/rand"
	"sync"

	"taskflow/internal/clock"
	"taskflow/internal/model"
)

// Persister receives the full project collection after every successful
// mutation. Writes are fire-and-forget: a failure is logged, never surfaced
// to the mutation caller, and never rolls back in-memory state.
type Persister interface {
	Save(projects []model.Project) error
}

type Options struct {
	Clock     clock.Clock
	Persister Persister
	Logger    *log.Logger

	// UndoDepth caps the undo stack; 0 means unbounded.
	UndoDepth int

	// Pick selects an index in [0,n) when assigning a project color.
	// Defaults to math/rand; tests inject a deterministic pick.
	Pick func(n int) int
}

// Store owns the project collection. All operations serialize on one mutex
// scoped to the whole collection; the recurrence pass runs under the same
// lock so its read-then-write sequence cannot lose a concurrent update.
type Store struct {
	mu       sync.RWMutex
	projects []model.Project
	history  [][]model.Project

	undoDepth int
	clock     clock.Clock
	persist   Persister
	logger    *log.Logger
	pick      func(n int) int
}

func New(opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Pick == nil {
		opts.Pick = rand.Intn
	}
	return &Store{
		projects:  []model.Project{},
		undoDepth: opts.UndoDepth,
		clock:     opts.Clock,
		persist:   opts.Persister,
		logger:    opts.Logger,
		pick:      opts.Pick,
	}
}

// Load replaces the collection with persisted state. Meant for startup only.
func (s *Store) Load(projects []model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = model.CloneProjects(projects)
	for i := range s.projects {
		for j := range s.projects[i].Tasks {
			normalizeTask(&s.projects[i].Tasks[j])
		}
	}
}

// Snapshot returns a deep copy of the current collection. Callers can hand
// it to the analytics, view and export packages without holding the lock.
func (s *Store) Snapshot() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneProjects(s.projects)
}

func normalizeTask(t *model.Task) {
	if t.Dependencies == nil {
		t.Dependencies = []string{}
	}
}

// saveLocked writes through to the persister. Must be called with the write
// lock held, after the mutation has been applied.
func (s *Store) saveLocked() {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(model.CloneProjects(s.projects)); err != nil {
		s.logger.Printf("[warn] persist failed, in-memory state remains authoritative: %v", err)
	}
}

func (s *Store) findProjectLocked(projectID string) *model.Project {
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			return &s.projects[i]
		}
	}
	return nil
}

func taskIndex(tasks []model.Task, taskID string) int {
	for i := range tasks {
		if tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}
