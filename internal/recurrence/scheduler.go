package recurrence

import (
	"context"
	"log"
	"time"

	"taskflow/internal/clock"
	"taskflow/internal/model"
)

// Store is the slice of the task store the scheduler needs.
type Store interface {
	RecurrencePass(now time.Time) []model.Task
}

// Scheduler drives periodic recurrence passes. It holds no task state of its
// own; each tick delegates to the store, which runs the whole pass under its
// collection lock.
type Scheduler struct {
	store    Store
	clock    clock.Clock
	interval time.Duration
	logger   *log.Logger
}

const DefaultInterval = 60 * time.Second

func NewScheduler(store Store, clk clock.Clock, interval time.Duration, logger *log.Logger) *Scheduler {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{store: store, clock: clk, interval: interval, logger: logger}
}

// Run ticks until ctx is cancelled. An immediate pass runs on startup so
// tasks that became eligible while the process was down spawn right away.
func (s *Scheduler) Run(ctx context.Context) {
	s.Tick()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick runs a single recurrence pass.
func (s *Scheduler) Tick() {
	spawned := s.store.RecurrencePass(s.clock.Now())
	for _, t := range spawned {
		s.logger.Printf("recurrence: spawned task %s %q", t.ID, t.Text)
	}
}
