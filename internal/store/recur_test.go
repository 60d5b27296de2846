package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
)

func addRecurringDone(t *testing.T, s *Store, projectID, text string, rec model.Recurrence) model.Task {
	t.Helper()
	task, err := s.AddTask(projectID, text, nil, &rec)
	require.NoError(t, err)
	done := model.StatusDone
	task, found, err := s.UpdateTask(projectID, task.ID, TaskPatch{Status: &done})
	require.NoError(t, err)
	require.True(t, found)
	return task
}

func TestRecurrencePass_SpawnsDailySuccessor(t *testing.T) {
	s, fc := newTestStore(t)
	orig := addRecurringDone(t, s, "1", "water plants", model.RecurDaily)

	fc.Advance(25 * time.Hour)
	spawned := s.RecurrencePass(fc.Now())

	require.Len(t, spawned, 1)
	succ := spawned[0]

	assert.NotEqual(t, orig.ID, succ.ID)
	assert.True(t, strings.HasSuffix(succ.ID, "-recurring"))
	assert.Equal(t, "water plants", succ.Text)
	assert.Equal(t, model.StatusTodo, succ.Status)
	assert.Equal(t, fc.Now(), succ.CreatedAt)
	require.NotNil(t, succ.LastRecurredAt)
	assert.Equal(t, fc.Now(), *succ.LastRecurredAt)
	require.NotNil(t, succ.DueDate)
	assert.Equal(t, fc.Now().AddDate(0, 0, 1), *succ.DueDate)

	tasks := s.Snapshot()[0].Tasks
	require.Len(t, tasks, 2)
	assert.Equal(t, model.StatusDone, tasks[0].Status)
	require.NotNil(t, tasks[0].LastRecurredAt)
	assert.Equal(t, fc.Now(), *tasks[0].LastRecurredAt)
}

func TestRecurrencePass_DoesNotSpawnTwiceInOneInterval(t *testing.T) {
	s, fc := newTestStore(t)
	addRecurringDone(t, s, "1", "water plants", model.RecurDaily)

	fc.Advance(25 * time.Hour)
	require.Len(t, s.RecurrencePass(fc.Now()), 1)

	fc.Advance(time.Hour)
	assert.Empty(t, s.RecurrencePass(fc.Now()))

	fc.Advance(24 * time.Hour)
	assert.Len(t, s.RecurrencePass(fc.Now()), 1)
}

func TestRecurrencePass_SkipsUnfinishedTasks(t *testing.T) {
	s, fc := newTestStore(t)
	rec := model.RecurDaily
	_, err := s.AddTask("1", "still todo", nil, &rec)
	require.NoError(t, err)

	fc.Advance(48 * time.Hour)

	assert.Empty(t, s.RecurrencePass(fc.Now()))
}

func TestRecurrencePass_WeeklyWaitsSevenDays(t *testing.T) {
	s, fc := newTestStore(t)
	addRecurringDone(t, s, "1", "review budget", model.RecurWeekly)

	fc.Advance(6 * 24 * time.Hour)
	assert.Empty(t, s.RecurrencePass(fc.Now()))

	fc.Advance(24 * time.Hour)
	assert.Len(t, s.RecurrencePass(fc.Now()), 1)
}

func TestRecurrencePass_MonthlyDueThirtyDaysOut(t *testing.T) {
	s, fc := newTestStore(t)
	addRecurringDone(t, s, "1", "pay rent", model.RecurMonthly)

	fc.Advance(30 * 24 * time.Hour)
	spawned := s.RecurrencePass(fc.Now())

	require.Len(t, spawned, 1)
	require.NotNil(t, spawned[0].DueDate)
	assert.Equal(t, fc.Now().AddDate(0, 0, 30), *spawned[0].DueDate)
}

func TestRecurrencePass_SuccessorJoinsSameProject(t *testing.T) {
	s, fc := newTestStore(t)
	addRecurringDone(t, s, "2", "invoice clients", model.RecurDaily)

	fc.Advance(25 * time.Hour)
	s.RecurrencePass(fc.Now())

	projects := s.Snapshot()
	assert.Len(t, projects[0].Tasks, 0)
	assert.Len(t, projects[1].Tasks, 2)
}
