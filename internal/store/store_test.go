package store

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/clock"
	"taskflow/internal/model"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, *clock.FakeClock) {
	t.Helper()
	fc := clock.NewFakeClock(testNow)
	s := New(Options{
		Clock: fc,
		Pick:  func(n int) int { return 0 },
	})
	s.Load(SeedProjects())
	return s, fc
}

func mustAddTask(t *testing.T, s *Store, projectID, text string) model.Task {
	t.Helper()
	task, err := s.AddTask(projectID, text, nil, nil)
	require.NoError(t, err)
	return task
}

func TestCreateProject(t *testing.T) {
	s, _ := newTestStore(t)

	p, err := s.CreateProject("Side Hustle")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Side Hustle", p.Name)
	assert.Equal(t, model.ColorBlue, p.Color)
	assert.Empty(t, p.Tasks)
}

func TestCreateProject_BlankName(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateProject("   ")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestRenameProject_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	_, found, err := s.RenameProject("nope", "New Name")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, s.Snapshot(), 2)
}

func TestRecolorProject_RejectsOffPalette(t *testing.T) {
	s, _ := newTestStore(t)

	_, _, err := s.RecolorProject("1", "bg-teal-500")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "color", verr.Field)
}

func TestDeleteProject_RemovesTasksWithIt(t *testing.T) {
	s, _ := newTestStore(t)
	mustAddTask(t, s, "1", "call broker")

	s.DeleteProject("1")

	projects := s.Snapshot()
	require.Len(t, projects, 1)
	assert.Equal(t, "2", projects[0].ID)
}

func TestAddTask_Defaults(t *testing.T) {
	s, _ := newTestStore(t)

	task := mustAddTask(t, s, "1", "sign lease")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, model.StatusTodo, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, testNow, task.CreatedAt)
	assert.False(t, task.Archived)
	assert.NotNil(t, task.Dependencies)
	assert.Empty(t, task.Dependencies)
	assert.Nil(t, task.DueDate)
}

func TestAddTask_UnknownProject(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddTask("nope", "sign lease", nil, nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "projectId", verr.Field)
}

func TestUpdateTask_PatchMergesOnlyProvidedFields(t *testing.T) {
	s, _ := newTestStore(t)
	task := mustAddTask(t, s, "1", "sign lease")

	notes := "bring passport"
	updated, found, err := s.UpdateTask("1", task.ID, TaskPatch{Notes: &notes})

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "sign lease", updated.Text)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "bring passport", *updated.Notes)
}

func TestUpdateTask_EmptyStringClears(t *testing.T) {
	s, _ := newTestStore(t)
	task := mustAddTask(t, s, "1", "water plants")

	due := "2024-03-20"
	weekly := "weekly"
	day := 3
	_, _, err := s.UpdateTask("1", task.ID, TaskPatch{DueDate: &due, Recurring: &weekly, RecurringDay: &day})
	require.NoError(t, err)

	clear := ""
	updated, found, err := s.UpdateTask("1", task.ID, TaskPatch{DueDate: &clear, Recurring: &clear})
	require.NoError(t, err)
	require.True(t, found)

	assert.Nil(t, updated.DueDate)
	assert.Nil(t, updated.Recurring)
	assert.Nil(t, updated.RecurringDay)
}

func TestUpdateTask_BlankTextRejected(t *testing.T) {
	s, _ := newTestStore(t)
	task := mustAddTask(t, s, "1", "water plants")

	blank := "  "
	_, _, err := s.UpdateTask("1", task.ID, TaskPatch{Text: &blank})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "text", verr.Field)
}

func TestUpdateTask_UnknownTaskIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	text := "new"
	_, found, err := s.UpdateTask("1", "nope", TaskPatch{Text: &text})

	require.NoError(t, err)
	assert.False(t, found)
}

func TestToggleStatus_Cycles(t *testing.T) {
	s, _ := newTestStore(t)
	task := mustAddTask(t, s, "1", "sign lease")

	got, _ := s.ToggleStatus("1", task.ID)
	assert.Equal(t, model.StatusProgress, got.Status)
	got, _ = s.ToggleStatus("1", task.ID)
	assert.Equal(t, model.StatusDone, got.Status)
	got, _ = s.ToggleStatus("1", task.ID)
	assert.Equal(t, model.StatusTodo, got.Status)
}

func TestCyclePriority_Cycles(t *testing.T) {
	s, _ := newTestStore(t)
	task := mustAddTask(t, s, "1", "sign lease")

	got, _ := s.CyclePriority("1", task.ID)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	got, _ = s.CyclePriority("1", task.ID)
	assert.Equal(t, model.PriorityLow, got.Priority)
	got, _ = s.CyclePriority("1", task.ID)
	assert.Equal(t, model.PriorityMedium, got.Priority)
}

func TestReorderTask_MovesWithinProject(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAddTask(t, s, "1", "a")
	b := mustAddTask(t, s, "1", "b")
	c := mustAddTask(t, s, "1", "c")

	s.ReorderTask("1", a.ID, c.ID)

	tasks := s.Snapshot()[0].Tasks
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, taskIDs(tasks))
}

func TestReorderTask_CrossProjectIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAddTask(t, s, "1", "a")
	b := mustAddTask(t, s, "2", "b")

	before := s.Snapshot()
	s.ReorderTask("1", a.ID, b.ID)
	after := s.Snapshot()

	assert.Empty(t, cmp.Diff(before, after))
}

func TestReorderTask_SameTaskIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAddTask(t, s, "1", "a")
	mustAddTask(t, s, "1", "b")

	before := s.Snapshot()
	s.ReorderTask("1", a.ID, a.ID)

	assert.Empty(t, cmp.Diff(before, s.Snapshot()))
}

func TestDeleteTask(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAddTask(t, s, "1", "a")
	b := mustAddTask(t, s, "1", "b")

	s.DeleteTask("1", a.ID)

	assert.Equal(t, []string{b.ID}, taskIDs(s.Snapshot()[0].Tasks))
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)
	task := mustAddTask(t, s, "1", "a")

	snap := s.Snapshot()
	snap[0].Tasks[0].Text = "mutated"

	got, ok := s.peekTask("1", task.ID)
	require.True(t, ok)
	assert.Equal(t, "a", got.Text)
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func (s *Store) peekTask(projectID, taskID string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.peekTaskLocked(projectID, taskID)
}
