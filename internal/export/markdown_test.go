package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskflow/internal/model"
)

var now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestMarkdown_Header(t *testing.T) {
	doc := Markdown(nil, now)

	assert.True(t, strings.HasPrefix(doc, "# TaskFlow Export\n\n"))
	assert.Contains(t, doc, "Generated on: 3/15/2024\n")
}

func TestMarkdown_TaskLine(t *testing.T) {
	due := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	projects := []model.Project{{
		ID:   "1",
		Name: "Real Estate Dubai",
		Tasks: []model.Task{{
			ID:       "t1",
			Text:     "sign lease",
			Status:   model.StatusTodo,
			Priority: model.PriorityHigh,
			DueDate:  &due,
		}},
	}}

	doc := Markdown(projects, now)

	assert.Contains(t, doc, "## Real Estate Dubai\n\n")
	assert.Contains(t, doc, "- ⭕ sign lease 🔴 (Due: Mar 20)\n")
}

func TestMarkdown_GlyphsPerStatusAndPriority(t *testing.T) {
	projects := []model.Project{{
		ID:   "1",
		Name: "A",
		Tasks: []model.Task{
			{ID: "a", Text: "done low", Status: model.StatusDone, Priority: model.PriorityLow},
			{ID: "b", Text: "progress medium", Status: model.StatusProgress, Priority: model.PriorityMedium},
		},
	}}

	doc := Markdown(projects, now)

	assert.Contains(t, doc, "- ✅ done low 🟢\n")
	assert.Contains(t, doc, "- 🔄 progress medium 🟡\n")
}

func TestMarkdown_RecurrenceTagAndNotes(t *testing.T) {
	projects := []model.Project{{
		ID:   "1",
		Name: "A",
		Tasks: []model.Task{{
			ID:        "a",
			Text:      "water plants",
			Status:    model.StatusTodo,
			Priority:  model.PriorityMedium,
			Recurring: ptr(model.RecurDaily),
			Notes:     ptr("use filtered water"),
		}},
	}}

	doc := Markdown(projects, now)

	assert.Contains(t, doc, "- ⭕ water plants 🟡 [daily]\n  *Note: use filtered water*\n")
}

func TestMarkdown_ArchivedTasksHidden(t *testing.T) {
	projects := []model.Project{{
		ID:   "1",
		Name: "A",
		Tasks: []model.Task{{
			ID:       "a",
			Text:     "hidden",
			Status:   model.StatusTodo,
			Priority: model.PriorityMedium,
			Archived: true,
		}},
	}}

	doc := Markdown(projects, now)

	assert.NotContains(t, doc, "hidden")
	assert.Contains(t, doc, "*No active tasks*\n")
}

func TestMarkdown_EmptyProjectSection(t *testing.T) {
	projects := []model.Project{{ID: "1", Name: "Empty"}}

	doc := Markdown(projects, now)

	assert.Contains(t, doc, "## Empty\n\n*No active tasks*\n")
}
