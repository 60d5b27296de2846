// Package export renders the project collection as a markdown document.
package export

import (
	"fmt"
	"strings"
	"time"

	"taskflow/internal/model"
)

func statusGlyph(s model.Status) string {
	switch s {
	case model.StatusDone:
		return "✅"
	case model.StatusProgress:
		return "🔄"
	default:
		return "⭕"
	}
}

func priorityGlyph(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "🔴"
	case model.PriorityMedium:
		return "🟡"
	default:
		return "🟢"
	}
}

// Markdown renders every project as a section of active (non-archived)
// tasks. One line per task: status glyph, text, priority glyph, optional
// due date and recurrence tag, with notes indented beneath.
func Markdown(projects []model.Project, now time.Time) string {
	var b strings.Builder

	b.WriteString("# TaskFlow Export\n\n")
	fmt.Fprintf(&b, "Generated on: %s\n\n", now.Format("1/2/2006"))

	for _, p := range projects {
		fmt.Fprintf(&b, "## %s\n\n", p.Name)

		active := 0
		for _, t := range p.Tasks {
			if t.Archived {
				continue
			}
			active++

			fmt.Fprintf(&b, "- %s %s %s", statusGlyph(t.Status), t.Text, priorityGlyph(t.Priority))
			if t.DueDate != nil {
				fmt.Fprintf(&b, " (Due: %s)", t.DueDate.Format("Jan 2"))
			}
			if t.Recurring != nil {
				fmt.Fprintf(&b, " [%s]", *t.Recurring)
			}
			b.WriteString("\n")
			if t.Notes != nil {
				fmt.Fprintf(&b, "  *Note: %s*\n", *t.Notes)
			}
		}

		if active == 0 {
			b.WriteString("*No active tasks*\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
