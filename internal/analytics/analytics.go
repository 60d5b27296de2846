// Package analytics derives read-only summary numbers from a project
// snapshot. Everything here recomputes from scratch on every call; there is
// no incremental state to drift out of sync with the store.
package analytics

import (
	"math"
	"sort"
	"time"

	"taskflow/internal/model"
)

type ProjectStat struct {
	Name           string  `json:"name"`
	TaskCount      int     `json:"taskCount"`
	CompletionRate float64 `json:"completionRate"`
}

type Summary struct {
	TotalTasks        int     `json:"totalTasks"`
	CompletedTasks    int     `json:"completedTasks"`
	InProgressTasks   int     `json:"inProgressTasks"`
	TodoTasks         int     `json:"todoTasks"`
	OverdueTasks      int     `json:"overdueTasks"`
	CompletedThisWeek int     `json:"completedThisWeek"`
	CompletionRate    float64 `json:"completionRate"`
	ActiveTasks       int     `json:"activeTasks"`

	ProjectStats []ProjectStat `json:"projectStats"`
}

// Summarize computes the dashboard numbers at now.
//
// Archived tasks are excluded from every count except CompletedThisWeek,
// which looks at recent throughput regardless of later archiving. The weekly
// window is keyed off CreatedAt: a recurring task completed and respawned
// counts via its successor's creation, which tracks "work done this week"
// closely enough.
func Summarize(projects []model.Project, now time.Time) Summary {
	sum := Summary{ProjectStats: []ProjectStat{}}
	weekAgo := now.AddDate(0, 0, -7)

	for _, p := range projects {
		stat := ProjectStat{Name: p.Name}
		done := 0

		for _, t := range p.Tasks {
			if t.Status == model.StatusDone && t.CreatedAt.After(weekAgo) {
				sum.CompletedThisWeek++
			}
			if t.Archived {
				continue
			}

			sum.TotalTasks++
			stat.TaskCount++
			switch t.Status {
			case model.StatusDone:
				sum.CompletedTasks++
				done++
			case model.StatusProgress:
				sum.InProgressTasks++
			default:
				sum.TodoTasks++
			}
			if t.Status != model.StatusDone && t.DueDate != nil && t.DueDate.Before(now) {
				sum.OverdueTasks++
			}
		}

		stat.CompletionRate = rate(done, stat.TaskCount)
		sum.ProjectStats = append(sum.ProjectStats, stat)
	}

	sum.CompletionRate = rate(sum.CompletedTasks, sum.TotalTasks)
	sum.ActiveTasks = sum.TotalTasks - sum.CompletedTasks

	// Busiest projects first; ties keep collection order.
	sort.SliceStable(sum.ProjectStats, func(i, j int) bool {
		return sum.ProjectStats[i].TaskCount > sum.ProjectStats[j].TaskCount
	})
	return sum
}

func rate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(done) / float64(total) * 100)
}
