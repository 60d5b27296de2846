package store

import "taskflow/internal/model"

// SeedProjects is the demo collection installed on first run or when the data
// file is unreadable.
func SeedProjects() []model.Project {
	return []model.Project{
		{ID: "1", Name: "Real Estate Dubai", Color: model.ColorBlue, Tasks: []model.Task{}},
		{ID: "2", Name: "Real Estate Germany", Color: model.ColorGreen, Tasks: []model.Task{}},
	}
}
