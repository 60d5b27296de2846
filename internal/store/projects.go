package store

import (
	"strings"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

// CreateProject appends a new empty project with a pseudo-randomly picked
// palette color.
func (s *Store) CreateProject(name string) (model.Project, error) {
	if strings.TrimSpace(name) == "" {
		return model.Project{}, errBlank("name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Project{
		ID:    uuid.NewString(),
		Name:  name,
		Color: model.Palette[s.pick(len(model.Palette))],
		Tasks: []model.Task{},
	}
	s.projects = append(s.projects, p)
	s.saveLocked()
	return p.Clone(), nil
}

// DeleteProject removes the project and every task it owns. Unknown id is a
// no-op.
func (s *Store) DeleteProject(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == projectID {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			s.saveLocked()
			return
		}
	}
}

// RenameProject updates the display name. Unknown id is a no-op.
func (s *Store) RenameProject(projectID, name string) (model.Project, bool, error) {
	if strings.TrimSpace(name) == "" {
		return model.Project{}, false, errBlank("name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProjectLocked(projectID)
	if p == nil {
		return model.Project{}, false, nil
	}
	p.Name = name
	s.saveLocked()
	return p.Clone(), true, nil
}

// RecolorProject updates the color tag. Unknown id is a no-op.
func (s *Store) RecolorProject(projectID string, color model.Color) (model.Project, bool, error) {
	if !color.Valid() {
		return model.Project{}, false, &ValidationError{Field: "color", Reason: "not in palette"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProjectLocked(projectID)
	if p == nil {
		return model.Project{}, false, nil
	}
	p.Color = color
	s.saveLocked()
	return p.Clone(), true, nil
}
