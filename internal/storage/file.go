// Package storage persists the project collection as a single JSON blob on
// disk.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"taskflow/internal/model"
)

// ErrCorrupt marks a data file that exists but does not parse. Callers fall
// back to seeding; the broken file is left in place for inspection.
var ErrCorrupt = errors.New("storage: data file is corrupt")

// FileRepo reads and writes one JSON file. Writes go through an atomic
// rename so a crash mid-write never leaves a half-written blob.
type FileRepo struct {
	path string
}

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Path() string { return r.path }

// Load reads the persisted collection. ok=false with a nil error means the
// file does not exist yet (first run).
func (r *FileRepo) Load() ([]model.Project, bool, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", r.path, err)
	}

	var projects []model.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, false, fmt.Errorf("%w: %s: %v", ErrCorrupt, r.path, err)
	}
	return projects, true, nil
}

// Save writes the full collection, creating parent directories as needed.
func (r *FileRepo) Save(projects []model.Project) error {
	raw, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := atomic.WriteFile(r.path, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}
