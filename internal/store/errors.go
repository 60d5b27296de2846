package store

import "fmt"

// ValidationError aborts a mutation before any state change. Unknown
// project/task ids in update and delete paths are deliberately NOT errors;
// those paths are silent no-ops so stale references from the recurrence
// scheduler or a double-clicking UI cannot fail.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func errBlank(field string) error {
	return &ValidationError{Field: field, Reason: "must not be blank"}
}
