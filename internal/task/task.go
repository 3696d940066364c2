// Package task defines the todo item model and field validation.
package task

import (
	"errors"
	"strings"
)

// ErrEmptyDescription is returned when a task description is empty or
// whitespace-only.
var ErrEmptyDescription = errors.New("task description is required")

// Task represents a single todo item.
type Task struct {
	ID          uint64 `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// New creates a Task with defaults applied (not yet completed).
func New(id uint64, description string) Task {
	return Task{ID: id, Description: description}
}

// TrimDescription removes leading and trailing whitespace from a description.
func TrimDescription(description string) string {
	return strings.TrimSpace(description)
}

// ValidateDescription checks that a description is non-empty after trimming.
func ValidateDescription(description string) error {
	if TrimDescription(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// NextID returns the id a newly created task should receive given the
// existing tasks: one greater than the highest id in use, 1 when empty.
func NextID(tasks []Task) uint64 {
	var max uint64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
