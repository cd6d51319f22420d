package domain

import (
	"time"
)

// Status represents the lifecycle state of a task.
type Status int

const (
	StatusTodo Status = iota
	StatusInProgress
	StatusDone
)

// String returns the storage/display representation of the status.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "todo"
	case StatusInProgress:
		return "in-progress"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}

// ParseStatus converts a status string to a Status value.
// Unrecognized strings fall back to StatusTodo, matching the lenient
// behavior of the stored format.
func ParseStatus(s string) Status {
	switch s {
	case "in-progress":
		return StatusInProgress
	case "done":
		return StatusDone
	default:
		return StatusTodo
	}
}

// IsKnownStatus reports whether s names one of the three statuses.
func IsKnownStatus(s string) bool {
	switch s {
	case "todo", "in-progress", "done":
		return true
	}
	return false
}

// Task represents a single task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a new Task with the given ID and description, both
// timestamps set to now and status todo.
func NewTask(id int64, description string, now time.Time) Task {
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID >= 0 && t.Description != ""
}

// NextID returns the next available task ID for the given list: one more
// than the maximum existing ID, or 1 for an empty list.
func NextID(tasks []Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
