package services

import (
	"github.com/jerrytigerxu/go-projects/internal/domain"
)

// TaskStore is the persistence boundary the task service depends on.
// Load never fails: absent or malformed files degrade to an empty list.
// Save rewrites the whole file from the given list.
type TaskStore interface {
	Load() []domain.Task
	Save(tasks []domain.Task) error
}
