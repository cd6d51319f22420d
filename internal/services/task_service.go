package services

import (
	"fmt"
	"time"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/errors"
	"github.com/jerrytigerxu/go-projects/internal/validation"
)

// TaskService implements the task CRUD operations on top of a TaskStore.
// Each operation loads the full list once, mutates it in memory, and
// saves it once if anything changed; the service holds no task state
// between operations.
type TaskService struct {
	store     TaskStore
	validator *validation.TaskValidator
	now       func() time.Time
}

// NewTaskService creates a task service over the given store.
func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{
		store:     store,
		validator: validation.NewTaskValidator(),
		now:       time.Now,
	}
}

// NewTaskServiceWithValidator creates a task service with a configured validator.
func NewTaskServiceWithValidator(store TaskStore, validator *validation.TaskValidator) *TaskService {
	return &TaskService{
		store:     store,
		validator: validator,
		now:       time.Now,
	}
}

// Add appends a new task with the next available ID, status todo, and
// both timestamps set to now.
func (s *TaskService) Add(description string) (domain.Task, error) {
	if err := s.validator.ValidateDescription(description); err != nil {
		return domain.Task{}, err
	}

	tasks := s.store.Load()
	task := domain.NewTask(domain.NextID(tasks), description, s.now())
	tasks = append(tasks, task)
	if err := s.store.Save(tasks); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// UpdateDescription replaces the description of an existing task and
// refreshes its updated timestamp.
func (s *TaskService) UpdateDescription(id int64, description string) (domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return domain.Task{}, err
	}
	if err := s.validator.ValidateDescription(description); err != nil {
		return domain.Task{}, err
	}

	tasks := s.store.Load()
	i := indexByID(tasks, id)
	if i < 0 {
		return domain.Task{}, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	tasks[i].Description = description
	tasks[i].UpdatedAt = s.now()
	if err := s.store.Save(tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[i], nil
}

// Delete removes a task by ID.
func (s *TaskService) Delete(id int64) error {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return err
	}

	tasks := s.store.Load()
	i := indexByID(tasks, id)
	if i < 0 {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	tasks = append(tasks[:i], tasks[i+1:]...)
	return s.store.Save(tasks)
}

// MarkStatus sets the status of an existing task and refreshes its
// updated timestamp.
func (s *TaskService) MarkStatus(id int64, status domain.Status) (domain.Task, error) {
	if err := s.validator.ValidateTaskID(id); err != nil {
		return domain.Task{}, err
	}

	tasks := s.store.Load()
	i := indexByID(tasks, id)
	if i < 0 {
		return domain.Task{}, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	tasks[i].Status = status
	tasks[i].UpdatedAt = s.now()
	if err := s.store.Save(tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[i], nil
}

// List returns tasks in file order, optionally filtered by status name
// (empty filter means all).
func (s *TaskService) List(statusFilter string) ([]domain.Task, error) {
	if err := s.validator.ValidateStatusFilter(statusFilter); err != nil {
		return nil, err
	}

	tasks := s.store.Load()
	if statusFilter == "" {
		return tasks, nil
	}

	want := domain.ParseStatus(statusFilter)
	var filtered []domain.Task
	for _, t := range tasks {
		if t.Status == want {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Count returns the total number of stored tasks.
func (s *TaskService) Count() int {
	return len(s.store.Load())
}

func indexByID(tasks []domain.Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
