package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/errors"
	"github.com/jerrytigerxu/go-projects/internal/logging"
	"github.com/jerrytigerxu/go-projects/internal/taskfile"
	"github.com/jerrytigerxu/go-projects/internal/validation"
)

func setupTaskService(t *testing.T) *TaskService {
	t.Helper()
	store := taskfile.NewStore(filepath.Join(t.TempDir(), "tasks.json"), logging.NewNop())
	return NewTaskService(store)
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errors.ErrorTypeNotFound))
}

func TestTaskService_Add(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:        "should add task with valid description",
			description: "Buy groceries",
		},
		{
			name:        "should add task with quotes and newlines in description",
			description: "say \"hi\"\nthen leave",
		},
		{
			name:        "should return validation error for empty description",
			description: "",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, validation.IsValidationError(err))
			},
		},
		{
			name:        "should return validation error for whitespace-only description",
			description: "   ",
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, validation.IsValidationError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setupTaskService(t)

			task, err := service.Add(tt.description)

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Zero(t, service.Count())
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), task.ID)
				assert.Equal(t, tt.description, task.Description)
				assert.Equal(t, domain.StatusTodo, task.Status)
				assert.Equal(t, 1, service.Count())
			}
		})
	}

	t.Run("should assign max plus one after deletions", func(t *testing.T) {
		service := setupTaskService(t)
		_, err := service.Add("first")
		require.NoError(t, err)
		second, err := service.Add("second")
		require.NoError(t, err)
		require.NoError(t, service.Delete(1))

		third, err := service.Add("third")
		require.NoError(t, err)
		assert.Equal(t, second.ID+1, third.ID)
	})
}

func TestTaskService_UpdateDescription(t *testing.T) {
	t.Run("should update description and refresh updated timestamp", func(t *testing.T) {
		service := setupTaskService(t)
		created, err := service.Add("before")
		require.NoError(t, err)

		service.now = func() time.Time { return created.CreatedAt.Add(time.Hour) }
		updated, err := service.UpdateDescription(created.ID, "after")
		require.NoError(t, err)

		assert.Equal(t, "after", updated.Description)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("should return not found error for missing task", func(t *testing.T) {
		service := setupTaskService(t)
		_, err := service.UpdateDescription(999, "anything")
		assertNotFound(t, err)
	})

	t.Run("should return validation error for non-positive id", func(t *testing.T) {
		service := setupTaskService(t)
		_, err := service.UpdateDescription(0, "anything")
		assert.True(t, validation.IsValidationError(err))
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Run("should delete existing task and preserve order of the rest", func(t *testing.T) {
		service := setupTaskService(t)
		for _, d := range []string{"a", "b", "c"} {
			_, err := service.Add(d)
			require.NoError(t, err)
		}

		require.NoError(t, service.Delete(2))

		remaining, err := service.List("")
		require.NoError(t, err)
		require.Len(t, remaining, 2)
		assert.Equal(t, "a", remaining[0].Description)
		assert.Equal(t, "c", remaining[1].Description)
	})

	t.Run("should return not found error for missing task", func(t *testing.T) {
		service := setupTaskService(t)
		assertNotFound(t, service.Delete(42))
	})
}

func TestTaskService_MarkStatus(t *testing.T) {
	t.Run("should mark task done", func(t *testing.T) {
		service := setupTaskService(t)
		created, err := service.Add("task")
		require.NoError(t, err)

		marked, err := service.MarkStatus(created.ID, domain.StatusDone)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDone, marked.Status)
	})

	t.Run("should persist the status change", func(t *testing.T) {
		service := setupTaskService(t)
		created, err := service.Add("task")
		require.NoError(t, err)
		_, err = service.MarkStatus(created.ID, domain.StatusInProgress)
		require.NoError(t, err)

		listed, err := service.List("in-progress")
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, created.ID, listed[0].ID)
	})

	t.Run("should return not found error for missing task", func(t *testing.T) {
		service := setupTaskService(t)
		_, err := service.MarkStatus(42, domain.StatusDone)
		assertNotFound(t, err)
	})
}

func TestTaskService_List(t *testing.T) {
	t.Run("should return all tasks in file order for empty filter", func(t *testing.T) {
		service := setupTaskService(t)
		for _, d := range []string{"a", "b", "c"} {
			_, err := service.Add(d)
			require.NoError(t, err)
		}

		tasks, err := service.List("")
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "a", tasks[0].Description)
		assert.Equal(t, "c", tasks[2].Description)
	})

	t.Run("should filter by status", func(t *testing.T) {
		service := setupTaskService(t)
		first, err := service.Add("a")
		require.NoError(t, err)
		_, err = service.Add("b")
		require.NoError(t, err)
		_, err = service.MarkStatus(first.ID, domain.StatusDone)
		require.NoError(t, err)

		done, err := service.List("done")
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, first.ID, done[0].ID)

		todo, err := service.List("todo")
		require.NoError(t, err)
		require.Len(t, todo, 1)
	})

	t.Run("should return validation error for unknown status filter", func(t *testing.T) {
		service := setupTaskService(t)
		_, err := service.List("archived")
		assert.True(t, validation.IsValidationError(err))
	})

	t.Run("should return empty list for empty store", func(t *testing.T) {
		service := setupTaskService(t)
		tasks, err := service.List("")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}
