package taskfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "tasks.json"), logging.NewNop())
}

func TestStore_Load(t *testing.T) {
	t.Run("should return empty list when file does not exist", func(t *testing.T) {
		store := newTestStore(t)
		assert.Empty(t, store.Load())
	})

	t.Run("should return empty list for a malformed file", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, os.WriteFile(store.Path(), []byte("not a task file"), 0644))
		assert.Empty(t, store.Load())
	})

	t.Run("should load what a previous save wrote", func(t *testing.T) {
		store := newTestStore(t)
		now := time.Date(2025, 5, 6, 7, 8, 9, 0, time.Local)
		saved := []domain.Task{
			domain.NewTask(1, "first", now),
			domain.NewTask(2, "second", now),
		}
		require.NoError(t, store.Save(saved))

		loaded := store.Load()
		require.Len(t, loaded, 2)
		assert.Equal(t, saved[0].ID, loaded[0].ID)
		assert.Equal(t, saved[0].Description, loaded[0].Description)
		assert.True(t, loaded[0].CreatedAt.Equal(now))
	})

	t.Run("should keep well-formed records from a partially damaged file", func(t *testing.T) {
		store := newTestStore(t)
		content := `[
 {
   "id": "broken"
 },
 {
   "id": 2,
   "description": "survivor"
 }
]`
		require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0644))

		loaded := store.Load()
		require.Len(t, loaded, 1)
		assert.Equal(t, "survivor", loaded[0].Description)
	})
}

func TestStore_Save(t *testing.T) {
	t.Run("should overwrite previous content entirely", func(t *testing.T) {
		store := newTestStore(t)
		now := time.Date(2025, 5, 6, 7, 8, 9, 0, time.Local)
		require.NoError(t, store.Save([]domain.Task{
			domain.NewTask(1, "first", now),
			domain.NewTask(2, "second", now),
		}))
		require.NoError(t, store.Save([]domain.Task{
			domain.NewTask(3, "only", now),
		}))

		loaded := store.Load()
		require.Len(t, loaded, 1)
		assert.Equal(t, int64(3), loaded[0].ID)
	})

	t.Run("should leave existing file untouched when open fails", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "missing-dir", "tasks.json")
		store := NewStore(path, logging.NewNop())

		err := store.Save([]domain.Task{domain.NewTask(1, "task", time.Now())})
		assert.Error(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should write an empty array for an empty list", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Save(nil))

		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.Equal(t, "[\n]\n", string(data))
	})
}
