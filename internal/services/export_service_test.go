package services

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/errors"
	"github.com/jerrytigerxu/go-projects/internal/logging"
	"github.com/jerrytigerxu/go-projects/internal/taskfile"
)

func setupExportService(t *testing.T, tasks []domain.Task) *ExportService {
	t.Helper()
	store := taskfile.NewStore(filepath.Join(t.TempDir(), "tasks.json"), logging.NewNop())
	require.NoError(t, store.Save(tasks))
	return NewExportService(store)
}

func TestExportService_Export(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)
	tasks := []domain.Task{
		domain.NewTask(1, "write, with commas", now),
		{ID: 2, Description: "quoted \"text\"", Status: domain.StatusDone, CreatedAt: now, UpdatedAt: now},
	}

	t.Run("should render CSV with header and one row per task", func(t *testing.T) {
		service := setupExportService(t, tasks)

		data, err := service.Export("csv")
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, []string{"id", "description", "status", "createdAt", "updatedAt"}, records[0])
		assert.Equal(t, "write, with commas", records[1][1])
		assert.Equal(t, "done", records[2][2])
	})

	t.Run("should accept format case-insensitively", func(t *testing.T) {
		service := setupExportService(t, tasks)
		_, err := service.Export("CSV")
		assert.NoError(t, err)
	})

	t.Run("should render a PDF document", func(t *testing.T) {
		service := setupExportService(t, tasks)

		data, err := service.Export("pdf")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("should return invalid input error for unknown format", func(t *testing.T) {
		service := setupExportService(t, tasks)

		_, err := service.Export("xml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})

	t.Run("should export header only for empty store", func(t *testing.T) {
		service := setupExportService(t, nil)

		data, err := service.Export("csv")
		require.NoError(t, err)
		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
