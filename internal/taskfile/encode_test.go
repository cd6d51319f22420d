package taskfile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jerrytigerxu/go-projects/internal/domain"
	"github.com/jerrytigerxu/go-projects/internal/testutil"
)

func TestEncode(t *testing.T) {
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local)
	updated := time.Date(2025, 1, 2, 10, 30, 0, 0, time.Local)

	t.Run("should render an empty list as an empty array", func(t *testing.T) {
		assert.Equal(t, "[\n]\n", Encode(nil))
	})

	t.Run("should render the fixed layout with keys in order", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Description: "write report", Status: domain.StatusInProgress, CreatedAt: created, UpdatedAt: updated},
		}
		expected := "[\n" +
			" {\n" +
			"   \"id\": 1,\n" +
			"   \"description\": \"write report\",\n" +
			"   \"status\": \"in-progress\",\n" +
			"   \"createdAt\": \"2025-01-01 09:00:00\",\n" +
			"   \"updatedAt\": \"2025-01-02 10:30:00\"\n" +
			" }\n" +
			"]\n"
		assert.Equal(t, expected, Encode(tasks))
	})

	t.Run("should separate objects with a comma except after the last", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Description: "first", CreatedAt: created, UpdatedAt: created},
			{ID: 2, Description: "second", CreatedAt: created, UpdatedAt: created},
			{ID: 3, Description: "third", CreatedAt: created, UpdatedAt: created},
		}
		out := Encode(tasks)
		assert.Contains(t, out, " },\n {\n")
		assert.NotContains(t, out, " },\n]")
	})

	t.Run("should escape description text", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Description: "a \"b\"\nc\\d", CreatedAt: created, UpdatedAt: created},
		}
		out := Encode(tasks)
		assert.Contains(t, out, `"description": "a \"b\"\nc\\d",`)
	})

	t.Run("should match the golden file byte for byte", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: 1, Description: "write report", Status: domain.StatusInProgress, CreatedAt: created, UpdatedAt: updated},
			{ID: 2, Description: `say "hi" to C:\Users`, Status: domain.StatusDone, CreatedAt: created, UpdatedAt: updated},
		}
		testutil.GoldenString(t, "encode_two_tasks", Encode(tasks))
	})
}
