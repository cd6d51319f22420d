package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jerrytigerxu/go-projects/internal/errors"
	"github.com/jerrytigerxu/go-projects/internal/taskfile"
)

// ExportService renders the stored task list in exchange formats. The
// task file itself stays in the fixed text layout; exports are one-way.
type ExportService struct {
	store TaskStore
}

// NewExportService creates an export service over the given store.
func NewExportService(store TaskStore) *ExportService {
	return &ExportService{store: store}
}

// Export renders all tasks in the requested format ("csv" or "pdf").
func (s *ExportService) Export(format string) ([]byte, error) {
	tasks := s.store.Load()

	switch strings.ToLower(format) {
	case "csv":
		var b bytes.Buffer
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"id", "description", "status", "createdAt", "updatedAt"})
		for _, t := range tasks {
			_ = w.Write([]string{
				fmt.Sprint(t.ID),
				t.Description,
				t.Status.String(),
				taskfile.FormatTimestamp(t.CreatedAt),
				taskfile.FormatTimestamp(t.UpdatedAt),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, errors.WrapError(err, errors.ErrorTypeStorage, "render CSV export")
		}
		return b.Bytes(), nil

	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Task List")
		pdf.Ln(12)
		pdf.SetFont("Arial", "", 10)
		for _, t := range tasks {
			line := fmt.Sprintf("#%d [%s] %s (created %s, updated %s)",
				t.ID, t.Status, t.Description,
				taskfile.FormatTimestamp(t.CreatedAt), taskfile.FormatTimestamp(t.UpdatedAt))
			pdf.MultiCell(0, 6, line, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, errors.WrapError(err, errors.ErrorTypeStorage, "render PDF export")
		}
		return buf.Bytes(), nil

	default:
		return nil, errors.NewInvalidInputError("format", format, "must be one of: csv, pdf")
	}
}
