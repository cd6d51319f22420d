package taskfile

import (
	"fmt"
	"strings"

	"github.com/jerrytigerxu/go-projects/internal/domain"
)

// Encode renders the full ordered task list in the fixed textual layout:
// a top-level array, one object per task with keys in fixed order, the id
// as a bare integer and every other field quoted and escaped.
func Encode(tasks []domain.Task) string {
	var b strings.Builder
	b.WriteString("[\n")
	for i, t := range tasks {
		b.WriteString(" {\n")
		fmt.Fprintf(&b, "   \"id\": %d,\n", t.ID)
		fmt.Fprintf(&b, "   \"description\": \"%s\",\n", Escape(t.Description))
		fmt.Fprintf(&b, "   \"status\": \"%s\",\n", t.Status)
		fmt.Fprintf(&b, "   \"createdAt\": \"%s\",\n", FormatTimestamp(t.CreatedAt))
		fmt.Fprintf(&b, "   \"updatedAt\": \"%s\"\n", FormatTimestamp(t.UpdatedAt))
		b.WriteString(" }")
		if i < len(tasks)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("]\n")
	return b.String()
}
