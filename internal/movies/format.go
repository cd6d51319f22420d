package movies

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jerrytigerxu/go-projects/internal/domain"
)

// Column widths for the listing table.
const (
	idWidth        = 10
	titleWidth     = 40
	dateWidth      = 15
	ratingWidth    = 8
	overviewIndent = 2
)

const overviewLabel = "Overview: "

// FormatTable renders movies as a fixed-width table with wrapped
// overview lines under each row.
func FormatTable(movies []domain.Movie) string {
	if len(movies) == 0 {
		return "No movies found for this category or an error occurred.\n"
	}

	totalWidth := idWidth + titleWidth + dateWidth + ratingWidth
	separator := strings.Repeat("-", totalWidth)

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s%-*s%-*s%-*s\n",
		idWidth, "ID",
		titleWidth, "Title",
		dateWidth, "Release Date",
		ratingWidth, "Rating")
	b.WriteString(separator)
	b.WriteByte('\n')

	for _, m := range movies {
		fmt.Fprintf(&b, "%-*d%-*s%-*s%-*.1f\n",
			idWidth, m.ID,
			titleWidth, truncateTitle(m.Title),
			dateWidth, m.ReleaseDate,
			ratingWidth, m.VoteAverage)
		writeOverview(&b, m.Overview, totalWidth)
		b.WriteString(separator)
		b.WriteByte('\n')
	}
	return b.String()
}

// truncateTitle shortens titles that would overflow their column,
// cutting on rune boundaries so multibyte titles stay valid.
func truncateTitle(title string) string {
	if utf8.RuneCountInString(title) > titleWidth-1 {
		runes := []rune(title)
		return string(runes[:titleWidth-4]) + "..."
	}
	return title
}

// writeOverview prints the overview indented under its row, wrapping at
// word boundaries. Missing overviews render as N/A.
func writeOverview(b *strings.Builder, overview string, totalWidth int) {
	b.WriteString(strings.Repeat(" ", overviewIndent))
	b.WriteString(overviewLabel)
	if overview == "" || overview == defaultOverview {
		b.WriteString("N/A\n")
		return
	}

	maxLineLength := totalWidth - overviewIndent
	continuationIndent := strings.Repeat(" ", overviewIndent+len(overviewLabel))

	start := 0
	firstLine := true
	for start < len(overview) {
		if !firstLine {
			b.WriteString(continuationIndent)
		}

		avail := maxLineLength
		if firstLine {
			avail -= len(overviewLabel)
		}
		length := len(overview) - start
		if length > avail {
			length = avail
			// Back up to the last space so words stay intact.
			if idx := strings.LastIndexByte(overview[start:start+length], ' '); idx > 0 {
				length = idx
			}
		}

		b.WriteString(overview[start : start+length])
		b.WriteByte('\n')
		start += length
		for start < len(overview) && overview[start] == ' ' {
			start++
		}
		firstLine = false
	}
}
