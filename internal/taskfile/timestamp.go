package taskfile

import (
	"time"
)

// TimestampLayout is the on-disk timestamp pattern: second-resolution,
// zero-padded, 24-hour local time.
const TimestampLayout = "2006-01-02 15:04:05"

// Epoch is the sentinel value a timestamp field degrades to when its
// stored text cannot be parsed.
var Epoch = time.Unix(0, 0)

// FormatTimestamp renders a timestamp in the on-disk layout, in local time.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp in the on-disk layout as local time.
// Any failure, wrong shape or an invalid calendar value, returns the
// epoch sentinel and the parse error; the caller records a diagnostic
// and keeps the enclosing record.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return Epoch, err
	}
	return t, nil
}
