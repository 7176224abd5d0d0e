package sqlite

import (
	"fmt"
	"time"
)

// timeLayout is the fixed-width UTC format used in the date column.
// SQLite has no native datetime type; we store TEXT. The zero-padded
// fraction keeps lexicographic order identical to chronological order, so
// half-open range predicates work as plain string comparisons.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse time %q: %w", s, err)
	}
	return t, nil
}
