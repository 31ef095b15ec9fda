package schedule

import (
	"strings"
	"time"
)

const dropTargetPrefix = "drop-"

// ParseDropTarget resolves a drop target id of the form
// "drop-<dayIndex>-<HH:MM>" against a week start date. Malformed targets
// return ok=false; callers treat that as a no-op rather than an error.
func ParseDropTarget(target, weekStart string) (date string, clock string, ok bool) {
	if !strings.HasPrefix(target, dropTargetPrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(target, dropTargetPrefix)
	parts := strings.SplitN(rest, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	if len(parts[0]) != 1 || parts[0][0] < '0' || parts[0][0] > '6' {
		return "", "", false
	}
	dayIndex := int(parts[0][0] - '0')

	clock = parts[1]
	if _, err := time.Parse(clockLayout, clock); err != nil {
		return "", "", false
	}

	start, err := time.Parse(dateLayout, weekStart)
	if err != nil {
		return "", "", false
	}
	date = start.AddDate(0, 0, dayIndex).Format(dateLayout)
	return date, clock, true
}
