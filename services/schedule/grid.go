package schedule

import (
	"fmt"
	"time"

	"medportal/models"
)

const (
	// The grid starts at 08:00 and renders 60 pixels per 30-minute slot.
	gridOriginMinutes = 8 * 60
	pixelsPerSlot     = 60
	minutesPerSlot    = 30

	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(clock string) (int, error) {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// PositionFor returns the vertical pixel offset of a time on the week grid.
// Times before the grid origin clamp to 0; there is no upper clamp, late
// entries simply render past the visible rows.
func PositionFor(clock string) int {
	minutes, err := parseClock(clock)
	if err != nil {
		return 0
	}
	offset := (minutes - gridOriginMinutes) * pixelsPerSlot / minutesPerSlot
	if offset < 0 {
		return 0
	}
	return offset
}

// HeightFor returns the pixel height of a block lasting the given minutes.
func HeightFor(minutes int) int {
	if minutes <= 0 {
		return 0
	}
	return minutes * pixelsPerSlot / minutesPerSlot
}

// WeekStartFor returns the Monday of the week containing date.
func WeekStartFor(date string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7
	}
	return t.AddDate(0, 0, 1-offset).Format(dateLayout), nil
}

// WeekDates returns the seven dates starting at weekStart.
func WeekDates(weekStart string) ([]string, error) {
	t, err := time.Parse(dateLayout, weekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", weekStart, err)
	}
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = t.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates, nil
}

// lunchBreakFor derives the midday gap of an active full work day. Days that
// are inactive, half days, or missing either boundary have no lunch block.
func lunchBreakFor(day *models.WorkDay) *models.LunchBreakWindow {
	if day == nil || !day.Active || day.Kind != models.WorkDayFull {
		return nil
	}
	if day.MorningEnd == "" || day.AfternoonStart == "" {
		return nil
	}
	start, err := parseClock(day.MorningEnd)
	if err != nil {
		return nil
	}
	end, err := parseClock(day.AfternoonStart)
	if err != nil || end <= start {
		return nil
	}
	return &models.LunchBreakWindow{
		Start:    day.MorningEnd,
		End:      day.AfternoonStart,
		OffsetPx: PositionFor(day.MorningEnd),
		HeightPx: HeightFor(end - start),
	}
}
