package schedule

import (
	"testing"

	"medportal/models"
)

func TestPositionFor(t *testing.T) {
	tests := []struct {
		clock string
		want  int
	}{
		{"08:00", 0},
		{"08:30", 60},
		{"09:00", 120},
		{"12:00", 480},
		{"18:00", 1200},
		{"18:30", 1260}, // no upper clamp
		{"08:15", 30},   // off-slot times keep their exact offset
		{"09:15", 150},
		{"10:40", 320},
		{"07:30", 0}, // before the origin clamps to 0
		{"00:00", 0},
		{"bogus", 0},
	}
	for _, tt := range tests {
		if got := PositionFor(tt.clock); got != tt.want {
			t.Errorf("PositionFor(%q) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestHeightFor(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{30, 60},
		{15, 30},
		{60, 120},
		{45, 90},
		{0, 0},
		{-10, 0},
	}
	for _, tt := range tests {
		if got := HeightFor(tt.minutes); got != tt.want {
			t.Errorf("HeightFor(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestWeekStartFor(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-06-10", "2024-06-10"}, // Monday maps to itself
		{"2024-06-12", "2024-06-10"}, // Wednesday
		{"2024-06-15", "2024-06-10"}, // Saturday
		{"2024-06-16", "2024-06-10"}, // Sunday belongs to the preceding Monday
		{"2024-06-17", "2024-06-17"}, // next Monday
	}
	for _, tt := range tests {
		got, err := WeekStartFor(tt.date)
		if err != nil {
			t.Fatalf("WeekStartFor(%q): %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("WeekStartFor(%q) = %s, want %s", tt.date, got, tt.want)
		}
	}

	if _, err := WeekStartFor("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestWeekDates(t *testing.T) {
	dates, err := WeekDates("2024-06-10")
	if err != nil {
		t.Fatal(err)
	}
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if dates[0] != "2024-06-10" || dates[6] != "2024-06-16" {
		t.Errorf("unexpected bounds: %s .. %s", dates[0], dates[6])
	}
}

func TestLunchBreakFor(t *testing.T) {
	full := &models.WorkDay{
		Weekday: "monday", Kind: models.WorkDayFull, Active: true,
		MorningStart: "09:00", MorningEnd: "13:00",
		AfternoonStart: "14:00", AfternoonEnd: "18:00",
		SlotMinutes: 30,
	}
	lb := lunchBreakFor(full)
	if lb == nil {
		t.Fatal("expected a lunch break on an active full day")
	}
	if lb.Start != "13:00" || lb.End != "14:00" {
		t.Errorf("unexpected window: %s-%s", lb.Start, lb.End)
	}
	if lb.OffsetPx != PositionFor("13:00") {
		t.Errorf("offset %d, want %d", lb.OffsetPx, PositionFor("13:00"))
	}
	if lb.HeightPx != 120 {
		t.Errorf("height %d, want 120", lb.HeightPx)
	}

	inactive := *full
	inactive.Active = false
	if lunchBreakFor(&inactive) != nil {
		t.Error("inactive day must not produce a lunch break")
	}

	morning := *full
	morning.Kind = models.WorkDayMorning
	if lunchBreakFor(&morning) != nil {
		t.Error("half day must not produce a lunch break")
	}

	if lunchBreakFor(nil) != nil {
		t.Error("nil day must not produce a lunch break")
	}
}
