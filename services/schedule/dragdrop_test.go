package schedule

import "testing"

func TestParseDropTarget(t *testing.T) {
	const weekStart = "2024-06-10" // a Monday

	tests := []struct {
		name     string
		target   string
		wantDate string
		wantTime string
		wantOK   bool
	}{
		{"monday morning", "drop-0-09:00", "2024-06-10", "09:00", true},
		{"wednesday afternoon", "drop-2-14:30", "2024-06-12", "14:30", true},
		{"sunday", "drop-6-08:00", "2024-06-16", "08:00", true},
		{"missing prefix", "slot-0-09:00", "", "", false},
		{"day index out of range", "drop-7-09:00", "", "", false},
		{"negative day index", "drop--1-09:00", "", "", false},
		{"bad clock", "drop-1-25:99", "", "", false},
		{"no time part", "drop-3", "", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, clock, ok := ParseDropTarget(tt.target, weekStart)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if date != tt.wantDate || clock != tt.wantTime {
				t.Errorf("got (%s, %s), want (%s, %s)", date, clock, tt.wantDate, tt.wantTime)
			}
		})
	}
}

func TestParseDropTargetBadWeekStart(t *testing.T) {
	if _, _, ok := ParseDropTarget("drop-0-09:00", "garbage"); ok {
		t.Error("expected failure for an unparseable week start")
	}
}
