package schedule

import "medportal/models"

// DetectConflicts returns the appointments that fall inside the absence
// interval. Dates are compared at calendar-day granularity, inclusive on
// both ends. A single-day absence carrying both times narrows the match to
// [StartTime, EndTime) — start inclusive, end exclusive. Times on a
// multi-day absence are ignored.
func DetectConflicts(absence models.Absence, appointments []models.Appointment) []models.Appointment {
	singleDay := absence.StartDate == absence.EndDate
	timeBound := singleDay && absence.StartTime != "" && absence.EndTime != ""

	var conflicts []models.Appointment
	for _, appt := range appointments {
		if appt.Date < absence.StartDate || appt.Date > absence.EndDate {
			continue
		}
		if timeBound {
			if appt.Time < absence.StartTime || appt.Time >= absence.EndTime {
				continue
			}
		}
		conflicts = append(conflicts, appt)
	}
	return conflicts
}
