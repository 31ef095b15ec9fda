package schedule

import (
	"testing"

	"medportal/models"
)

func appt(id, date, clock string) models.Appointment {
	return models.Appointment{ID: id, DoctorID: "doc-1", PatientName: "Paciente " + id, Date: date, Time: clock, Type: "Consulta de Rotina", Status: models.AppointmentPending}
}

func TestDetectConflictsMultiDay(t *testing.T) {
	appointments := []models.Appointment{
		appt("a", "2024-06-09", "10:00"), // day before
		appt("b", "2024-06-10", "09:00"), // first day
		appt("c", "2024-06-12", "15:30"), // middle
		appt("d", "2024-06-14", "17:00"), // last day
		appt("e", "2024-06-15", "08:00"), // day after
	}
	absence := models.Absence{Type: "Férias", StartDate: "2024-06-10", EndDate: "2024-06-14"}

	got := DetectConflicts(absence, appointments)
	if len(got) != 3 {
		t.Fatalf("expected 3 conflicts, got %d", len(got))
	}
	for i, want := range []string{"b", "c", "d"} {
		if got[i].ID != want {
			t.Errorf("conflict %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestDetectConflictsMultiDayIgnoresTimes(t *testing.T) {
	// A multi-day absence carrying times still matches on whole days.
	appointments := []models.Appointment{
		appt("early", "2024-06-11", "07:00"),
		appt("late", "2024-06-11", "19:00"),
	}
	absence := models.Absence{
		Type:      "Licença Médica",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-12",
		StartTime: "09:00",
		EndTime:   "12:00",
	}

	got := DetectConflicts(absence, appointments)
	if len(got) != 2 {
		t.Fatalf("expected times to be ignored on a multi-day absence, got %d conflicts", len(got))
	}
}

func TestDetectConflictsSingleDayTimeWindow(t *testing.T) {
	appointments := []models.Appointment{
		appt("before", "2024-06-10", "08:30"),
		appt("atStart", "2024-06-10", "09:00"),
		appt("inside", "2024-06-10", "10:15"),
		appt("atEnd", "2024-06-10", "12:00"),
		appt("after", "2024-06-10", "14:00"),
		appt("otherDay", "2024-06-11", "10:00"),
	}
	absence := models.Absence{
		Type:      "Compromisso Pessoal",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-10",
		StartTime: "09:00",
		EndTime:   "12:00",
	}

	got := DetectConflicts(absence, appointments)
	ids := make(map[string]bool, len(got))
	for _, a := range got {
		ids[a.ID] = true
	}

	// Start is inclusive, end is exclusive.
	if !ids["atStart"] {
		t.Error("expected appointment at the window start to conflict")
	}
	if ids["atEnd"] {
		t.Error("expected appointment at the window end not to conflict")
	}
	if !ids["inside"] {
		t.Error("expected appointment inside the window to conflict")
	}
	if ids["before"] || ids["after"] || ids["otherDay"] {
		t.Errorf("unexpected conflicts: %v", ids)
	}
}

func TestDetectConflictsSingleDayWithoutTimesMatchesWholeDay(t *testing.T) {
	appointments := []models.Appointment{
		appt("morning", "2024-06-10", "08:00"),
		appt("evening", "2024-06-10", "18:30"),
	}
	absence := models.Absence{Type: "Emergência", StartDate: "2024-06-10", EndDate: "2024-06-10"}

	if got := DetectConflicts(absence, appointments); len(got) != 2 {
		t.Fatalf("expected whole-day match, got %d conflicts", len(got))
	}
}

func TestDetectConflictsNoAppointments(t *testing.T) {
	absence := models.Absence{Type: "Férias", StartDate: "2024-06-10", EndDate: "2024-06-14"}
	if got := DetectConflicts(absence, nil); len(got) != 0 {
		t.Fatalf("expected no conflicts, got %d", len(got))
	}
}
