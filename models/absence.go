package models

import "time"

// AbsenceTypes lists the unavailability categories of the absence form.
var AbsenceTypes = []string{
	"Férias",
	"Licença Médica",
	"Congresso/Formação",
	"Compromisso Pessoal",
	"Emergência",
	"Outros",
}

// AbsenceTypeWithEmailNotice is the only absence type whose form exposes the
// patient email-notification option.
const AbsenceTypeWithEmailNotice = "Congresso/Formação"

// Absence is a doctor-declared unavailability interval. StartDate/EndDate are
// "2006-01-02"; StartTime/EndTime ("15:04") only bound the interval when the
// absence covers a single day.
type Absence struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctor_id" json:"doctorId"`
	Type      string    `bson:"type" json:"type"`
	StartDate string    `bson:"start_date" json:"startDate"`
	EndDate   string    `bson:"end_date" json:"endDate"`
	StartTime string    `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime   string    `bson:"end_time,omitempty" json:"endTime,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// RegisterAbsenceRequest is the payload of the absence form. When the
// proposed interval conflicts with existing appointments, the first call
// returns the conflict list; the client retries with Confirm set and a
// cancellation reason.
type RegisterAbsenceRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`

	Confirm            bool   `json:"confirm,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`
	CustomReason       string `json:"customReason,omitempty"`

	// Honored only for the Congresso/Formação type.
	NotifyPatients bool `json:"notifyPatients,omitempty"`
}

// AbsenceConflictResponse is returned (with HTTP 409) when an unconfirmed
// absence overlaps existing consultations.
type AbsenceConflictResponse struct {
	Message             string        `json:"message"`
	ConflictingCount    int           `json:"conflictingCount"`
	ConflictingBookings []Appointment `json:"conflictingAppointments"`
	CancellationReasons []string      `json:"cancellationReasons"`
}
