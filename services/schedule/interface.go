package schedule

import (
	"context"

	absenceRepo "medportal/database/repository/absence"
	appointmentRepo "medportal/database/repository/appointment"
	doctorRepo "medportal/database/repository/doctor"
	"medportal/models"
	"medportal/services/notification"
)

// ScheduleService is the calendar engine: the weekly view, absence
// registration with cascading cancellation, and drag/drop rescheduling.
type ScheduleService interface {
	WeekView(ctx context.Context, doctorID, date string) (*models.WeekView, error)

	RegisterAbsence(ctx context.Context, doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error)
	ListAbsences(ctx context.Context, doctorID string) ([]models.Absence, error)
	DeleteAbsence(ctx context.Context, doctorID, id string) error

	// ProposeMove resolves a drop target for an appointment. A malformed
	// target or a drop on the appointment's own slot returns (nil, nil).
	ProposeMove(ctx context.Context, doctorID, appointmentID string, req models.MoveRequest) (*models.PendingMove, error)
	ConfirmMove(ctx context.Context, doctorID, appointmentID string) (*models.Appointment, error)
	CancelMove(ctx context.Context, doctorID, appointmentID string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Appointments appointmentRepo.AppointmentRepository
	Absences     absenceRepo.AbsenceRepository
	Doctors      doctorRepo.DoctorRepository
	Notifier     notification.NotificationService
	Mailer       notification.Mailer
	Sessions     SessionStore
}
