package appointment

import (
	"context"

	appointmentRepo "medportal/database/repository/appointment"
	"medportal/models"
	"medportal/services/notification"
)

// AppointmentService manages a doctor's consultations.
type AppointmentService interface {
	Create(ctx context.Context, doctorID string, req models.CreateAppointmentRequest) (*models.Appointment, error)
	Get(ctx context.Context, doctorID, id string) (*models.Appointment, error)
	ListRange(ctx context.Context, doctorID, fromDate, toDate, typeFilter string) ([]models.Appointment, error)
	Edit(ctx context.Context, doctorID, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, doctorID, id, status string) (*models.Appointment, error)
	Reschedule(ctx context.Context, doctorID, id string, req models.RescheduleRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, doctorID, id string, req models.CancelAppointmentRequest) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Notifier notification.NotificationService
}
