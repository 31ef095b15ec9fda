package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medportal/models"
	"medportal/utils"

	"go.uber.org/zap"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var (
	// ErrValidation wraps all request shape problems; the message carries
	// the specific field.
	ErrValidation = errors.New("validation failed")

	// ErrPastBooking rejects consultations scheduled before now.
	ErrPastBooking = errors.New("cannot book in the past")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func (s *DefaultAppointmentService) Create(ctx context.Context, doctorID string, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if len(strings.TrimSpace(req.PatientName)) < 2 {
		return nil, validationError("patient name must have at least 2 characters")
	}
	if req.Location == "" {
		return nil, validationError("location is required")
	}
	if !contains(models.AppointmentTypes, req.Type) {
		return nil, validationError("unknown consultation type")
	}
	when, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		return nil, validationError(err.Error())
	}
	if when.Before(time.Now()) {
		return nil, ErrPastBooking
	}

	appt := &models.Appointment{
		DoctorID:     doctorID,
		PatientName:  strings.TrimSpace(req.PatientName),
		Date:         req.Date,
		Time:         req.Time,
		HasInsurance: req.HasInsurance,
		Location:     req.Location,
		Type:         req.Type,
		Status:       models.AppointmentPending,
		Notes:        req.Notes,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("Create: failed to store appointment: %w", err)
	}

	msg := fmt.Sprintf("%s: %s em %s às %s", appt.Type, appt.PatientName, appt.Date, appt.Time)
	s.notify(ctx, doctorID, models.NotificationAppointmentScheduled, "Consulta agendada", msg)
	return appt, nil
}

func (s *DefaultAppointmentService) Get(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
	return s.Repo.GetByID(ctx, doctorID, id)
}

func (s *DefaultAppointmentService) ListRange(ctx context.Context, doctorID, fromDate, toDate, typeFilter string) ([]models.Appointment, error) {
	appts, err := s.Repo.GetByDoctorAndDateRange(ctx, doctorID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	if typeFilter == "" {
		return appts, nil
	}
	filtered := appts[:0]
	for _, appt := range appts {
		if appt.Type == typeFilter {
			filtered = append(filtered, appt)
		}
	}
	return filtered, nil
}

// Edit replaces the consultation's details, leaving date, time and status to
// their dedicated operations.
func (s *DefaultAppointmentService) Edit(ctx context.Context, doctorID, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	if len(strings.TrimSpace(req.PatientName)) < 2 {
		return nil, validationError("patient name must have at least 2 characters")
	}
	if req.Location == "" {
		return nil, validationError("location is required")
	}
	if !contains(models.AppointmentTypes, req.Type) {
		return nil, validationError("unknown consultation type")
	}

	appt, err := s.Repo.GetByID(ctx, doctorID, id)
	if err != nil {
		return nil, err
	}
	appt.PatientName = strings.TrimSpace(req.PatientName)
	appt.Type = req.Type
	appt.Location = req.Location
	appt.HasInsurance = req.HasInsurance
	appt.Notes = req.Notes

	if err := s.Repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, doctorID, id, status string) (*models.Appointment, error) {
	switch status {
	case models.AppointmentPending, models.AppointmentCompleted, models.AppointmentNotCompleted:
	default:
		return nil, validationError("unknown status")
	}
	if err := s.Repo.UpdateStatus(ctx, doctorID, id, status); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, doctorID, id)
}

func (s *DefaultAppointmentService) Reschedule(ctx context.Context, doctorID, id string, req models.RescheduleRequest) (*models.Appointment, error) {
	when, err := parseDateTime(req.NewDate, req.NewTime)
	if err != nil {
		return nil, validationError(err.Error())
	}
	if when.Before(time.Now()) {
		return nil, ErrPastBooking
	}
	if err := s.Repo.UpdateDateTime(ctx, doctorID, id, req.NewDate, req.NewTime); err != nil {
		return nil, err
	}
	appt, err := s.Repo.GetByID(ctx, doctorID, id)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Consulta de %s movida para %s às %s", appt.PatientName, appt.Date, appt.Time)
	s.notify(ctx, doctorID, models.NotificationAppointmentRescheduled, "Consulta reagendada", msg)
	return appt, nil
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, doctorID, id string, req models.CancelAppointmentRequest) error {
	reason := req.Reason
	if reason == "" || !contains(models.CancellationReasons, reason) {
		return validationError("a cancellation reason from the list is required")
	}
	if reason == "Outros" {
		if strings.TrimSpace(req.CustomReason) == "" {
			return validationError("a custom reason is required for Outros")
		}
		reason = strings.TrimSpace(req.CustomReason)
	}

	appt, err := s.Repo.GetByID(ctx, doctorID, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, doctorID, id); err != nil {
		return err
	}

	msg := fmt.Sprintf("Consulta de %s em %s às %s cancelada: %s", appt.PatientName, appt.Date, appt.Time, reason)
	s.notify(ctx, doctorID, models.NotificationAppointmentCancelled, "Consulta cancelada", msg)
	return nil
}

func (s *DefaultAppointmentService) notify(ctx context.Context, doctorID, kind, title, msg string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, doctorID, kind, title, msg); err != nil {
		utils.GetLogger().Warn("appointment: failed to record notification", zap.Error(err))
	}
}

func parseDateTime(date, clock string) (time.Time, error) {
	if date == "" || clock == "" {
		return time.Time{}, errors.New("date and time are required")
	}
	when, err := time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time: %s %s", date, clock)
	}
	return when, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
