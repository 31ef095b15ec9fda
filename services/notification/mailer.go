package notification

import (
	"context"

	"medportal/models"
	"medportal/utils"

	"go.uber.org/zap"
)

// LogMailer satisfies Mailer by logging the would-be email. Used everywhere
// a real SMTP transport is not wired.
type LogMailer struct{}

func (LogMailer) SendAbsenceNotice(ctx context.Context, appt models.Appointment, absence models.Absence) error {
	utils.GetLogger().Info("Absence notice email",
		zap.String("patient", appt.PatientName),
		zap.String("appointmentId", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("absenceType", absence.Type),
	)
	return nil
}
