package notification

import (
	"context"
	"fmt"

	notificationRepo "medportal/database/repository/notification"
	"medportal/models"
)

// NotificationService records in-app notifications for a doctor.
type NotificationService interface {
	Notify(ctx context.Context, doctorID, kind, title, message string) error
	List(ctx context.Context, doctorID string, limit int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, doctorID string) (int64, error)
	MarkRead(ctx context.Context, doctorID, id string) error
	MarkAllRead(ctx context.Context, doctorID string) error
}

// Mailer delivers patient-facing email about schedule changes. The default
// implementation only logs; real delivery is a deployment concern.
type Mailer interface {
	SendAbsenceNotice(ctx context.Context, appt models.Appointment, absence models.Absence) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository) (*DefaultNotificationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultNotificationService{Repo: repo}, nil
}

func (s *DefaultNotificationService) Notify(ctx context.Context, doctorID, kind, title, message string) error {
	n := &models.Notification{
		DoctorID: doctorID,
		Kind:     kind,
		Title:    title,
		Message:  message,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("Notify: failed to store notification: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) List(ctx context.Context, doctorID string, limit int) ([]models.Notification, error) {
	return s.Repo.ListByDoctor(ctx, doctorID, limit)
}

func (s *DefaultNotificationService) UnreadCount(ctx context.Context, doctorID string) (int64, error) {
	return s.Repo.CountUnread(ctx, doctorID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, doctorID, id string) error {
	return s.Repo.MarkRead(ctx, doctorID, id)
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, doctorID string) error {
	return s.Repo.MarkAllRead(ctx, doctorID)
}
