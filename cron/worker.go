package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	appointmentRepo "medportal/database/repository/appointment"
	"medportal/models"
	"medportal/services/notification"

	"github.com/robfig/cron/v3"
)

// reminderSpec fires every evening so doctors see tomorrow's consultations
// before leaving.
const reminderSpec = "0 18 * * *"

// InitReminderWorker schedules the daily next-day reminder job.
func InitReminderWorker(appts appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc(reminderSpec, func() {
		if err := runReminderPass(appts, notifSvc); err != nil {
			log.Printf("[ReminderWorker] reminder pass failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[ReminderWorker] failed to schedule reminder job: %v", err)
	}

	log.Println("[ReminderWorker] starting scheduler...")
	c.Start()
	return c
}

// runReminderPass creates one reminder notification per next-day
// consultation.
func runReminderPass(appts appointmentRepo.AppointmentRepository, notifSvc notification.NotificationService) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	upcoming, err := appts.GetByDate(ctx, tomorrow)
	if err != nil {
		return fmt.Errorf("failed to fetch appointments for %s: %w", tomorrow, err)
	}

	for _, appt := range upcoming {
		msg := fmt.Sprintf("Amanhã às %s: %s (%s)", appt.Time, appt.PatientName, appt.Type)
		if err := notifSvc.Notify(ctx, appt.DoctorID, models.NotificationReminder, "Lembrete de consulta", msg); err != nil {
			log.Printf("[ReminderWorker] failed to record reminder for %s: %v", appt.ID, err)
		}
	}

	log.Printf("[ReminderWorker] reminder pass complete: %d appointments for %s", len(upcoming), tomorrow)
	return nil
}
