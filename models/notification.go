package models

import "time"

// Notification kinds shown on the notifications panel.
const (
	NotificationAppointmentScheduled   = "appointment_scheduled"
	NotificationAppointmentCancelled   = "appointment_cancelled"
	NotificationAppointmentRescheduled = "appointment_rescheduled"
	NotificationAbsenceRegistered      = "absence_registered"
	NotificationReminder               = "reminder"
)

type Notification struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctor_id" json:"doctorId"`
	Kind      string    `bson:"kind" json:"kind"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
