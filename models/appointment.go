package models

import "time"

// Appointment statuses.
const (
	AppointmentPending      = "pending"
	AppointmentCompleted    = "completed"
	AppointmentNotCompleted = "not_completed"
)

// AppointmentTypes lists the consultation types the portal recognizes.
var AppointmentTypes = []string{
	"Primeira Consulta",
	"Consulta de Rotina",
	"Retorno",
	"Exame",
	"Urgência",
}

// CancellationReasons is the fixed set offered when cancelling a
// consultation. "Outros" requires a free-text detail.
var CancellationReasons = []string{
	"Emergência médica",
	"Doença do médico",
	"Compromisso urgente",
	"Problema técnico/equipamento",
	"Reagendamento solicitado pelo paciente",
	"Outros",
}

// Appointment represents a scheduled patient consultation.
// Date is "2006-01-02", Time is "15:04".
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	DoctorID     string    `bson:"doctor_id" json:"doctorId"`
	PatientName  string    `bson:"patient_name" json:"patientName"`
	Date         string    `bson:"date" json:"date"`
	Time         string    `bson:"time" json:"time"`
	HasInsurance bool      `bson:"has_insurance" json:"hasInsurance"`
	Location     string    `bson:"location" json:"location"`
	Documents    []string  `bson:"documents,omitempty" json:"documents"`
	Type         string    `bson:"type" json:"type"`
	Status       string    `bson:"status" json:"status"`
	Notes        string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// CreateAppointmentRequest is the payload for booking a new consultation.
type CreateAppointmentRequest struct {
	PatientName  string `json:"patientName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	HasInsurance bool   `json:"hasInsurance"`
	Notes        string `json:"notes"`
}

// UpdateAppointmentRequest edits a consultation's details. Date, time and
// status have their own endpoints and stay untouched.
type UpdateAppointmentRequest struct {
	PatientName  string `json:"patientName"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	HasInsurance bool   `json:"hasInsurance"`
	Notes        string `json:"notes"`
}

// RescheduleRequest moves an appointment to a new date/time slot.
type RescheduleRequest struct {
	NewDate string `json:"newDate"`
	NewTime string `json:"newTime"`
}

// CancelAppointmentRequest carries the mandatory cancellation reason.
type CancelAppointmentRequest struct {
	Reason       string `json:"reason"`
	CustomReason string `json:"customReason,omitempty"`
}
