// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"medportal/database"
	"medportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, doctorID, id string) (*models.Appointment, error)
	GetByDoctorAndDateRange(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Appointment, error)
	GetByDate(ctx context.Context, date string) ([]models.Appointment, error)
	UpdateDateTime(ctx context.Context, doctorID, id, date, timeOfDay string) error
	UpdateStatus(ctx context.Context, doctorID, id, status string) error
	Update(ctx context.Context, appt *models.Appointment) error
	DeleteByID(ctx context.Context, doctorID, id string) error
	DeleteMany(ctx context.Context, doctorID string, ids []string) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
