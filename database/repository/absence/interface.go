// File: database/repository/absence/interface.go
package absenceRepo

import (
	"context"

	"medportal/database"
	"medportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AbsenceRepository interface {
	Create(ctx context.Context, absence *models.Absence) error
	GetByDoctor(ctx context.Context, doctorID string) ([]models.Absence, error)
	GetByDoctorAndRange(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Absence, error)
	DeleteByID(ctx context.Context, doctorID, id string) error
}

type mongoAbsenceRepo struct {
	coll *mongo.Collection
}

// NewMongoAbsenceRepo constructs a new MongoDB AbsenceRepository.
func NewMongoAbsenceRepo() AbsenceRepository {
	return &mongoAbsenceRepo{
		coll: database.DB().Collection("absences"),
	}
}
