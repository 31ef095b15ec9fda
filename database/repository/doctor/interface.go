// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"medportal/database"
	"medportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*models.Doctor, error)
	UpdateAccount(ctx context.Context, id string, account models.AccountData) error
	UpdateProfile(ctx context.Context, id string, profile models.PublicProfile) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateTokenHash(ctx context.Context, id string, tokenHash string) error
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
