// File: database/repository/document/interface.go
package documentRepo

import (
	"context"

	"medportal/database"
	"medportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, doctorID, id string) (*models.Document, error)
	List(ctx context.Context, doctorID string, filter models.DocumentFilter) ([]models.Document, int64, error)
	DistinctPatients(ctx context.Context, doctorID string) ([]string, error)
	DistinctTypes(ctx context.Context, doctorID string) ([]string, error)
	DeleteByID(ctx context.Context, doctorID, id string) error
}

type mongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo constructs a new MongoDB DocumentRepository.
func NewMongoDocumentRepo() DocumentRepository {
	return &mongoDocumentRepo{
		coll: database.DB().Collection("documents"),
	}
}
