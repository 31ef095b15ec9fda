package document

import (
	"context"

	documentRepo "medportal/database/repository/document"
	"medportal/models"
	"medportal/services/storage"
)

// DocumentService manages clinical documents: filtered listings, uploads to
// object storage, signed download URLs and deletion.
type DocumentService interface {
	List(ctx context.Context, doctorID string, filter models.DocumentFilter) (*models.DocumentPage, error)
	Facets(ctx context.Context, doctorID string) (patients []string, types []string, err error)
	Upload(ctx context.Context, doctorID string, req UploadRequest) (*models.Document, error)
	DownloadURL(ctx context.Context, doctorID, id string) (string, error)
	Delete(ctx context.Context, doctorID, id string) error
}

// UploadRequest describes a file already spooled to a local path.
type UploadRequest struct {
	LocalPath   string
	Name        string
	Type        string
	PatientName string
	Date        string
	SizeBytes   int64
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Repo    documentRepo.DocumentRepository
	Storage storage.StorageService
}
