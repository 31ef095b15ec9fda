package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medportal/models"
	"medportal/utils"

	"go.uber.org/zap"
)

const downloadURLTTL = 15 * time.Minute

func (s *DefaultDocumentService) List(ctx context.Context, doctorID string, filter models.DocumentFilter) (*models.DocumentPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	docs, total, err := s.Repo.List(ctx, doctorID, filter)
	if err != nil {
		return nil, fmt.Errorf("List: failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return &models.DocumentPage{
		Documents: docs,
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}, nil
}

func (s *DefaultDocumentService) Facets(ctx context.Context, doctorID string) ([]string, []string, error) {
	patients, err := s.Repo.DistinctPatients(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	types, err := s.Repo.DistinctTypes(ctx, doctorID)
	if err != nil {
		return nil, nil, err
	}
	return patients, types, nil
}

func (s *DefaultDocumentService) Upload(ctx context.Context, doctorID string, req UploadRequest) (*models.Document, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("document name is required")
	}
	if strings.TrimSpace(req.PatientName) == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if req.Type == "" {
		req.Type = "Outro"
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	publicID, err := s.Storage.UploadFile(ctx, req.LocalPath, utils.DocumentFolder)
	if err != nil {
		return nil, fmt.Errorf("Upload: storage upload failed: %w", err)
	}

	doc := &models.Document{
		DoctorID:    doctorID,
		PatientName: strings.TrimSpace(req.PatientName),
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		StorageID:   publicID,
		SizeBytes:   req.SizeBytes,
		Date:        req.Date,
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		// Best effort cleanup of the orphaned upload.
		if delErr := s.Storage.DeleteFile(ctx, publicID); delErr != nil {
			utils.GetLogger().Warn("Upload: failed to remove orphaned file", zap.Error(delErr))
		}
		return nil, fmt.Errorf("Upload: failed to store document metadata: %w", err)
	}
	return doc, nil
}

func (s *DefaultDocumentService) DownloadURL(ctx context.Context, doctorID, id string) (string, error) {
	doc, err := s.Repo.GetByID(ctx, doctorID, id)
	if err != nil {
		return "", err
	}
	return s.Storage.GetSecureDownloadURL(ctx, "raw", doc.StorageID, downloadURLTTL)
}

func (s *DefaultDocumentService) Delete(ctx context.Context, doctorID, id string) error {
	doc, err := s.Repo.GetByID(ctx, doctorID, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, doctorID, id); err != nil {
		return err
	}
	if err := s.Storage.DeleteFile(ctx, doc.StorageID); err != nil {
		utils.GetLogger().Warn("Delete: failed to remove stored file", zap.Error(err))
	}
	return nil
}
