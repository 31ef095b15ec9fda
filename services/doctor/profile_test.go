package doctor

import (
	"context"
	"testing"
	"time"

	"medportal/models"
	"medportal/utils"
)

type mockDoctorRepo struct {
	GetByIDFunc       func(ctx context.Context, id string) (*models.Doctor, error)
	UpdateProfileFunc func(ctx context.Context, id string, profile models.PublicProfile) error
}

func (m *mockDoctorRepo) Create(ctx context.Context, d *models.Doctor) error { return nil }

func (m *mockDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockDoctorRepo) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return nil, nil
}

func (m *mockDoctorRepo) UpdateAccount(ctx context.Context, id string, account models.AccountData) error {
	return nil
}

func (m *mockDoctorRepo) UpdateProfile(ctx context.Context, id string, profile models.PublicProfile) error {
	return m.UpdateProfileFunc(ctx, id, profile)
}

func (m *mockDoctorRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (m *mockDoctorRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	return nil
}

type mockStorage struct {
	UploadFileFunc func(ctx context.Context, localPath, folder string) (string, error)
	Deleted        []string
}

func (m *mockStorage) UploadFile(ctx context.Context, localPath, folder string) (string, error) {
	return m.UploadFileFunc(ctx, localPath, folder)
}

func (m *mockStorage) DeleteFile(ctx context.Context, publicID string) error {
	m.Deleted = append(m.Deleted, publicID)
	return nil
}

func (m *mockStorage) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

func (m *mockStorage) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	return "", nil
}

func TestUpdatePhoto(t *testing.T) {
	var savedProfile *models.PublicProfile
	repo := &mockDoctorRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Doctor, error) {
			return &models.Doctor{ID: id, Profile: models.PublicProfile{
				Biography:      "bio",
				PhotoStorageID: "medportal/profile/old-photo",
			}}, nil
		},
		UpdateProfileFunc: func(ctx context.Context, id string, profile models.PublicProfile) error {
			savedProfile = &profile
			return nil
		},
	}
	store := &mockStorage{
		UploadFileFunc: func(ctx context.Context, localPath, folder string) (string, error) {
			if folder != utils.ProfilePhotoFolder {
				t.Errorf("uploaded to %q, want %q", folder, utils.ProfilePhotoFolder)
			}
			return "medportal/profile/new-photo", nil
		},
	}
	svc := &DefaultDoctorService{Repo: repo, Storage: store}

	profile, err := svc.UpdatePhoto(context.Background(), "doc-1", "/tmp/photo.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if savedProfile == nil {
		t.Fatal("expected the profile to be persisted")
	}
	if profile.PhotoURL != "https://cdn.example.com/medportal/profile/new-photo" {
		t.Errorf("unexpected photo URL %q", profile.PhotoURL)
	}
	if profile.PhotoStorageID != "medportal/profile/new-photo" {
		t.Errorf("unexpected storage id %q", profile.PhotoStorageID)
	}
	if profile.Biography != "bio" {
		t.Error("photo update must keep the rest of the profile")
	}
	if len(store.Deleted) != 1 || store.Deleted[0] != "medportal/profile/old-photo" {
		t.Errorf("previous photo not removed: %v", store.Deleted)
	}
}

func TestUpdatePhotoFirstUploadDeletesNothing(t *testing.T) {
	repo := &mockDoctorRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Doctor, error) {
			return &models.Doctor{ID: id}, nil
		},
		UpdateProfileFunc: func(ctx context.Context, id string, profile models.PublicProfile) error {
			return nil
		},
	}
	store := &mockStorage{
		UploadFileFunc: func(ctx context.Context, localPath, folder string) (string, error) {
			return "medportal/profile/first-photo", nil
		},
	}
	svc := &DefaultDoctorService{Repo: repo, Storage: store}

	if _, err := svc.UpdatePhoto(context.Background(), "doc-1", "/tmp/photo.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.Deleted) != 0 {
		t.Errorf("no previous photo existed, deleted %v", store.Deleted)
	}
}
