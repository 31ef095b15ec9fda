package doctor

import (
	"context"

	doctorRepo "medportal/database/repository/doctor"
	"medportal/models"
	"medportal/services/storage"
	"medportal/utils"
)

// DoctorService covers authentication, account management and the public
// profile of the signed-in doctor.
type DoctorService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	SignOut(ctx context.Context, doctorID string) error
	Session(ctx context.Context, doctorID string) (*utils.DoctorSession, error)

	GetAccount(ctx context.Context, doctorID string) (*models.Doctor, error)
	UpdateAccount(ctx context.Context, doctorID string, account models.AccountData) (*models.Doctor, error)
	UpdatePassword(ctx context.Context, doctorID, currentPassword, newPassword string) error

	GetProfile(ctx context.Context, doctorID string) (*models.PublicProfile, error)
	UpdateProfile(ctx context.Context, doctorID string, profile models.PublicProfile) (*models.PublicProfile, error)
	UpdatePhoto(ctx context.Context, doctorID, localPath string) (*models.PublicProfile, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo    doctorRepo.DoctorRepository
	Storage storage.StorageService
}

// RegisterRequest creates a new portal account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Specialty string `json:"specialty,omitempty"`
}

// AuthResponse contains the doctor's ID, token, and display details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
