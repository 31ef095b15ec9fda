package doctor

import (
	"context"
	"fmt"

	"medportal/models"

	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultDoctorService) GetAccount(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, doctorID)
}

// UpdateAccount replaces the account data. The email is not part of
// AccountData and cannot be changed here.
func (s *DefaultDoctorService) UpdateAccount(ctx context.Context, doctorID string, account models.AccountData) (*models.Doctor, error) {
	if account.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := s.Repo.UpdateAccount(ctx, doctorID, account); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, doctorID)
}

// UpdatePassword changes the password after checking the current one.
func (s *DefaultDoctorService) UpdatePassword(ctx context.Context, doctorID, currentPassword, newPassword string) error {
	doctor, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil || doctor == nil {
		return fmt.Errorf("account not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password update failed, please try again")
	}
	return s.Repo.UpdatePassword(ctx, doctorID, string(hash))
}
