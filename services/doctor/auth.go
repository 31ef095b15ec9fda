package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medportal/models"
	"medportal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Register creates a new doctor account and signs it in.
func (s *DefaultDoctorService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := verifyEmail(email); err != nil {
		return nil, err
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	} else if err != nil && err != mongo.ErrNoDocuments {
		utils.GetLogger().Error("Register: failed to check existing account", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	doctor := &models.Doctor{
		Email:        email,
		PasswordHash: string(hash),
		Account: models.AccountData{
			Name:      strings.TrimSpace(req.Name),
			Surname:   strings.TrimSpace(req.Surname),
			Specialty: strings.TrimSpace(req.Specialty),
		},
		Profile: models.PublicProfile{
			WorkSchedule: defaultWorkSchedule(),
		},
	}
	if err := s.Repo.Create(ctx, doctor); err != nil {
		utils.GetLogger().Error("Register: failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, doctor)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultDoctorService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	doctor, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || doctor == nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.issueToken(ctx, doctor)
}

// issueToken generates a JWT, persists its hash, primes the auth cache and
// resets the doctor session.
func (s *DefaultDoctorService) issueToken(ctx context.Context, doctor *models.Doctor) (*AuthResponse, error) {
	token, err := utils.GenerateToken(doctor.ID, doctor.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(ctx, doctor.ID, tokenHash); err != nil {
		utils.GetLogger().Error("issueToken: failed to persist token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + doctor.ID
	if err := authCache.Set(ctx, cacheKey, tokenHash, time.Hour).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	session := utils.DoctorSession{
		DoctorID:      doctor.ID,
		Email:         doctor.Email,
		Name:          strings.TrimSpace(doctor.Account.Name + " " + doctor.Account.Surname),
		Specialty:     doctor.Account.Specialty,
		LicenseNumber: doctor.Account.LicenseNumber,
		CreatedAt:     time.Now(),
	}
	if err := utils.SaveDoctorSession(utils.GetSessionCacheClient(), doctor.ID, session); err != nil {
		utils.GetLogger().Warn("issueToken: failed to save doctor session", zap.Error(err))
	}

	return &AuthResponse{
		ID:    doctor.ID,
		Token: token,
		Email: doctor.Email,
		Name:  strings.TrimSpace(doctor.Account.Name + " " + doctor.Account.Surname),
	}, nil
}

// SignOut revokes the stored token hash and clears cache and session.
func (s *DefaultDoctorService) SignOut(ctx context.Context, doctorID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, doctorID, ""); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(ctx, utils.AuthCachePrefix+doctorID).Err(); err != nil {
		utils.GetLogger().Warn("SignOut: failed to clear auth cache", zap.Error(err))
	}
	if err := utils.DeleteDoctorSession(utils.GetSessionCacheClient(), doctorID); err != nil {
		utils.GetLogger().Warn("SignOut: failed to clear doctor session", zap.Error(err))
	}
	return nil
}

// Session loads the doctor's session context.
func (s *DefaultDoctorService) Session(ctx context.Context, doctorID string) (*utils.DoctorSession, error) {
	return utils.GetDoctorSession(utils.GetSessionCacheClient(), doctorID)
}
