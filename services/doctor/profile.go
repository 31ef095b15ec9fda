package doctor

import (
	"context"
	"fmt"
	"strings"

	"medportal/models"
	"medportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultDoctorService) GetProfile(ctx context.Context, doctorID string) (*models.PublicProfile, error) {
	doctor, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return &doctor.Profile, nil
}

// UpdateProfile validates and replaces the public profile. List entries
// arriving without an ID get one assigned.
func (s *DefaultDoctorService) UpdateProfile(ctx context.Context, doctorID string, profile models.PublicProfile) (*models.PublicProfile, error) {
	if err := validateWorkSchedule(profile.WorkSchedule); err != nil {
		return nil, err
	}
	assignEntryIDs(&profile)

	if err := s.Repo.UpdateProfile(ctx, doctorID, profile); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, doctorID)
}

// UpdatePhoto uploads a new profile photo and stores its delivery URL on the
// public profile. The previous photo file, if any, is removed best-effort.
func (s *DefaultDoctorService) UpdatePhoto(ctx context.Context, doctorID, localPath string) (*models.PublicProfile, error) {
	doctor, err := s.Repo.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	publicID, err := s.Storage.UploadFile(ctx, localPath, utils.ProfilePhotoFolder)
	if err != nil {
		return nil, fmt.Errorf("UpdatePhoto: upload failed: %w", err)
	}
	url, err := s.Storage.GetDownloadURL(ctx, "image", publicID, 0)
	if err != nil {
		return nil, fmt.Errorf("UpdatePhoto: failed to resolve photo URL: %w", err)
	}

	profile := doctor.Profile
	oldPhotoID := profile.PhotoStorageID
	profile.PhotoURL = url
	profile.PhotoStorageID = publicID
	if err := s.Repo.UpdateProfile(ctx, doctorID, profile); err != nil {
		return nil, err
	}

	if oldPhotoID != "" {
		if err := s.Storage.DeleteFile(ctx, oldPhotoID); err != nil {
			utils.GetLogger().Warn("UpdatePhoto: failed to remove previous photo", zap.Error(err))
		}
	}
	return &profile, nil
}

func validateWorkSchedule(schedule []models.WorkDay) error {
	for i, day := range schedule {
		switch day.Kind {
		case models.WorkDayFull, models.WorkDayMorning, models.WorkDayAfternoon:
		default:
			return fmt.Errorf("work schedule entry %d has unknown kind %q", i, day.Kind)
		}
		if !validSlotDuration(day.SlotMinutes) {
			return fmt.Errorf("work schedule entry %d has invalid slot duration %d", i, day.SlotMinutes)
		}
		if strings.TrimSpace(day.Weekday) == "" {
			return fmt.Errorf("work schedule entry %d is missing a weekday", i)
		}
	}
	return nil
}

func validSlotDuration(minutes int) bool {
	for _, d := range models.SlotDurations {
		if minutes == d {
			return true
		}
	}
	return false
}

func assignEntryIDs(profile *models.PublicProfile) {
	for i := range profile.Education {
		if profile.Education[i].ID == "" {
			profile.Education[i].ID = uuid.New().String()
		}
	}
	for i := range profile.Experience {
		if profile.Experience[i].ID == "" {
			profile.Experience[i].ID = uuid.New().String()
		}
	}
	for i := range profile.Offices {
		if profile.Offices[i].ID == "" {
			profile.Offices[i].ID = uuid.New().String()
		}
	}
	for i := range profile.ConsultTypes {
		if profile.ConsultTypes[i].ID == "" {
			profile.ConsultTypes[i].ID = uuid.New().String()
		}
	}
	for i := range profile.FAQs {
		if profile.FAQs[i].ID == "" {
			profile.FAQs[i].ID = uuid.New().String()
		}
	}
	for i := range profile.WorkSchedule {
		if profile.WorkSchedule[i].ID == "" {
			profile.WorkSchedule[i].ID = uuid.New().String()
		}
		profile.WorkSchedule[i].Weekday = strings.ToLower(profile.WorkSchedule[i].Weekday)
	}
}
