package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medportal/models"

	"github.com/go-redis/redis/v8"
)

const DoctorSessionPrefix = "doctorSession:"

// DoctorSession holds the per-login working state of a doctor: the week
// being viewed and any drag/drop move awaiting confirmation.
type DoctorSession struct {
	DoctorID      string              `json:"doctorId"`
	Email         string              `json:"email"`
	Name          string              `json:"name,omitempty"`
	Specialty     string              `json:"specialty,omitempty"`
	LicenseNumber string              `json:"licenseNumber,omitempty"`
	WeekStart     string              `json:"weekStart,omitempty"`
	PendingMove   *models.PendingMove `json:"pendingMove,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// SaveDoctorSession saves the doctor session in Redis with a TTL.
func SaveDoctorSession(client *redis.Client, doctorID string, session DoctorSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal doctor session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, DoctorSessionPrefix+doctorID, data, 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to save doctor session: %w", err)
	}
	return nil
}

// GetDoctorSession retrieves the doctor session from Redis.
func GetDoctorSession(client *redis.Client, doctorID string) (*DoctorSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, DoctorSessionPrefix+doctorID).Result()
	if err != nil {
		return nil, err
	}
	var session DoctorSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal doctor session: %w", err)
	}
	return &session, nil
}

// DeleteDoctorSession removes a doctor session from Redis.
func DeleteDoctorSession(client *redis.Client, doctorID string) error {
	ctx := context.Background()
	return client.Del(ctx, DoctorSessionPrefix+doctorID).Err()
}
