package schedule

import (
	"medportal/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists per-doctor session state between requests.
type SessionStore interface {
	Load(doctorID string) (*utils.DoctorSession, error)
	Save(doctorID string, session utils.DoctorSession) error
	Clear(doctorID string) error
}

// RedisSessionStore is the production SessionStore.
type RedisSessionStore struct {
	Client *redis.Client
}

func (s *RedisSessionStore) Load(doctorID string) (*utils.DoctorSession, error) {
	return utils.GetDoctorSession(s.Client, doctorID)
}

func (s *RedisSessionStore) Save(doctorID string, session utils.DoctorSession) error {
	return utils.SaveDoctorSession(s.Client, doctorID, session)
}

func (s *RedisSessionStore) Clear(doctorID string) error {
	return utils.DeleteDoctorSession(s.Client, doctorID)
}
