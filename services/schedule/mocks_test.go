package schedule

import (
	"context"

	"medportal/models"
	"medportal/utils"
)

type MockAppointmentRepo struct {
	CreateFunc                  func(ctx context.Context, appt *models.Appointment) error
	GetByIDFunc                 func(ctx context.Context, doctorID, id string) (*models.Appointment, error)
	GetByDoctorAndDateRangeFunc func(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Appointment, error)
	GetByDateFunc               func(ctx context.Context, date string) ([]models.Appointment, error)
	UpdateDateTimeFunc          func(ctx context.Context, doctorID, id, date, timeOfDay string) error
	UpdateStatusFunc            func(ctx context.Context, doctorID, id, status string) error
	UpdateFunc                  func(ctx context.Context, appt *models.Appointment) error
	DeleteByIDFunc              func(ctx context.Context, doctorID, id string) error
	DeleteManyFunc              func(ctx context.Context, doctorID string, ids []string) (int64, error)
}

func (m *MockAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	return m.CreateFunc(ctx, appt)
}

func (m *MockAppointmentRepo) GetByID(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
	return m.GetByIDFunc(ctx, doctorID, id)
}

func (m *MockAppointmentRepo) GetByDoctorAndDateRange(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Appointment, error) {
	return m.GetByDoctorAndDateRangeFunc(ctx, doctorID, fromDate, toDate)
}

func (m *MockAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, date)
	}
	return nil, nil
}

func (m *MockAppointmentRepo) UpdateDateTime(ctx context.Context, doctorID, id, date, timeOfDay string) error {
	return m.UpdateDateTimeFunc(ctx, doctorID, id, date, timeOfDay)
}

func (m *MockAppointmentRepo) UpdateStatus(ctx context.Context, doctorID, id, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, doctorID, id, status)
	}
	return nil
}

func (m *MockAppointmentRepo) Update(ctx context.Context, appt *models.Appointment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, appt)
	}
	return nil
}

func (m *MockAppointmentRepo) DeleteByID(ctx context.Context, doctorID, id string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, doctorID, id)
	}
	return nil
}

func (m *MockAppointmentRepo) DeleteMany(ctx context.Context, doctorID string, ids []string) (int64, error) {
	return m.DeleteManyFunc(ctx, doctorID, ids)
}

type MockAbsenceRepo struct {
	CreateFunc              func(ctx context.Context, absence *models.Absence) error
	GetByDoctorFunc         func(ctx context.Context, doctorID string) ([]models.Absence, error)
	GetByDoctorAndRangeFunc func(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Absence, error)
	DeleteByIDFunc          func(ctx context.Context, doctorID, id string) error
}

func (m *MockAbsenceRepo) Create(ctx context.Context, absence *models.Absence) error {
	return m.CreateFunc(ctx, absence)
}

func (m *MockAbsenceRepo) GetByDoctor(ctx context.Context, doctorID string) ([]models.Absence, error) {
	if m.GetByDoctorFunc != nil {
		return m.GetByDoctorFunc(ctx, doctorID)
	}
	return nil, nil
}

func (m *MockAbsenceRepo) GetByDoctorAndRange(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Absence, error) {
	if m.GetByDoctorAndRangeFunc != nil {
		return m.GetByDoctorAndRangeFunc(ctx, doctorID, fromDate, toDate)
	}
	return nil, nil
}

func (m *MockAbsenceRepo) DeleteByID(ctx context.Context, doctorID, id string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, doctorID, id)
	}
	return nil
}

type MockDoctorRepo struct {
	GetByIDFunc func(ctx context.Context, id string) (*models.Doctor, error)
}

func (m *MockDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error { return nil }

func (m *MockDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &models.Doctor{ID: id}, nil
}

func (m *MockDoctorRepo) GetByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return nil, nil
}

func (m *MockDoctorRepo) UpdateAccount(ctx context.Context, id string, account models.AccountData) error {
	return nil
}

func (m *MockDoctorRepo) UpdateProfile(ctx context.Context, id string, profile models.PublicProfile) error {
	return nil
}

func (m *MockDoctorRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (m *MockDoctorRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	return nil
}

// recordedNotification captures Notify calls in order.
type recordedNotification struct {
	DoctorID string
	Kind     string
	Title    string
	Message  string
}

type MockNotifier struct {
	Notifications []recordedNotification
}

func (m *MockNotifier) Notify(ctx context.Context, doctorID, kind, title, message string) error {
	m.Notifications = append(m.Notifications, recordedNotification{doctorID, kind, title, message})
	return nil
}

func (m *MockNotifier) List(ctx context.Context, doctorID string, limit int) ([]models.Notification, error) {
	return nil, nil
}

func (m *MockNotifier) UnreadCount(ctx context.Context, doctorID string) (int64, error) {
	return 0, nil
}

func (m *MockNotifier) MarkRead(ctx context.Context, doctorID, id string) error { return nil }

func (m *MockNotifier) MarkAllRead(ctx context.Context, doctorID string) error { return nil }

type MockMailer struct {
	Sent []models.Appointment
}

func (m *MockMailer) SendAbsenceNotice(ctx context.Context, appt models.Appointment, absence models.Absence) error {
	m.Sent = append(m.Sent, appt)
	return nil
}

// MemSessionStore is an in-memory SessionStore.
type MemSessionStore struct {
	Sessions map[string]*utils.DoctorSession
}

func NewMemSessionStore() *MemSessionStore {
	return &MemSessionStore{Sessions: make(map[string]*utils.DoctorSession)}
}

func (m *MemSessionStore) Load(doctorID string) (*utils.DoctorSession, error) {
	s, ok := m.Sessions[doctorID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *MemSessionStore) Save(doctorID string, session utils.DoctorSession) error {
	cp := session
	m.Sessions[doctorID] = &cp
	return nil
}

func (m *MemSessionStore) Clear(doctorID string) error {
	delete(m.Sessions, doctorID)
	return nil
}
