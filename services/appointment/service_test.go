package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"medportal/models"
)

type mockRepo struct {
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

func (m *mockRepo) Create(ctx context.Context, appt *models.Appointment) error {
	return m.CreateFunc(ctx, appt)
}

func (m *mockRepo) GetByID(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
	return m.GetByIDFunc(ctx, doctorID, id)
}

func (m *mockRepo) GetByDoctorAndDateRange(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Appointment, error) {
	return m.GetByDoctorAndDateRangeFunc(ctx, doctorID, fromDate, toDate)
}

func (m *mockRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return m.GetByDateFunc(ctx, date)
}

func (m *mockRepo) UpdateDateTime(ctx context.Context, doctorID, id, date, timeOfDay string) error {
	return m.UpdateDateTimeFunc(ctx, doctorID, id, date, timeOfDay)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, doctorID, id, status string) error {
	return m.UpdateStatusFunc(ctx, doctorID, id, status)
}

func (m *mockRepo) Update(ctx context.Context, appt *models.Appointment) error {
	return m.UpdateFunc(ctx, appt)
}

func (m *mockRepo) DeleteByID(ctx context.Context, doctorID, id string) error {
	return m.DeleteByIDFunc(ctx, doctorID, id)
}

func (m *mockRepo) DeleteMany(ctx context.Context, doctorID string, ids []string) (int64, error) {
	return m.DeleteManyFunc(ctx, doctorID, ids)
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validCreate() models.CreateAppointmentRequest {
	return models.CreateAppointmentRequest{
		PatientName: "Maria Santos",
		Date:        futureDate(),
		Time:        "10:30",
		Location:    "Consultório 2",
		Type:        "Consulta de Rotina",
	}
}

func TestCreateValidation(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		CreateFunc: func(ctx context.Context, appt *models.Appointment) error {
			t.Fatal("invalid request must not be stored")
			return nil
		},
	}}

	tests := []struct {
		name   string
		mutate func(*models.CreateAppointmentRequest)
		want   error
	}{
		{"short name", func(r *models.CreateAppointmentRequest) { r.PatientName = "M" }, ErrValidation},
		{"blank name", func(r *models.CreateAppointmentRequest) { r.PatientName = "   " }, ErrValidation},
		{"missing location", func(r *models.CreateAppointmentRequest) { r.Location = "" }, ErrValidation},
		{"unknown type", func(r *models.CreateAppointmentRequest) { r.Type = "Cirurgia" }, ErrValidation},
		{"missing time", func(r *models.CreateAppointmentRequest) { r.Time = "" }, ErrValidation},
		{"bad date", func(r *models.CreateAppointmentRequest) { r.Date = "10/06/2024" }, ErrValidation},
		{"past date", func(r *models.CreateAppointmentRequest) { r.Date = "2020-01-15" }, ErrPastBooking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)
			if _, err := svc.Create(context.Background(), "doc-1", req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateStoresPendingAppointment(t *testing.T) {
	var stored *models.Appointment
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		CreateFunc: func(ctx context.Context, appt *models.Appointment) error {
			stored = appt
			return nil
		},
	}}

	req := validCreate()
	req.PatientName = "  Maria Santos  "
	got, err := svc.Create(context.Background(), "doc-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || got != stored {
		t.Fatal("expected the appointment to be stored")
	}
	if stored.PatientName != "Maria Santos" {
		t.Errorf("patient name not trimmed: %q", stored.PatientName)
	}
	if stored.Status != models.AppointmentPending {
		t.Errorf("new appointments must be pending, got %q", stored.Status)
	}
	if stored.DoctorID != "doc-1" {
		t.Errorf("unexpected doctor id %q", stored.DoctorID)
	}
}

func TestListRangeTypeFilter(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		GetByDoctorAndDateRangeFunc: func(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: "a1", Type: "Consulta de Rotina"},
				{ID: "a2", Type: "Exame"},
				{ID: "a3", Type: "Consulta de Rotina"},
			}, nil
		},
	}}

	all, err := svc.ListRange(context.Background(), "doc-1", "2024-06-10", "2024-06-14", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 without a filter, got %d", len(all))
	}

	routine, err := svc.ListRange(context.Background(), "doc-1", "2024-06-10", "2024-06-14", "Consulta de Rotina")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routine) != 2 || routine[0].ID != "a1" || routine[1].ID != "a3" {
		t.Errorf("unexpected filtered result: %+v", routine)
	}
}

func TestEditReplacesDetails(t *testing.T) {
	var replaced *models.Appointment
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		GetByIDFunc: func(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
			return &models.Appointment{
				ID: id, DoctorID: doctorID, PatientName: "Maria Santos",
				Date: "2024-06-12", Time: "10:30", Location: "Consultório 2",
				Type: "Consulta de Rotina", Status: models.AppointmentPending,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, appt *models.Appointment) error {
			replaced = appt
			return nil
		},
	}}

	got, err := svc.Edit(context.Background(), "doc-1", "a1", models.UpdateAppointmentRequest{
		PatientName: "  Maria Santos Silva  ",
		Type:        "Retorno",
		Location:    "Consultório 1",
		Notes:       "trazer exames",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced == nil || got != replaced {
		t.Fatal("expected the edit to be persisted")
	}
	if replaced.PatientName != "Maria Santos Silva" || replaced.Type != "Retorno" || replaced.Notes != "trazer exames" {
		t.Errorf("details not applied: %+v", replaced)
	}
	// Date, time and status belong to their own endpoints.
	if replaced.Date != "2024-06-12" || replaced.Time != "10:30" || replaced.Status != models.AppointmentPending {
		t.Errorf("edit must not touch date/time/status: %+v", replaced)
	}
}

func TestEditValidation(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		GetByIDFunc: func(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
			t.Fatal("invalid edit must not reach the repository")
			return nil, nil
		},
	}}

	tests := []struct {
		name string
		req  models.UpdateAppointmentRequest
	}{
		{"short name", models.UpdateAppointmentRequest{PatientName: "M", Type: "Retorno", Location: "Consultório 1"}},
		{"missing location", models.UpdateAppointmentRequest{PatientName: "Maria Santos", Type: "Retorno"}},
		{"unknown type", models.UpdateAppointmentRequest{PatientName: "Maria Santos", Type: "Cirurgia", Location: "Consultório 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Edit(context.Background(), "doc-1", "a1", tt.req); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		UpdateStatusFunc: func(ctx context.Context, doctorID, id, status string) error {
			t.Fatal("unknown status must not reach the repository")
			return nil
		},
	}}
	if _, err := svc.UpdateStatus(context.Background(), "doc-1", "a1", "done"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestCancelReasonRules(t *testing.T) {
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		GetByIDFunc: func(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
			t.Fatal("invalid reason must not reach the repository")
			return nil, nil
		},
	}}

	tests := []struct {
		name string
		req  models.CancelAppointmentRequest
	}{
		{"empty reason", models.CancelAppointmentRequest{}},
		{"reason not in list", models.CancelAppointmentRequest{Reason: "não quero"}},
		{"Outros without detail", models.CancelAppointmentRequest{Reason: "Outros"}},
		{"Outros with blank detail", models.CancelAppointmentRequest{Reason: "Outros", CustomReason: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Cancel(context.Background(), "doc-1", "a1", tt.req); !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCancelDeletesAppointment(t *testing.T) {
	var deleted string
	svc := &DefaultAppointmentService{Repo: &mockRepo{
		GetByIDFunc: func(ctx context.Context, doctorID, id string) (*models.Appointment, error) {
			return &models.Appointment{ID: id, PatientName: "Maria Santos", Date: "2024-06-12", Time: "10:30"}, nil
		},
		DeleteByIDFunc: func(ctx context.Context, doctorID, id string) error {
			deleted = id
			return nil
		},
	}}

	err := svc.Cancel(context.Background(), "doc-1", "a1", models.CancelAppointmentRequest{
		Reason: "Reagendamento solicitado pelo paciente",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "a1" {
		t.Errorf("expected a1 deleted, got %q", deleted)
	}
}
