package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"medportal/models"
	"medportal/services/schedule"

	"github.com/gin-gonic/gin"
)

type stubScheduleService struct {
	WeekViewFunc        func(ctx context.Context, doctorID, date string) (*models.WeekView, error)
	RegisterAbsenceFunc func(ctx context.Context, doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error)
	ListAbsencesFunc    func(ctx context.Context, doctorID string) ([]models.Absence, error)
	DeleteAbsenceFunc   func(ctx context.Context, doctorID, id string) error
	ProposeMoveFunc     func(ctx context.Context, doctorID, appointmentID string, req models.MoveRequest) (*models.PendingMove, error)
	ConfirmMoveFunc     func(ctx context.Context, doctorID, appointmentID string) (*models.Appointment, error)
	CancelMoveFunc      func(ctx context.Context, doctorID, appointmentID string) error
}

func (s *stubScheduleService) WeekView(ctx context.Context, doctorID, date string) (*models.WeekView, error) {
	return s.WeekViewFunc(ctx, doctorID, date)
}

func (s *stubScheduleService) RegisterAbsence(ctx context.Context, doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error) {
	return s.RegisterAbsenceFunc(ctx, doctorID, req)
}

func (s *stubScheduleService) ListAbsences(ctx context.Context, doctorID string) ([]models.Absence, error) {
	return s.ListAbsencesFunc(ctx, doctorID)
}

func (s *stubScheduleService) DeleteAbsence(ctx context.Context, doctorID, id string) error {
	return s.DeleteAbsenceFunc(ctx, doctorID, id)
}

func (s *stubScheduleService) ProposeMove(ctx context.Context, doctorID, appointmentID string, req models.MoveRequest) (*models.PendingMove, error) {
	return s.ProposeMoveFunc(ctx, doctorID, appointmentID, req)
}

func (s *stubScheduleService) ConfirmMove(ctx context.Context, doctorID, appointmentID string) (*models.Appointment, error) {
	return s.ConfirmMoveFunc(ctx, doctorID, appointmentID)
}

func (s *stubScheduleService) CancelMove(ctx context.Context, doctorID, appointmentID string) error {
	return s.CancelMoveFunc(ctx, doctorID, appointmentID)
}

func scheduleRouter(svc schedule.ScheduleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &ScheduleHandler{Service: svc}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("doctorID", "doc-1")
		c.Next()
	})
	r.POST("/api/absences", h.RegisterAbsenceHandler)
	r.POST("/api/appointments/:id/move", h.ProposeMoveHandler)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAbsenceHandlerConflict(t *testing.T) {
	conflicts := []models.Appointment{
		{ID: "a1", PatientName: "Maria Santos", Date: "2024-06-11", Time: "09:00"},
		{ID: "a2", PatientName: "João Costa", Date: "2024-06-13", Time: "15:00"},
	}
	r := scheduleRouter(&stubScheduleService{
		RegisterAbsenceFunc: func(ctx context.Context, doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error) {
			return nil, &schedule.ConflictError{Conflicts: conflicts}
		},
	})

	w := postJSON(t, r, "/api/absences", models.RegisterAbsenceRequest{
		Type: "Férias", StartDate: "2024-06-10", EndDate: "2024-06-14",
	})

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.AbsenceConflictResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ConflictingCount != 2 || len(resp.ConflictingBookings) != 2 {
		t.Errorf("expected 2 conflicts in payload, got %+v", resp)
	}
	if len(resp.CancellationReasons) != len(models.CancellationReasons) {
		t.Errorf("conflict payload must carry the cancellation reasons, got %v", resp.CancellationReasons)
	}
	if resp.Message == "" {
		t.Error("conflict payload must carry a message")
	}
}

func TestRegisterAbsenceHandlerValidation(t *testing.T) {
	r := scheduleRouter(&stubScheduleService{
		RegisterAbsenceFunc: func(ctx context.Context, doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error) {
			return nil, schedule.ErrInvalidAbsenceType
		},
	})

	w := postJSON(t, r, "/api/absences", models.RegisterAbsenceRequest{
		Type: "Sabático", StartDate: "2024-06-10", EndDate: "2024-06-14",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterAbsenceHandlerCreated(t *testing.T) {
	r := scheduleRouter(&stubScheduleService{
		RegisterAbsenceFunc: func(ctx context.Context, doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error) {
			return &models.Absence{DoctorID: doctorID, Type: req.Type, StartDate: req.StartDate, EndDate: req.EndDate}, nil
		},
	})

	w := postJSON(t, r, "/api/absences", models.RegisterAbsenceRequest{
		Type: "Férias", StartDate: "2024-06-10", EndDate: "2024-06-14",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProposeMoveHandlerNoOp(t *testing.T) {
	r := scheduleRouter(&stubScheduleService{
		ProposeMoveFunc: func(ctx context.Context, doctorID, appointmentID string, req models.MoveRequest) (*models.PendingMove, error) {
			return nil, nil
		},
	})

	w := postJSON(t, r, "/api/appointments/a1/move", models.MoveRequest{
		Target: "not-a-target", WeekStart: "2024-06-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if moved, _ := resp["moved"].(bool); moved {
		t.Errorf("expected moved=false, got %v", resp)
	}
}

func TestProposeMoveHandlerPending(t *testing.T) {
	r := scheduleRouter(&stubScheduleService{
		ProposeMoveFunc: func(ctx context.Context, doctorID, appointmentID string, req models.MoveRequest) (*models.PendingMove, error) {
			return &models.PendingMove{
				AppointmentID: appointmentID,
				DoctorID:      doctorID,
				FromDate:      "2024-06-10",
				FromTime:      "09:00",
				ToDate:        "2024-06-12",
				ToTime:        "14:30",
				State:         models.MoveStateDropped,
			}, nil
		},
	})

	w := postJSON(t, r, "/api/appointments/a1/move", models.MoveRequest{
		Target: "drop-2-14:30", WeekStart: "2024-06-10",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Moved       bool                `json:"moved"`
		PendingMove *models.PendingMove `json:"pendingMove"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Moved || resp.PendingMove == nil || resp.PendingMove.ToDate != "2024-06-12" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
