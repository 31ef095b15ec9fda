package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medportal/models"
	"medportal/utils"

	"go.uber.org/zap"
)

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WeekView assembles the Monday-started week containing date: appointments
// with their grid positions, overlapping absences, and lunch-break blocks
// derived from the doctor's work schedule.
func (s *DefaultScheduleService) WeekView(ctx context.Context, doctorID, date string) (*models.WeekView, error) {
	weekStart, err := WeekStartFor(date)
	if err != nil {
		return nil, err
	}
	dates, err := WeekDates(weekStart)
	if err != nil {
		return nil, err
	}
	weekEnd := dates[len(dates)-1]

	appointments, err := s.Appointments.GetByDoctorAndDateRange(ctx, doctorID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("WeekView: failed to fetch appointments: %w", err)
	}
	absences, err := s.Absences.GetByDoctorAndRange(ctx, doctorID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("WeekView: failed to fetch absences: %w", err)
	}

	workDays := map[string]*models.WorkDay{}
	if doctor, err := s.Doctors.GetByID(ctx, doctorID); err == nil && doctor != nil {
		for i := range doctor.Profile.WorkSchedule {
			day := &doctor.Profile.WorkSchedule[i]
			workDays[strings.ToLower(day.Weekday)] = day
		}
	}

	view := &models.WeekView{WeekStart: weekStart, Days: make([]models.WeekDay, len(dates))}
	for i, dayDate := range dates {
		t, _ := time.Parse(dateLayout, dayDate)
		key := weekdayKeys[t.Weekday()]
		workDay := workDays[key]

		slotMinutes := minutesPerSlot
		if workDay != nil && workDay.SlotMinutes > 0 {
			slotMinutes = workDay.SlotMinutes
		}

		day := models.WeekDay{
			Date:         dayDate,
			Weekday:      key,
			Appointments: []models.PlacedBooking{},
			Absences:     []models.Absence{},
			LunchBreak:   lunchBreakFor(workDay),
			Working:      workDay != nil && workDay.Active,
		}
		for _, appt := range appointments {
			if appt.Date != dayDate {
				continue
			}
			day.Appointments = append(day.Appointments, models.PlacedBooking{
				Appointment: appt,
				OffsetPx:    PositionFor(appt.Time),
				HeightPx:    HeightFor(slotMinutes),
			})
		}
		for _, absence := range absences {
			if absence.StartDate <= dayDate && dayDate <= absence.EndDate {
				day.Absences = append(day.Absences, absence)
			}
		}
		view.Days[i] = day
	}
	return view, nil
}

// RegisterAbsence validates and stores an unavailability interval. When the
// interval overlaps existing consultations and the request is unconfirmed it
// returns a ConflictError and mutates nothing. A confirmed request must carry
// a cancellation reason; the still-conflicting consultations are cancelled in
// one batch, each with its own notification, before the absence is stored.
func (s *DefaultScheduleService) RegisterAbsence(ctx context.Context, doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error) {
	absence, err := validateAbsence(doctorID, req)
	if err != nil {
		return nil, err
	}

	inRange, err := s.Appointments.GetByDoctorAndDateRange(ctx, doctorID, absence.StartDate, absence.EndDate)
	if err != nil {
		return nil, fmt.Errorf("RegisterAbsence: failed to fetch appointments: %w", err)
	}

	// Conflicts are recomputed here even on the confirmed pass, so a stale
	// confirmation only cancels consultations that still overlap.
	conflicts := DetectConflicts(*absence, inRange)

	if len(conflicts) > 0 {
		if !req.Confirm {
			return nil, &ConflictError{Conflicts: conflicts}
		}
		reason, err := resolveReason(req.CancellationReason, req.CustomReason)
		if err != nil {
			return nil, err
		}
		if err := s.cancelConflicting(ctx, doctorID, conflicts, reason, *absence, req.NotifyPatients); err != nil {
			return nil, err
		}
	}

	if err := s.Absences.Create(ctx, absence); err != nil {
		return nil, fmt.Errorf("RegisterAbsence: failed to store absence: %w", err)
	}

	msg := fmt.Sprintf("%s de %s a %s", absence.Type, absence.StartDate, absence.EndDate)
	if err := s.Notifier.Notify(ctx, doctorID, models.NotificationAbsenceRegistered, "Ausência registada", msg); err != nil {
		utils.GetLogger().Warn("RegisterAbsence: failed to record notification", zap.Error(err))
	}
	return absence, nil
}

func (s *DefaultScheduleService) cancelConflicting(ctx context.Context, doctorID string, conflicts []models.Appointment, reason string, absence models.Absence, notifyPatients bool) error {
	ids := make([]string, len(conflicts))
	for i, appt := range conflicts {
		ids[i] = appt.ID
	}
	if _, err := s.Appointments.DeleteMany(ctx, doctorID, ids); err != nil {
		return fmt.Errorf("RegisterAbsence: failed to cancel conflicting appointments: %w", err)
	}

	emailNotice := notifyPatients && absence.Type == models.AbsenceTypeWithEmailNotice
	for _, appt := range conflicts {
		msg := fmt.Sprintf("Consulta de %s em %s às %s cancelada: %s", appt.PatientName, appt.Date, appt.Time, reason)
		if err := s.Notifier.Notify(ctx, doctorID, models.NotificationAppointmentCancelled, "Consulta cancelada", msg); err != nil {
			utils.GetLogger().Warn("cancelConflicting: failed to record notification", zap.Error(err))
		}
		if emailNotice && s.Mailer != nil {
			if err := s.Mailer.SendAbsenceNotice(ctx, appt, absence); err != nil {
				utils.GetLogger().Warn("cancelConflicting: failed to send absence notice", zap.Error(err))
			}
		}
	}
	return nil
}

func (s *DefaultScheduleService) ListAbsences(ctx context.Context, doctorID string) ([]models.Absence, error) {
	return s.Absences.GetByDoctor(ctx, doctorID)
}

func (s *DefaultScheduleService) DeleteAbsence(ctx context.Context, doctorID, id string) error {
	return s.Absences.DeleteByID(ctx, doctorID, id)
}

// ProposeMove records a drag/drop target as a pending move in the doctor's
// session. Malformed targets and drops on the appointment's current slot are
// silent no-ops.
func (s *DefaultScheduleService) ProposeMove(ctx context.Context, doctorID, appointmentID string, req models.MoveRequest) (*models.PendingMove, error) {
	appt, err := s.Appointments.GetByID(ctx, doctorID, appointmentID)
	if err != nil {
		return nil, err
	}

	weekStart := req.WeekStart
	if weekStart == "" {
		weekStart, err = WeekStartFor(appt.Date)
		if err != nil {
			return nil, err
		}
	}
	toDate, toTime, ok := ParseDropTarget(req.Target, weekStart)
	if !ok {
		return nil, nil
	}
	if toDate == appt.Date && toTime == appt.Time {
		return nil, nil
	}

	move := &models.PendingMove{
		AppointmentID: appt.ID,
		DoctorID:      doctorID,
		FromDate:      appt.Date,
		FromTime:      appt.Time,
		ToDate:        toDate,
		ToTime:        toTime,
		State:         models.MoveStateDropped,
		CreatedAt:     time.Now(),
	}
	if err := s.savePendingMove(doctorID, move); err != nil {
		return nil, err
	}
	return move, nil
}

// ConfirmMove applies the pending move for the appointment and clears it.
func (s *DefaultScheduleService) ConfirmMove(ctx context.Context, doctorID, appointmentID string) (*models.Appointment, error) {
	move, session, err := s.pendingMove(doctorID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := s.Appointments.UpdateDateTime(ctx, doctorID, appointmentID, move.ToDate, move.ToTime); err != nil {
		return nil, fmt.Errorf("ConfirmMove: failed to move appointment: %w", err)
	}

	session.PendingMove = nil
	if err := s.Sessions.Save(doctorID, *session); err != nil {
		utils.GetLogger().Warn("ConfirmMove: failed to clear pending move", zap.Error(err))
	}

	appt, err := s.Appointments.GetByID(ctx, doctorID, appointmentID)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Consulta de %s movida para %s às %s", appt.PatientName, appt.Date, appt.Time)
	if err := s.Notifier.Notify(ctx, doctorID, models.NotificationAppointmentRescheduled, "Consulta reagendada", msg); err != nil {
		utils.GetLogger().Warn("ConfirmMove: failed to record notification", zap.Error(err))
	}
	return appt, nil
}

// CancelMove discards the pending move without touching the appointment.
func (s *DefaultScheduleService) CancelMove(ctx context.Context, doctorID, appointmentID string) error {
	_, session, err := s.pendingMove(doctorID, appointmentID)
	if err != nil {
		return err
	}
	session.PendingMove = nil
	return s.Sessions.Save(doctorID, *session)
}

func (s *DefaultScheduleService) savePendingMove(doctorID string, move *models.PendingMove) error {
	session, err := s.Sessions.Load(doctorID)
	if err != nil || session == nil {
		session = &utils.DoctorSession{DoctorID: doctorID, CreatedAt: time.Now()}
	}
	session.PendingMove = move
	return s.Sessions.Save(doctorID, *session)
}

func (s *DefaultScheduleService) pendingMove(doctorID, appointmentID string) (*models.PendingMove, *utils.DoctorSession, error) {
	session, err := s.Sessions.Load(doctorID)
	if err != nil || session == nil || session.PendingMove == nil {
		return nil, nil, ErrNoPendingMove
	}
	if session.PendingMove.AppointmentID != appointmentID {
		return nil, nil, ErrNoPendingMove
	}
	return session.PendingMove, session, nil
}

func validateAbsence(doctorID string, req models.RegisterAbsenceRequest) (*models.Absence, error) {
	if !contains(models.AbsenceTypes, req.Type) {
		return nil, ErrInvalidAbsenceType
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	if req.StartTime != "" && req.EndTime != "" {
		startMin, err := parseClock(req.StartTime)
		if err != nil {
			return nil, ErrInvalidRange
		}
		endMin, err := parseClock(req.EndTime)
		if err != nil {
			return nil, ErrInvalidRange
		}
		if req.StartDate == req.EndDate && endMin <= startMin {
			return nil, ErrInvalidRange
		}
	}

	return &models.Absence{
		DoctorID:  doctorID,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func resolveReason(reason, custom string) (string, error) {
	if reason == "" {
		return "", ErrReasonRequired
	}
	if !contains(models.CancellationReasons, reason) {
		return "", ErrReasonRequired
	}
	if reason == "Outros" {
		if strings.TrimSpace(custom) == "" {
			return "", ErrReasonRequired
		}
		return strings.TrimSpace(custom), nil
	}
	return reason, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
