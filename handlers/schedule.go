package handlers

import (
	"errors"
	"net/http"
	"time"

	"medportal/models"
	"medportal/services/schedule"
	"medportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ScheduleHandler serves the weekly calendar, absences and drag/drop moves.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// WeekViewHandler handles GET /api/schedule/week?date=.
func (h *ScheduleHandler) WeekViewHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	view, err := h.Service.WeekView(c.Request.Context(), doctorID, date)
	if err != nil {
		utils.GetLogger().Error("Failed to build week view", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// RegisterAbsenceHandler handles POST /api/absences. Unconfirmed requests
// over conflicting consultations get a 409 with the conflict payload.
func (h *ScheduleHandler) RegisterAbsenceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req models.RegisterAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	absence, err := h.Service.RegisterAbsence(c.Request.Context(), doctorID, req)
	if err != nil {
		var conflictErr *schedule.ConflictError
		if errors.As(err, &conflictErr) {
			c.JSON(http.StatusConflict, models.AbsenceConflictResponse{
				Message:             "A ausência coincide com consultas agendadas",
				ConflictingCount:    len(conflictErr.Conflicts),
				ConflictingBookings: conflictErr.Conflicts,
				CancellationReasons: models.CancellationReasons,
			})
			return
		}
		switch {
		case errors.Is(err, schedule.ErrInvalidAbsenceType),
			errors.Is(err, schedule.ErrInvalidRange),
			errors.Is(err, schedule.ErrReasonRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to register absence", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register absence"})
		}
		return
	}
	c.JSON(http.StatusCreated, absence)
}

// ListAbsencesHandler handles GET /api/absences.
func (h *ScheduleHandler) ListAbsencesHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	absences, err := h.Service.ListAbsences(c.Request.Context(), doctorID)
	if err != nil {
		utils.GetLogger().Error("Failed to list absences", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list absences"})
		return
	}
	if absences == nil {
		absences = []models.Absence{}
	}
	c.JSON(http.StatusOK, absences)
}

// DeleteAbsenceHandler handles DELETE /api/absences/:id.
func (h *ScheduleHandler) DeleteAbsenceHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteAbsence(c.Request.Context(), doctorID, c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Absence not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete absence", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete absence"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Absence deleted"})
}

// ProposeMoveHandler handles POST /api/appointments/:id/move.
func (h *ScheduleHandler) ProposeMoveHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	move, err := h.Service.ProposeMove(c.Request.Context(), doctorID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.GetLogger().Error("Failed to propose move", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to propose move"})
		return
	}
	if move == nil {
		// Malformed target or drop on the original slot.
		c.JSON(http.StatusOK, gin.H{"moved": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": true, "pendingMove": move})
}

// ConfirmMoveHandler handles POST /api/appointments/:id/move/confirm.
func (h *ScheduleHandler) ConfirmMoveHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	appt, err := h.Service.ConfirmMove(c.Request.Context(), doctorID, c.Param("id"))
	if err != nil {
		if errors.Is(err, schedule.ErrNoPendingMove) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to confirm move", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm move"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelMoveHandler handles POST /api/appointments/:id/move/cancel.
func (h *ScheduleHandler) CancelMoveHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	if err := h.Service.CancelMove(c.Request.Context(), doctorID, c.Param("id")); err != nil {
		if errors.Is(err, schedule.ErrNoPendingMove) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to cancel move", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel move"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Move cancelled"})
}
