package handlers

import (
	"errors"
	"net/http"

	"medportal/models"
	"medportal/services/appointment"
	"medportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentHandler serves consultation CRUD endpoints.
type AppointmentHandler struct {
	Service appointment.AppointmentService
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.Create(c.Request.Context(), doctorID, req)
	if err != nil {
		if errors.Is(err, appointment.ErrValidation) || errors.Is(err, appointment.ErrPastBooking) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/appointments?from=&to=&type=.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	appts, err := h.Service.ListRange(c.Request.Context(), doctorID, from, to, c.Query("type"))
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	appt, err := h.Service.Get(c.Request.Context(), doctorID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// EditAppointmentHandler handles PUT /api/appointments/:id.
func (h *AppointmentHandler) EditAppointmentHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.Edit(c.Request.Context(), doctorID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, appointment.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.GetLogger().Error("Failed to edit appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to edit appointment"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// UpdateAppointmentStatusHandler handles PUT /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.UpdateStatus(c.Request.Context(), doctorID, c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, appointment.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.GetLogger().Error("Failed to update status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// RescheduleAppointmentHandler handles PUT /api/appointments/:id/reschedule.
func (h *AppointmentHandler) RescheduleAppointmentHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.Service.Reschedule(c.Request.Context(), doctorID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, appointment.ErrValidation) || errors.Is(err, appointment.ErrPastBooking) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.GetLogger().Error("Failed to reschedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule"})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// CancelAppointmentHandler handles POST /api/appointments/:id/cancel.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req models.CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Cancel(c.Request.Context(), doctorID, c.Param("id"), req); err != nil {
		if errors.Is(err, appointment.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		utils.GetLogger().Error("Failed to cancel appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}
