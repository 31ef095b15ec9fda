package handlers

import (
	"net/http"
	"strconv"

	"medportal/models"
	"medportal/services/notification"
	"medportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves the notifications panel endpoints.
type NotificationHandler struct {
	Service notification.NotificationService
}

// ListNotificationsHandler handles GET /api/notifications?limit=.
func (h *NotificationHandler) ListNotificationsHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	notifications, err := h.Service.List(c.Request.Context(), doctorID, limit)
	if err != nil {
		utils.GetLogger().Error("Failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	unread, err := h.Service.UnreadCount(c.Request.Context(), doctorID)
	if err != nil {
		unread = 0
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "unread": unread})
}

// MarkNotificationReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	if err := h.Service.MarkRead(c.Request.Context(), doctorID, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification read"})
}

// MarkAllNotificationsReadHandler handles PUT /api/notifications/read-all.
func (h *NotificationHandler) MarkAllNotificationsReadHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	if err := h.Service.MarkAllRead(c.Request.Context(), doctorID); err != nil {
		utils.GetLogger().Error("Failed to mark notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications read"})
}
