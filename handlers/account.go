package handlers

import (
	"net/http"

	"medportal/models"
	"medportal/services/doctor"
	"medportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler serves the account page endpoints.
type AccountHandler struct {
	Service doctor.DoctorService
}

// GetAccountHandler handles GET /api/account.
func (h *AccountHandler) GetAccountHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	doc, err := h.Service.GetAccount(c.Request.Context(), doctorID)
	if err != nil {
		logger.Error("Account not found", zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateAccountHandler handles PUT /api/account.
func (h *AccountHandler) UpdateAccountHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var account models.AccountData
	if err := c.ShouldBindJSON(&account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := h.Service.UpdateAccount(c.Request.Context(), doctorID, account)
	if err != nil {
		logger.Error("Failed to update account", zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdatePasswordHandler handles PUT /api/account/password.
func (h *AccountHandler) UpdatePasswordHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdatePassword(c.Request.Context(), doctorID, req.CurrentPassword, req.NewPassword); err != nil {
		logger.Warn("Failed to update password", zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
