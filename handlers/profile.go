package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"medportal/models"
	"medportal/services/doctor"
	"medportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the public profile management endpoints.
type ProfileHandler struct {
	Service doctor.DoctorService
}

// GetProfileHandler handles GET /api/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	profile, err := h.Service.GetProfile(c.Request.Context(), doctorID)
	if err != nil {
		logger.Error("Profile not found", zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PUT /api/profile.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var profile models.PublicProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Service.UpdateProfile(c.Request.Context(), doctorID, profile)
	if err != nil {
		logger.Warn("Failed to update profile", zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UploadProfilePhotoHandler handles POST /api/profile/photo (multipart).
func (h *ProfileHandler) UploadProfilePhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A photo is required"})
		return
	}

	tmp, err := os.CreateTemp("", "photo-*"+filepath.Ext(file.Filename))
	if err != nil {
		logger.Error("Failed to create spool file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to spool upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	profile, err := h.Service.UpdatePhoto(c.Request.Context(), doctorID, tmpPath)
	if err != nil {
		logger.Error("Failed to update profile photo", zap.String("doctorID", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile photo"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
