package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"medportal/models"
	"medportal/services/document"
	"medportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DocumentHandler serves the documents page endpoints.
type DocumentHandler struct {
	Service document.DocumentService
}

// ListDocumentsHandler handles GET /api/documents with search, patient,
// type, page and pageSize query parameters.
func (h *DocumentHandler) ListDocumentsHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	var filter models.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.Service.List(c.Request.Context(), doctorID, filter)
	if err != nil {
		utils.GetLogger().Error("Failed to list documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// DocumentFacetsHandler handles GET /api/documents/facets, feeding the
// filter dropdowns.
func (h *DocumentHandler) DocumentFacetsHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	patients, types, err := h.Service.Facets(c.Request.Context(), doctorID)
	if err != nil {
		utils.GetLogger().Error("Failed to load document facets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load filters"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients, "types": types})
}

// UploadDocumentHandler handles POST /api/documents (multipart).
func (h *DocumentHandler) UploadDocumentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}

	// Spool to a unique temp path for the storage client.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(file.Filename))
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

	name := c.PostForm("name")
	if name == "" {
		name = file.Filename
	}
	req := document.UploadRequest{
		LocalPath:   tmpPath,
		Name:        name,
		Type:        c.PostForm("type"),
		PatientName: c.PostForm("patient"),
		Date:        c.PostForm("date"),
		SizeBytes:   file.Size,
	}

	doc, err := h.Service.Upload(c.Request.Context(), doctorID, req)
	if err != nil {
		logger.Error("Failed to upload document", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// DownloadDocumentHandler handles GET /api/documents/:id/download.
func (h *DocumentHandler) DownloadDocumentHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	url, err := h.Service.DownloadURL(c.Request.Context(), doctorID, c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		utils.GetLogger().Error("Failed to build download URL", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build download URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteDocumentHandler handles DELETE /api/documents/:id.
func (h *DocumentHandler) DeleteDocumentHandler(c *gin.Context) {
	doctorID, ok := doctorIDFrom(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), doctorID, c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete document", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
