package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"medportal/services/export"
	"medportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportHandler serves PDF export of dashboard pages.
type ExportHandler struct {
	Service export.ExportService
}

// ExportPageHandler handles POST /api/export/page {route}.
func (h *ExportHandler) ExportPageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if _, ok := doctorIDFrom(c); !ok {
		return
	}
	var req struct {
		Route string `json:"route" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := h.Service.ExportPage(c.Request.Context(), req.Route)
	if err != nil {
		logger.Error("Failed to export page", zap.String("route", req.Route), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filename := strings.Trim(strings.ReplaceAll(req.Route, "/", "-"), "-")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ExportAllHandler handles POST /api/export/all.
func (h *ExportHandler) ExportAllHandler(c *gin.Context) {
	if _, ok := doctorIDFrom(c); !ok {
		return
	}
	results := h.Service.ExportAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"results": results})
}
