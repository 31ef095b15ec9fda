package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// doctorIDFrom pulls the authenticated doctor ID set by the auth middleware.
// It writes the 401 itself; callers just return on !ok.
func doctorIDFrom(c *gin.Context) (string, bool) {
	val, exists := c.Get("doctorID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}
