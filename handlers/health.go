package handlers

import (
	"net/http"
	"time"

	"rootsdental/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health from the background monitor's latest snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()

	overall := "ok"
	if !status.Calendar {
		overall = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            overall,
		"calendarConnected": status.Calendar,
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}
