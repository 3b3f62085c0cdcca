package handlers

import (
	"context"
	"time"

	"rootsdental/config"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the HTTP handlers registered by the routes package.
type HandlerBundle struct {
	GetAvailabilityHandler gin.HandlerFunc
	BookAppointmentHandler gin.HandlerFunc
	HealthHandler          gin.HandlerFunc
}

// upstreamCtx bounds a request-scoped context for calls to the calendar
// provider, so a hung upstream cannot suspend a request indefinitely.
func upstreamCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(config.AppConfig.UpstreamTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}
