package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"rootsdental/config"
	"rootsdental/models"
	"rootsdental/services/booking"
	"rootsdental/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const availabilityCachePrefix = "availability:"

// AvailabilityHandler serves the open appointment slots for a date.
type AvailabilityHandler struct {
	Availability booking.AvailabilityService
	Hours        models.BusinessHours
	Cache        *redis.Client
}

func NewAvailabilityHandler(svc booking.AvailabilityService, hours models.BusinessHours, cache *redis.Client) *AvailabilityHandler {
	return &AvailabilityHandler{Availability: svc, Hours: hours, Cache: cache}
}

type availabilityResponse struct {
	Date     string            `json:"date"`
	Slots    []models.TimeSlot `json:"slots"`
	Timezone string            `json:"timezone"`
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD.
// An upstream outage is reported as 503, never as an empty slot list, so
// clients can tell "fully booked" from "calendar service down".
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "Date parameter is required (YYYY-MM-DD)", "")
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", "")
		return
	}

	ctx, cancel := upstreamCtx(c)
	defer cancel()

	cacheKey := availabilityCachePrefix + dateStr
	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	candidates, err := booking.GenerateSlots(date, h.Hours)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to generate slots", err.Error())
		return
	}

	available, err := h.Availability.FilterAvailable(ctx, candidates)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Calendar service unavailable",
			"Could not fetch availability. Please try again later.")
		return
	}
	if available == nil {
		available = []models.TimeSlot{}
	}

	resp := availabilityResponse{Date: dateStr, Slots: available, Timezone: h.Hours.Timezone}

	// Only successful upstream responses are cached; outages must stay visible.
	if h.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			ttl := time.Duration(config.AppConfig.AvailabilityCacheTTLSec) * time.Second
			if ttl <= 0 {
				ttl = time.Minute
			}
			if err := h.Cache.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
				utils.GetLogger().Warn("availability: cache write failed", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
