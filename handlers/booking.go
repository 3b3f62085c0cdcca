package handlers

import (
	"net/http"
	"time"

	"rootsdental/models"
	"rootsdental/services/booking"
	"rootsdental/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingHandler accepts appointment requests and commits them through the
// booking coordinator.
type BookingHandler struct {
	Booking booking.BookingService
	Hours   models.BusinessHours
	Cache   *redis.Client
}

func NewBookingHandler(svc booking.BookingService, hours models.BusinessHours, cache *redis.Client) *BookingHandler {
	return &BookingHandler{Booking: svc, Hours: hours, Cache: cache}
}

type bookAppointmentInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Treatment string `json:"treatment"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookAppointment handles POST /api/book.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var input bookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	start, end, err := parseSlotTimes(input.StartTime, input.EndTime)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot times", err.Error())
		return
	}

	req := models.BookingRequest{
		PatientName:  input.Name,
		PatientEmail: input.Email,
		PatientPhone: input.Phone,
		Treatment:    input.Treatment,
		Slot:         models.TimeSlot{Start: start, End: end},
	}

	ctx, cancel := upstreamCtx(c)
	defer cancel()

	result, err := h.Booking.Book(ctx, req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	h.invalidateAvailability(c, start)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Appointment booked successfully!",
		"eventId":    result.EventID,
		"eventLink":  result.EventLink,
		"bookingRef": result.BookingRef,
	})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	be, ok := booking.AsBookingError(err)
	if !ok {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to book appointment",
			"An error occurred while booking. Please try again.")
		return
	}

	switch be.Code {
	case booking.CodeValidation:
		utils.JSONError(c, http.StatusBadRequest, "All fields are required", be.Message)
	case booking.CodeSlotUnavailable:
		utils.JSONError(c, http.StatusConflict, "Slot already booked",
			"This time slot is no longer available. Please choose another time.")
	case booking.CodeServiceUnavailable:
		utils.JSONError(c, http.StatusServiceUnavailable, "Calendar service unavailable", be.Message)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to book appointment",
			"An error occurred while booking. Please try again.")
	}
}

// invalidateAvailability drops the cached slot list for the booked date so
// the next availability request reflects the new event.
func (h *BookingHandler) invalidateAvailability(c *gin.Context, start time.Time) {
	if h.Cache == nil {
		return
	}
	loc, err := time.LoadLocation(h.Hours.Timezone)
	if err != nil {
		return
	}
	key := availabilityCachePrefix + start.In(loc).Format("2006-01-02")
	if err := h.Cache.Del(c.Request.Context(), key).Err(); err != nil {
		utils.GetLogger().Warn("booking: cache invalidation failed",
			zap.String("key", key), zap.Error(err))
	}
}

func parseSlotTimes(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start.UTC(), end.UTC(), nil
}
