package booking

import (
	"context"

	"rootsdental/models"
)

// AvailabilityService answers whether appointment slots are free on the
// clinic calendar.
type AvailabilityService interface {
	// IsAvailable checks a single slot against the calendar's free/busy data.
	// An upstream failure is returned as an error, never folded into a
	// "not available" answer, so callers can tell an outage from a conflict.
	IsAvailable(ctx context.Context, slot models.TimeSlot) (bool, error)
	// FilterAvailable keeps the slots whose windows are clear, preserving
	// the input's chronological order.
	FilterAvailable(ctx context.Context, slots []models.TimeSlot) ([]models.TimeSlot, error)
}

// BookingService commits an appointment to the clinic calendar.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}
