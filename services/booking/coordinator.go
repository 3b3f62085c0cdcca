package booking

import (
	"context"
	"fmt"
	"strings"

	"rootsdental/calendar"
	"rootsdental/models"
	"rootsdental/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Email reminder offsets, in minutes before the appointment, delivered to
// the calendar owner by Google Calendar itself.
var reminderOffsets = []int64{24 * 60, 60}

// DefaultBookingService books appointments with a re-check-then-write
// protocol. There is no lock around the remote calendar: the slot is
// re-validated immediately before the event insert, and the residual
// window between check and write is accepted, since the calendar is the
// sole source of truth and a local lock could not be authoritative.
type DefaultBookingService struct {
	Availability AvailabilityService
	Calendar     calendar.Client
	CalendarID   string
}

// Book validates the request, re-checks the slot, and creates the event.
// Exactly one create attempt is made per invocation; the coordinator never
// retries on its own, so a lost response cannot turn into duplicate events.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// Never trust an availability claim from an earlier page load.
	available, err := s.Availability.IsAvailable(ctx, req.Slot)
	if err != nil {
		logger.Error("booking: availability re-check failed",
			zap.Time("slotStart", req.Slot.Start), zap.Error(err))
		return nil, NewServiceUnavailableError("calendar service unavailable")
	}
	if !available {
		return nil, NewSlotUnavailableError("this time slot is no longer available")
	}

	ref := uuid.New().String()
	ev := calendar.Event{
		Summary: fmt.Sprintf("%s - %s", req.Treatment, req.PatientName),
		Description: fmt.Sprintf("Patient: %s\nEmail: %s\nPhone: %s\nTreatment: %s\nBooking ref: %s",
			req.PatientName, req.PatientEmail, req.PatientPhone, req.Treatment, ref),
		Start:           req.Slot.Start,
		End:             req.Slot.End,
		ReminderMinutes: reminderOffsets,
	}

	created, err := s.Calendar.CreateEvent(ctx, s.CalendarID, ev)
	if err != nil {
		// The outcome upstream is ambiguous here; the booking ref in the
		// event description lets an operator reconcile against the calendar.
		logger.Error("booking: event creation failed",
			zap.String("bookingRef", ref), zap.Error(err))
		return nil, NewUpstreamError("failed to create calendar event")
	}

	logger.Info("booking: appointment confirmed",
		zap.String("eventId", created.ID),
		zap.String("bookingRef", ref),
		zap.Time("start", req.Slot.Start))

	return &models.BookingResult{
		EventID:    created.ID,
		EventLink:  created.HTMLLink,
		BookingRef: ref,
	}, nil
}

func validateRequest(req models.BookingRequest) error {
	switch {
	case strings.TrimSpace(req.PatientName) == "":
		return NewValidationError("name is required")
	case strings.TrimSpace(req.PatientEmail) == "":
		return NewValidationError("email is required")
	case strings.TrimSpace(req.PatientPhone) == "":
		return NewValidationError("phone is required")
	case strings.TrimSpace(req.Treatment) == "":
		return NewValidationError("treatment is required")
	case req.Slot.Start.IsZero() || req.Slot.End.IsZero():
		return NewValidationError("slot start and end times are required")
	case !req.Slot.End.After(req.Slot.Start):
		return NewValidationError("slot end must be after slot start")
	}
	return nil
}
