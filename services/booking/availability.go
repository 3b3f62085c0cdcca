package booking

import (
	"context"

	"rootsdental/calendar"
	"rootsdental/models"
	"rootsdental/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityService checks slots against the clinic's Google
// Calendar free/busy data.
type DefaultAvailabilityService struct {
	Calendar   calendar.Client
	CalendarID string
}

func (s *DefaultAvailabilityService) IsAvailable(ctx context.Context, slot models.TimeSlot) (bool, error) {
	busy, err := s.Calendar.FreeBusy(ctx, s.CalendarID, slot.Start, slot.End)
	if err != nil {
		utils.GetLogger().Error("availability: free/busy check failed",
			zap.Time("slotStart", slot.Start), zap.Error(err))
		return false, err
	}
	return len(busy) == 0, nil
}

// FilterAvailable issues a single free/busy query spanning all candidate
// slots and partitions the result locally, rather than one query per slot.
// Output order matches input order and is always a subset of the input.
func (s *DefaultAvailabilityService) FilterAvailable(ctx context.Context, slots []models.TimeSlot) ([]models.TimeSlot, error) {
	if len(slots) == 0 {
		return nil, nil
	}

	busy, err := s.Calendar.FreeBusy(ctx, s.CalendarID, slots[0].Start, slots[len(slots)-1].End)
	if err != nil {
		utils.GetLogger().Error("availability: free/busy day query failed", zap.Error(err))
		return nil, err
	}

	available := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if !overlapsAny(busy, slot) {
			available = append(available, slot)
		}
	}
	return available, nil
}

// overlapsAny reports whether any busy interval intersects [slot.Start, slot.End).
func overlapsAny(busy []calendar.BusyInterval, slot models.TimeSlot) bool {
	for _, b := range busy {
		if b.Start.Before(slot.End) && b.End.After(slot.Start) {
			return true
		}
	}
	return false
}
