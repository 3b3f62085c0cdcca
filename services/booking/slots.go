package booking

import (
	"fmt"
	"time"

	"rootsdental/models"
)

// GenerateSlots builds the ordered candidate appointment slots for a date.
// Pure and deterministic: no network, no state. Slots start on duration
// multiples within each business hour and never cross the closing boundary;
// a partial period at the end of the day is simply not produced. A slot
// ending exactly at closing time is valid.
func GenerateSlots(date time.Time, hours models.BusinessHours) ([]models.TimeSlot, error) {
	loc, err := time.LoadLocation(hours.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid business timezone %q: %w", hours.Timezone, err)
	}

	year, month, day := date.Date()
	closing := time.Date(year, month, day, hours.EndHour, 0, 0, 0, loc)

	var slots []models.TimeSlot
	for hour := hours.StartHour; hour < hours.EndHour; hour++ {
		for minute := 0; minute < 60; minute += hours.SlotDurationMin {
			start := time.Date(year, month, day, hour, minute, 0, 0, loc)
			end := start.Add(time.Duration(hours.SlotDurationMin) * time.Minute)
			if end.After(closing) {
				continue
			}
			slots = append(slots, models.TimeSlot{
				Start:   start.UTC(),
				End:     end.UTC(),
				Display: fmt.Sprintf("%02d:%02d", hour, minute),
			})
		}
	}
	return slots, nil
}
