package models

import "time"

// BusinessHours describes the clinic's daily booking window.
type BusinessHours struct {
	StartHour       int    `json:"startHour"` // local hour, 0-23
	EndHour         int    `json:"endHour"`   // local hour, 0-23, exclusive
	Timezone        string `json:"timezone"`  // IANA id, e.g. "Europe/Copenhagen"
	SlotDurationMin int    `json:"slotDurationMinutes"`
}

// TimeSlot is a fixed-duration candidate appointment interval.
// Slots are ephemeral: recomputed per request, never persisted.
type TimeSlot struct {
	Start   time.Time `json:"start"`   // UTC-normalized
	End     time.Time `json:"end"`     // UTC-normalized
	Display string    `json:"display"` // "HH:MM" in the business timezone
}
