package calendar

import (
	"context"
	"time"
)

// BusyInterval is a period during which the calendar is occupied.
// Free/busy queries reveal intervals only, never event details.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Event is the provider-agnostic payload for a new calendar event.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	// ReminderMinutes are email reminder offsets before the event start,
	// delivered to the calendar owner by the provider itself.
	ReminderMinutes []int64
}

// CreatedEvent holds the provider-assigned identifiers of a stored event.
type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// Client is the external calendar collaborator. The remote calendar is the
// only durable store in the system; everything reaches it through this
// interface so the booking workflow can be tested against a fake.
type Client interface {
	// FreeBusy returns the busy intervals for the calendar within [start, end).
	FreeBusy(ctx context.Context, calendarID string, start, end time.Time) ([]BusyInterval, error)
	// CreateEvent stores a new event and returns its provider identifiers.
	CreateEvent(ctx context.Context, calendarID string, ev Event) (*CreatedEvent, error)
}
