package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"rootsdental/calendar"
	"rootsdental/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCalendarID = "clinic@example.com"

// MockCalendarClient is a testify mock of the external calendar.
type MockCalendarClient struct {
	mock.Mock
}

func (m *MockCalendarClient) FreeBusy(ctx context.Context, calendarID string, start, end time.Time) ([]calendar.BusyInterval, error) {
	args := m.Called(ctx, calendarID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.BusyInterval), args.Error(1)
}

func (m *MockCalendarClient) CreateEvent(ctx context.Context, calendarID string, ev calendar.Event) (*calendar.CreatedEvent, error) {
	args := m.Called(ctx, calendarID, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.CreatedEvent), args.Error(1)
}

func daySlots(t *testing.T) []models.TimeSlot {
	t.Helper()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	slots, err := GenerateSlots(date, clinicHours(30))
	require.NoError(t, err)
	return slots
}

func slotAtLocal(t *testing.T, hour, minute int) models.TimeSlot {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Copenhagen")
	require.NoError(t, err)
	start := time.Date(2025, 6, 10, hour, minute, 0, 0, loc)
	return models.TimeSlot{Start: start.UTC(), End: start.Add(30 * time.Minute).UTC()}
}

func TestIsAvailable(t *testing.T) {
	slot := slotAtLocal(t, 10, 0)

	t.Run("free slot", func(t *testing.T) {
		client := new(MockCalendarClient)
		client.On("FreeBusy", mock.Anything, testCalendarID, slot.Start, slot.End).
			Return([]calendar.BusyInterval{}, nil)
		svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

		available, err := svc.IsAvailable(context.Background(), slot)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("busy slot", func(t *testing.T) {
		client := new(MockCalendarClient)
		client.On("FreeBusy", mock.Anything, testCalendarID, slot.Start, slot.End).
			Return([]calendar.BusyInterval{{Start: slot.Start, End: slot.End}}, nil)
		svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

		available, err := svc.IsAvailable(context.Background(), slot)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("upstream failure surfaces as an error", func(t *testing.T) {
		client := new(MockCalendarClient)
		client.On("FreeBusy", mock.Anything, testCalendarID, slot.Start, slot.End).
			Return(nil, errors.New("quota exceeded"))
		svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

		_, err := svc.IsAvailable(context.Background(), slot)
		assert.Error(t, err)
	})
}

func TestFilterAvailableExcludesBusySlot(t *testing.T) {
	slots := daySlots(t)
	busySlot := slotAtLocal(t, 10, 0)

	client := new(MockCalendarClient)
	client.On("FreeBusy", mock.Anything, testCalendarID, slots[0].Start, slots[len(slots)-1].End).
		Return([]calendar.BusyInterval{{Start: busySlot.Start, End: busySlot.End}}, nil)
	svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

	available, err := svc.FilterAvailable(context.Background(), slots)
	require.NoError(t, err)

	require.Len(t, available, len(slots)-1)
	for _, slot := range available {
		assert.False(t, slot.Start.Equal(busySlot.Start), "busy 10:00 slot must be excluded")
	}

	// Order preserved and output a subset of input.
	j := 0
	for _, slot := range available {
		for j < len(slots) && !slots[j].Start.Equal(slot.Start) {
			j++
		}
		require.Less(t, j, len(slots), "filtered slot %s not found in input order", slot.Display)
	}

	client.AssertNumberOfCalls(t, "FreeBusy", 1)
}

func TestFilterAvailablePartialOverlapBlocks(t *testing.T) {
	slots := daySlots(t)

	// A busy block 10:15-10:45 local intersects both the 10:00 and 10:30 slots.
	loc, err := time.LoadLocation("Europe/Copenhagen")
	require.NoError(t, err)
	busy := calendar.BusyInterval{
		Start: time.Date(2025, 6, 10, 10, 15, 0, 0, loc),
		End:   time.Date(2025, 6, 10, 10, 45, 0, 0, loc),
	}

	client := new(MockCalendarClient)
	client.On("FreeBusy", mock.Anything, testCalendarID, mock.Anything, mock.Anything).
		Return([]calendar.BusyInterval{busy}, nil)
	svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

	available, err := svc.FilterAvailable(context.Background(), slots)
	require.NoError(t, err)
	assert.Len(t, available, len(slots)-2)
}

func TestFilterAvailableBackToBackEventsDoNotBlock(t *testing.T) {
	slots := daySlots(t)

	// An event ending exactly at 10:00 does not block the 10:00 slot.
	tenLocal := slotAtLocal(t, 10, 0)
	busy := calendar.BusyInterval{Start: slotAtLocal(t, 9, 30).Start, End: tenLocal.Start}

	client := new(MockCalendarClient)
	client.On("FreeBusy", mock.Anything, testCalendarID, mock.Anything, mock.Anything).
		Return([]calendar.BusyInterval{busy}, nil)
	svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

	available, err := svc.FilterAvailable(context.Background(), slots)
	require.NoError(t, err)
	assert.Len(t, available, len(slots)-1)
	for _, slot := range available {
		assert.False(t, slot.Start.Equal(slotAtLocal(t, 9, 30).Start))
	}
}

func TestFilterAvailableUpstreamFailure(t *testing.T) {
	slots := daySlots(t)

	client := new(MockCalendarClient)
	client.On("FreeBusy", mock.Anything, testCalendarID, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))
	svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

	available, err := svc.FilterAvailable(context.Background(), slots)
	assert.Error(t, err, "an outage must not look like a fully booked day")
	assert.Nil(t, available)
}

func TestFilterAvailableEmptyInput(t *testing.T) {
	client := new(MockCalendarClient)
	svc := &DefaultAvailabilityService{Calendar: client, CalendarID: testCalendarID}

	available, err := svc.FilterAvailable(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, available)
	client.AssertNotCalled(t, "FreeBusy")
}
