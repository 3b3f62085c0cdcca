package calendar

import (
	"context"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleClient implements Client against the Google Calendar v3 API,
// authenticated with a service account key file.
type GoogleClient struct {
	svc      *gcal.Service
	timezone string
}

// NewGoogleClient builds the Calendar API service from a service account
// credentials file. The timezone is the IANA id used on event payloads and
// free/busy queries.
func NewGoogleClient(ctx context.Context, credsPath, timezone string) (*GoogleClient, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credsPath),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to initialize service: %w", err)
	}
	return &GoogleClient{svc: svc, timezone: timezone}, nil
}

func (c *GoogleClient) FreeBusy(ctx context.Context, calendarID string, start, end time.Time) ([]BusyInterval, error) {
	req := &gcal.FreeBusyRequest{
		TimeMin:  start.Format(time.RFC3339),
		TimeMax:  end.Format(time.RFC3339),
		TimeZone: c.timezone,
		Items:    []*gcal.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: free/busy query failed: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("calendar: free/busy response missing calendar %q", calendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("calendar: free/busy error for %q: %s", calendarID, cal.Errors[0].Reason)
	}

	busy := make([]BusyInterval, 0, len(cal.Busy))
	for _, p := range cal.Busy {
		s, err := time.Parse(time.RFC3339, p.Start)
		if err != nil {
			return nil, fmt.Errorf("calendar: bad busy interval start %q: %w", p.Start, err)
		}
		e, err := time.Parse(time.RFC3339, p.End)
		if err != nil {
			return nil, fmt.Errorf("calendar: bad busy interval end %q: %w", p.End, err)
		}
		busy = append(busy, BusyInterval{Start: s, End: e})
	}
	return busy, nil
}

func (c *GoogleClient) CreateEvent(ctx context.Context, calendarID string, ev Event) (*CreatedEvent, error) {
	overrides := make([]*gcal.EventReminder, 0, len(ev.ReminderMinutes))
	for _, m := range ev.ReminderMinutes {
		overrides = append(overrides, &gcal.EventReminder{Method: "email", Minutes: m})
	}

	payload := &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert(calendarID, payload).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: event insert failed: %w", err)
	}
	return &CreatedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}
