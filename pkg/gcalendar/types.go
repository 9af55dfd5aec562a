package gcalendar

import "time"

// CreateEventRequest is the input for creating a reminder event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string // free-form address shown on the event
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Warsaw"
	AllDay      bool   // date-only event, ignores the time-of-day
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
