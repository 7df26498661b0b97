package gcalendar

import (
	"fmt"
	"time"
)

const (
	DefaultCalendarID     = "primary"
	DefaultRequestTimeout = 10 * time.Second
)

// Options tunes a Client. Zero values fall back to the defaults above.
type Options struct {
	CalendarID     string
	RequestTimeout time.Duration
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string // empty uses the client's default calendar
	Summary     string
	Description string // omitted from the payload when empty
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/London"
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

// AdapterError wraps every failure talking to the Calendar API.
type AdapterError struct {
	Op         string
	CalendarID string
	StatusCode int // HTTP status from Google, 0 when the request never got a response
	Err        error
}

func (e *AdapterError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gcalendar %s on %q: status %d: %v", e.Op, e.CalendarID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gcalendar %s on %q: %v", e.Op, e.CalendarID, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}
