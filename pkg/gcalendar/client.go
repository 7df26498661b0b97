package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"calendar-agent/pkg/datemath"
)

var errEmptyEventID = errors.New("response carried no event id")

// Client wraps the Google Calendar API service.
// It is safe for concurrent use and is meant to be built once per process.
type Client struct {
	service *calendar.Service
	opts    Options
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string, opts Options) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, opts)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes,
// scoped to calendar read/write.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, opts Options) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, opts), nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, opts), nil
}

func newClient(svc *calendar.Service, opts Options) *Client {
	if opts.CalendarID == "" {
		opts.CalendarID = DefaultCalendarID
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	return &Client{service: svc, opts: opts}
}

// CalendarID returns the calendar events are created in when a request names none.
func (c *Client) CalendarID() string {
	return c.opts.CalendarID
}

// CreateEvent inserts one event and returns what Google assigned. It never retries.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = c.opts.CalendarID
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: datemath.Format(req.StartTime),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: datemath.Format(req.EndTime),
			TimeZone: req.Timezone,
		},
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		adapterErr := &AdapterError{Op: "insert", CalendarID: calendarID, Err: err}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			adapterErr.StatusCode = apiErr.Code
		}
		return Event{}, adapterErr
	}
	if created.Id == "" {
		return Event{}, &AdapterError{Op: "insert", CalendarID: calendarID, Err: errEmptyEventID}
	}

	return Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}
