package repository

import (
	"context"

	"calendar-agent/pkg/gcalendar"
)

// CalendarRepository is where task events end up. *gcalendar.Client implements it.
type CalendarRepository interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (gcalendar.Event, error)
}

var _ CalendarRepository = (*gcalendar.Client)(nil)
