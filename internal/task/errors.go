package task

import "errors"

// Domain-specific errors for the task package.
// Parse errors wrap *datemath.ParseError; ErrCalendarUnavailable wraps *gcalendar.AdapterError.
var (
	ErrInvalidDay          = errors.New("invalid day")
	ErrInvalidStartTime    = errors.New("invalid start_time")
	ErrInvalidEndTime      = errors.New("invalid end_time")
	ErrCalendarUnavailable = errors.New("calendar event could not be created")
)
