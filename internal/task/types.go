package task

import "time"

// AddTaskInput is one task as received from the client. Day, StartTime and EndTime
// are raw strings; the use case owns parsing them.
type AddTaskInput struct {
	Summary     string
	Day         string // YYYY-MM-DD
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Description string // optional
}

// AddTaskOutput is the result of creating the calendar event.
type AddTaskOutput struct {
	EventID   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
	Timezone  string
}
