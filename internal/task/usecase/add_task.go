package usecase

import (
	"context"
	"fmt"

	"calendar-agent/internal/task"
	"calendar-agent/pkg/gcalendar"
)

// AddTask localizes the task's day and times and creates one calendar event.
// end_time before start_time is passed through unchanged; the calendar API decides.
func (uc *implUseCase) AddTask(ctx context.Context, input task.AddTaskInput) (task.AddTaskOutput, error) {
	if err := uc.validateDay(input.Day); err != nil {
		return task.AddTaskOutput{}, err
	}

	start, err := uc.dateMath.Localize(input.Day, input.StartTime)
	if err != nil {
		return task.AddTaskOutput{}, fmt.Errorf("%w: %w", task.ErrInvalidStartTime, err)
	}

	end, err := uc.dateMath.Localize(input.Day, input.EndTime)
	if err != nil {
		return task.AddTaskOutput{}, fmt.Errorf("%w: %w", task.ErrInvalidEndTime, err)
	}

	tz := uc.dateMath.Timezone()
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     input.Summary,
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Timezone:    tz,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTask CreateEvent: %v", err)
		return task.AddTaskOutput{}, fmt.Errorf("%w: %w", task.ErrCalendarUnavailable, err)
	}

	uc.l.Infof(ctx, "uc.AddTask: created event %s for %q (%s - %s %s)", event.ID, input.Summary, start.Format("2006-01-02 15:04"), end.Format("15:04"), tz)

	return task.AddTaskOutput{
		EventID:   event.ID,
		HtmlLink:  event.HtmlLink,
		StartTime: start,
		EndTime:   end,
		Timezone:  tz,
	}, nil
}
