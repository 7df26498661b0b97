package usecase

import (
	"calendar-agent/internal/task/repository"
	"calendar-agent/pkg/datemath"
	pkgLog "calendar-agent/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	calendar   repository.CalendarRepository
	dateMath   *datemath.Parser
	calendarID string
}

// New creates a new task UseCase instance. calendarID may be empty to use the
// calendar client's default.
func New(
	l pkgLog.Logger,
	calendar repository.CalendarRepository,
	dateMath *datemath.Parser,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		calendar:   calendar,
		dateMath:   dateMath,
		calendarID: calendarID,
	}
}
