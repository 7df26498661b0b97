package http

import (
	"context"
	"errors"

	"calendar-agent/internal/task"
	pkgErrors "calendar-agent/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrInvalidDay):
		return pkgErrors.NewFieldError("day", "must be a valid date in YYYY-MM-DD format")
	case errors.Is(err, task.ErrInvalidStartTime):
		return pkgErrors.NewFieldError("start_time", "must be a valid time in HH:MM format")
	case errors.Is(err, task.ErrInvalidEndTime):
		return pkgErrors.NewFieldError("end_time", "must be a valid time in HH:MM format")
	case errors.Is(err, task.ErrCalendarUnavailable):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// logError logs client errors at warn level and unmapped failures at error level.
// Calendar failures are already logged by the use case.
func (h *handler) logError(ctx context.Context, err, mapped error) {
	var ve *pkgErrors.ValidationError
	switch {
	case errors.As(mapped, &ve):
		h.l.Warnf(ctx, "uc.AddTask: %v", err)
	case errors.Is(err, task.ErrCalendarUnavailable):
	default:
		h.l.Errorf(ctx, "uc.AddTask: %v", err)
	}
}
