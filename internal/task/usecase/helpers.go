package usecase

import (
	"fmt"

	"calendar-agent/internal/task"
)

// validateDay checks the day on its own so a bad date is reported against "day"
// rather than against whichever time happened to be parsed first.
func (uc *implUseCase) validateDay(day string) error {
	if _, err := uc.dateMath.Localize(day, "00:00"); err != nil {
		return fmt.Errorf("%w: %w", task.ErrInvalidDay, err)
	}
	return nil
}
