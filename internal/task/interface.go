package task

import "context"

// UseCase defines the business logic interface for the task domain.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// AddTask turns one task into one calendar event and returns the event id.
	// It is not idempotent: calling it twice creates two events.
	AddTask(ctx context.Context, input AddTaskInput) (AddTaskOutput, error)
}
