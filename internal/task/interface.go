package task

import (
	"context"

	"daily-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create persists a task for the caller and refreshes the daily stats
	// of its deadline.
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)

	// List returns the caller's tasks in the requested sort mode.
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)

	// ListByDeadline returns the caller's tasks due on one date,
	// important first, then newest first.
	ListByDeadline(ctx context.Context, sc model.Scope, date string) (ListTasksOutput, error)

	// Update applies a partial update. A deadline change refreshes the
	// stats of both the old and the new date.
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)

	// Delete removes a task and refreshes the stats of its deadline.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Toggle flips the completion flag and refreshes the stats of the
	// task's deadline.
	Toggle(ctx context.Context, sc model.Scope, id string) (ToggleTaskOutput, error)
}
