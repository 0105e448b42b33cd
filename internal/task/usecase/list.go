package usecase

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/task"
	repo "daily-task-management/internal/task/repository"
)

// List returns the caller's tasks in the requested sort mode.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:  sc.UserID,
		OrderBy: orderClause(input.Sort),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks}, nil
}

// ListByDeadline returns the caller's tasks due on one date, important
// first, then newest first.
func (uc *implUseCase) ListByDeadline(ctx context.Context, sc model.Scope, date string) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:   sc.UserID,
		Deadline: date,
		OrderBy:  "is_important DESC, created_at DESC",
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByDeadline ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}
	return task.ListTasksOutput{Tasks: tasks}, nil
}
