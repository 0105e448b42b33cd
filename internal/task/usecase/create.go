package usecase

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/task"
	repo "daily-task-management/internal/task/repository"
)

// Create persists a new task and refreshes the stats of its deadline.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	deadline := uc.resolveDeadline(ctx, input.Deadline)

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:        sc.UserID,
		Raw:           input.Raw,
		Title:         input.Title,
		IsImportant:   input.IsImportant,
		IsLife:        input.IsLife,
		TagID:         input.TagID,
		Difficulty:    input.Difficulty,
		EstimatedTime: input.EstimatedTime,
		Deadline:      deadline,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	uc.refreshStats(ctx, sc.UserID, created.Deadline)
	return task.CreateTaskOutput{Task: created}, nil
}
