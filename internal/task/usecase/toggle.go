package usecase

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/task"
	repo "daily-task-management/internal/task/repository"
)

// Toggle flips the completion flag and refreshes the stats of the task's
// deadline; completion feeds the productivity score.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (task.ToggleTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle GetOneTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.ToggleTaskOutput{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:            existing.ID,
		UserID:        sc.UserID,
		Title:         existing.Title,
		IsImportant:   existing.IsImportant,
		IsLife:        existing.IsLife,
		TagID:         existing.TagID,
		Difficulty:    existing.Difficulty,
		EstimatedTime: existing.EstimatedTime,
		Deadline:      existing.Deadline,
		IsCompleted:   !existing.IsCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return task.ToggleTaskOutput{}, err
	}
	if updated.ID == "" {
		return task.ToggleTaskOutput{}, task.ErrTaskNotFound
	}

	uc.refreshStats(ctx, sc.UserID, updated.Deadline)
	return task.ToggleTaskOutput{Task: updated}, nil
}
