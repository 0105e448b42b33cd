package usecase

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/task"
	repo "daily-task-management/internal/task/repository"
)

// Update applies a partial update. When the deadline moves, the stats of
// both the old and the new date are refreshed; otherwise only the task's
// (unchanged) date is.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:            existing.ID,
		UserID:        sc.UserID,
		Title:         existing.Title,
		IsImportant:   existing.IsImportant,
		IsLife:        existing.IsLife,
		TagID:         existing.TagID,
		Difficulty:    existing.Difficulty,
		EstimatedTime: existing.EstimatedTime,
		Deadline:      existing.Deadline,
		IsCompleted:   existing.IsCompleted,
	}
	if input.Title != nil {
		opt.Title = *input.Title
	}
	if input.IsImportant != nil {
		opt.IsImportant = *input.IsImportant
	}
	if input.IsLife != nil {
		opt.IsLife = *input.IsLife
	}
	if input.TagID != nil {
		opt.TagID = *input.TagID
	}
	if input.Difficulty != nil {
		opt.Difficulty = *input.Difficulty
	}
	if input.EstimatedTime != nil {
		opt.EstimatedTime = *input.EstimatedTime
	}
	if input.Deadline != nil {
		opt.Deadline = uc.resolveDeadline(ctx, *input.Deadline)
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if updated.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	uc.refreshStats(ctx, sc.UserID, existing.Deadline, updated.Deadline)
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a task and refreshes the stats of its deadline.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	uc.refreshStats(ctx, sc.UserID, existing.Deadline)
	return nil
}
