package usecase

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/tag"
	repo "daily-task-management/internal/tag/repository"
)

// Create creates a new Tag after checking for name uniqueness within the user.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input tag.CreateTagInput) (tag.CreateTagOutput, error) {
	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{UserID: sc.UserID, Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneTag: %v", err)
		return tag.CreateTagOutput{}, err
	}
	if existing.ID != "" {
		return tag.CreateTagOutput{}, tag.ErrDuplicateName
	}

	created, err := uc.repo.CreateTag(ctx, repo.CreateTagOptions{
		UserID: sc.UserID,
		Name:   input.Name,
		Color:  input.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTag: %v", err)
		return tag.CreateTagOutput{}, err
	}

	return tag.CreateTagOutput{Tag: created}, nil
}

// List returns the caller's tags ordered by creation time.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (tag.ListTagsOutput, error) {
	tags, err := uc.repo.ListTags(ctx, repo.ListTagsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTags: %v", err)
		return tag.ListTagsOutput{}, err
	}
	return tag.ListTagsOutput{Tags: tags}, nil
}

// Update renames or recolors a Tag. Returns ErrTagNotFound when absent and
// ErrDuplicateName when the new name collides with another tag of the user.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input tag.UpdateTagInput) (tag.UpdateTagOutput, error) {
	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTag: %v", err)
		return tag.UpdateTagOutput{}, err
	}
	if existing.ID == "" {
		return tag.UpdateTagOutput{}, tag.ErrTagNotFound
	}

	if input.Name != "" && input.Name != existing.Name {
		dup, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{UserID: sc.UserID, Name: input.Name})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneTag: %v", err)
			return tag.UpdateTagOutput{}, err
		}
		if dup.ID != "" {
			return tag.UpdateTagOutput{}, tag.ErrDuplicateName
		}
	}

	updated, err := uc.repo.UpdateTag(ctx, repo.UpdateTagOptions{
		ID:     input.ID,
		UserID: sc.UserID,
		Name:   uc.coalesce(input.Name, existing.Name),
		Color:  uc.coalesce(input.Color, existing.Color),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTag: %v", err)
		return tag.UpdateTagOutput{}, err
	}
	return tag.UpdateTagOutput{Tag: updated}, nil
}

// Delete removes a Tag. Tasks pointing at it become untagged through the
// schema; historical stat records keep the old tag id.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTag(ctx, repo.GetOneTagOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTag: %v", err)
		return err
	}
	if existing.ID == "" {
		return tag.ErrTagNotFound
	}

	if err := uc.repo.DeleteTag(ctx, repo.DeleteTagOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTag: %v", err)
		return err
	}
	return nil
}
