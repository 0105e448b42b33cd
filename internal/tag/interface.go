package tag

import (
	"context"

	"daily-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create adds a tag for the caller. Names are unique per user.
	Create(ctx context.Context, sc model.Scope, input CreateTagInput) (CreateTagOutput, error)

	// List returns the caller's tags ordered by creation time.
	List(ctx context.Context, sc model.Scope) (ListTagsOutput, error)

	// Update renames or recolors a tag. Empty fields keep their value.
	Update(ctx context.Context, sc model.Scope, input UpdateTagInput) (UpdateTagOutput, error)

	// Delete removes a tag; tasks pointing at it become untagged.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
