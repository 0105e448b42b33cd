package repository

import (
	"context"

	"daily-task-management/internal/model"
)

// Repository is the composed interface for the tag domain data store.
type Repository interface {
	TagRepository
}

// TagRepository defines all data access methods for the Tag entity.
type TagRepository interface {
	CreateTag(ctx context.Context, opt CreateTagOptions) (model.Tag, error)
	GetOneTag(ctx context.Context, opt GetOneTagOptions) (model.Tag, error)
	ListTags(ctx context.Context, opt ListTagsOptions) ([]model.Tag, error)
	UpdateTag(ctx context.Context, opt UpdateTagOptions) (model.Tag, error)
	DeleteTag(ctx context.Context, opt DeleteTagOptions) error
}
