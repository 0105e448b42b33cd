package repository

// CreateTagOptions holds parameters for inserting a new Tag.
type CreateTagOptions struct {
	UserID string
	Name   string
	Color  string
}

// GetOneTagOptions holds filter parameters for fetching a single Tag.
// UserID is always applied; non-empty ID/Name are AND conditions.
type GetOneTagOptions struct {
	ID     string
	UserID string
	Name   string
}

// ListTagsOptions scopes the listing to one user.
type ListTagsOptions struct {
	UserID string
}

// UpdateTagOptions holds the post-merge state of a Tag.
type UpdateTagOptions struct {
	ID     string
	UserID string
	Name   string
	Color  string
}

// DeleteTagOptions identifies the Tag to remove, scoped to its owner.
type DeleteTagOptions struct {
	ID     string
	UserID string
}
