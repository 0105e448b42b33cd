package repository

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID        string
	Raw           string
	Title         string
	IsImportant   bool
	IsLife        bool
	TagID         string
	Difficulty    int
	EstimatedTime int
	Deadline      string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// UserID is always applied; rows of other users are invisible.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and ordering parameters for listing Tasks.
type ListTasksOptions struct {
	UserID   string
	Deadline string
	OrderBy  string
}

// UpdateTaskOptions is the full post-merge state of a Task; the use case
// resolves partial updates before calling the store.
type UpdateTaskOptions struct {
	ID            string
	UserID        string
	Title         string
	IsImportant   bool
	IsLife        bool
	TagID         string
	Difficulty    int
	EstimatedTime int
	Deadline      string
	IsCompleted   bool
}

// DeleteTaskOptions identifies the Task to remove, scoped to its owner.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
