package task

import "daily-task-management/internal/model"

// Sort modes for listing tasks.
const (
	SortDefault   = "default"   // deadline asc, important first within a day
	SortImportant = "important" // important first, newest first
	SortRecent    = "recent"    // newest first, important first within a tie
)

// --- UseCase Inputs ---

// CreateTaskInput carries a new task. Deadline accepts either an absolute
// YYYY-MM-DD date or a relative expression ("tomorrow", "next week friday");
// relative expressions are resolved against today in the service timezone.
type CreateTaskInput struct {
	Raw           string
	Title         string
	IsImportant   bool
	IsLife        bool
	TagID         string
	Difficulty    int
	EstimatedTime int
	Deadline      string
}

type ListTasksInput struct {
	Sort string
}

// UpdateTaskInput is a partial update; nil fields keep their current value.
type UpdateTaskInput struct {
	ID            string
	Title         *string
	IsImportant   *bool
	IsLife        *bool
	TagID         *string
	Difficulty    *int
	EstimatedTime *int
	Deadline      *string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

type ToggleTaskOutput struct {
	Task model.Task
}
