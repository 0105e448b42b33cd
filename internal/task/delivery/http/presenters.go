package http

import (
	"time"

	"daily-task-management/internal/model"
	"daily-task-management/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Raw           string `json:"raw"            binding:"max=1000"`
	Title         string `json:"title"          binding:"required,min=1,max=255"`
	IsImportant   bool   `json:"is_important"`
	IsLife        bool   `json:"is_life"`
	TagID         string `json:"tag_id"         binding:"omitempty,uuid"`
	Difficulty    int    `json:"difficulty"     binding:"required,min=1,max=5"`
	EstimatedTime int    `json:"estimated_time" binding:"min=0"`
	Deadline      string `json:"deadline"       binding:"max=100"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Raw:           r.Raw,
		Title:         r.Title,
		IsImportant:   r.IsImportant,
		IsLife:        r.IsLife,
		TagID:         r.TagID,
		Difficulty:    r.Difficulty,
		EstimatedTime: r.EstimatedTime,
		Deadline:      r.Deadline,
	}
}

// ---

type listReq struct {
	Sort string `form:"sort" binding:"omitempty,oneof=default important recent"`
}

func (r listReq) toInput() task.ListTasksInput {
	sort := r.Sort
	if sort == "" {
		sort = task.SortDefault
	}
	return task.ListTasksInput{Sort: sort}
}

// ---

type updateReq struct {
	ID            string  `json:"-"` // populated from URI param
	Title         *string `json:"title"          binding:"omitempty,min=1,max=255"`
	IsImportant   *bool   `json:"is_important"`
	IsLife        *bool   `json:"is_life"`
	TagID         *string `json:"tag_id"         binding:"omitempty,uuid"`
	Difficulty    *int    `json:"difficulty"     binding:"omitempty,min=1,max=5"`
	EstimatedTime *int    `json:"estimated_time" binding:"omitempty,min=0"`
	Deadline      *string `json:"deadline"       binding:"omitempty,max=100"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:            r.ID,
		Title:         r.Title,
		IsImportant:   r.IsImportant,
		IsLife:        r.IsLife,
		TagID:         r.TagID,
		Difficulty:    r.Difficulty,
		EstimatedTime: r.EstimatedTime,
		Deadline:      r.Deadline,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string    `json:"id"`
	Raw           string    `json:"raw"`
	Title         string    `json:"title"`
	IsImportant   bool      `json:"is_important"`
	IsLife        bool      `json:"is_life"`
	TagID         string    `json:"tag_id,omitempty"`
	Difficulty    int       `json:"difficulty"`
	EstimatedTime int       `json:"estimated_time"`
	Deadline      string    `json:"deadline"`
	IsCompleted   bool      `json:"is_completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Raw:           t.Raw,
		Title:         t.Title,
		IsImportant:   t.IsImportant,
		IsLife:        t.IsLife,
		TagID:         t.TagID,
		Difficulty:    t.Difficulty,
		EstimatedTime: t.EstimatedTime,
		Deadline:      t.Deadline,
		IsCompleted:   t.IsCompleted,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleTaskOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}
