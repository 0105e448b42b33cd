package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"daily-task-management/internal/model"
	repo "daily-task-management/internal/task/repository"
)

const taskColumns = `id, user_id, raw, title, is_important, is_life,
	COALESCE(tag_id::text, ''), difficulty, estimated_time, deadline,
	is_completed, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Raw, &t.Title, &t.IsImportant, &t.IsLife,
		&t.TagID, &t.Difficulty, &t.EstimatedTime, &t.Deadline,
		&t.IsCompleted, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, raw, title, is_important, is_life, tag_id,
			difficulty, estimated_time, deadline, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9, $10, FALSE, NOW(), NOW())
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Raw, opt.Title, opt.IsImportant, opt.IsLife,
		opt.TagID, opt.Difficulty, opt.EstimatedTime, opt.Deadline,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task scoped to its owner.
// Returns zero-value Task (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND user_id = $2 LIMIT 1`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns the tasks matching the options in the requested order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask replaces the mutable fields of a Task and returns the updated
// entity. Returns zero-value Task when no row matched.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		UPDATE tasks
		SET title = $1, is_important = $2, is_life = $3, tag_id = NULLIF($4, '')::uuid,
			difficulty = $5, estimated_time = $6, deadline = $7, is_completed = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11
		RETURNING %s`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.IsImportant, opt.IsLife, opt.TagID,
		opt.Difficulty, opt.EstimatedTime, opt.Deadline, opt.IsCompleted, time.Now(),
		opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task scoped to its owner.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
