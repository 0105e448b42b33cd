package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"daily-task-management/internal/model"
	repo "daily-task-management/internal/tag/repository"
)

// CreateTag inserts a new Tag row and returns the created entity.
func (r *implRepository) CreateTag(ctx context.Context, opt repo.CreateTagOptions) (model.Tag, error) {
	const query = `
		INSERT INTO tags (id, user_id, name, color, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, name, color, created_at`

	var tag model.Tag
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.UserID, opt.Name, opt.Color).Scan(
		&tag.ID, &tag.UserID, &tag.Name, &tag.Color, &tag.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTag"), err)
		return model.Tag{}, repo.ErrFailedToInsert
	}
	return tag, nil
}

// GetOneTag retrieves a single Tag by the provided filters (AND condition).
// Returns zero-value Tag (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneTag(ctx context.Context, opt repo.GetOneTagOptions) (model.Tag, error) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	idx := 2

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
	}

	query := fmt.Sprintf(
		`SELECT id, user_id, name, color, created_at FROM tags WHERE %s LIMIT 1`,
		strings.Join(conditions, " AND "),
	)

	var tag model.Tag
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&tag.ID, &tag.UserID, &tag.Name, &tag.Color, &tag.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Tag{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTag"), err)
		return model.Tag{}, repo.ErrFailedToGet
	}
	return tag, nil
}

// ListTags returns the user's tags ordered by creation time.
func (r *implRepository) ListTags(ctx context.Context, opt repo.ListTagsOptions) ([]model.Tag, error) {
	const query = `
		SELECT id, user_id, name, color, created_at FROM tags
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.UserID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTags"), err)
			return nil, repo.ErrFailedToList
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTags"), err)
		return nil, repo.ErrFailedToList
	}
	return tags, nil
}

// UpdateTag updates a Tag scoped to its owner and returns the updated entity.
func (r *implRepository) UpdateTag(ctx context.Context, opt repo.UpdateTagOptions) (model.Tag, error) {
	const query = `
		UPDATE tags
		SET name = $1, color = $2
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, name, color, created_at`

	var tag model.Tag
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Color, opt.ID, opt.UserID).Scan(
		&tag.ID, &tag.UserID, &tag.Name, &tag.Color, &tag.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Tag{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTag"), err)
		return model.Tag{}, repo.ErrFailedToUpdate
	}
	return tag, nil
}

// DeleteTag removes a Tag; the tasks FK nulls their tag reference.
func (r *implRepository) DeleteTag(ctx context.Context, opt repo.DeleteTagOptions) error {
	const query = `DELETE FROM tags WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTag"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
