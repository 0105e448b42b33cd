package postgre

import (
	"context"
	"encoding/json"

	"daily-task-management/internal/model"
	repo "daily-task-management/internal/stats/repository"
)

// ListTasksByDeadline returns the consistent task snapshot for one
// (deadline, user) aggregation key.
func (r *implRepository) ListTasksByDeadline(ctx context.Context, opt repo.ListTasksByDeadlineOptions) ([]model.Task, error) {
	const query = `
		SELECT id, user_id, COALESCE(tag_id::text, ''), difficulty, estimated_time,
		       is_life, is_completed, deadline
		FROM tasks
		WHERE deadline = $1 AND user_id = $2
		ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, opt.Deadline, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasksByDeadline"), err)
		return nil, repo.ErrFailedToQueryTasks
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.TagID, &task.Difficulty,
			&task.EstimatedTime, &task.IsLife, &task.IsCompleted, &task.Deadline,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasksByDeadline"), err)
			return nil, repo.ErrFailedToQueryTasks
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasksByDeadline"), err)
		return nil, repo.ErrFailedToQueryTasks
	}
	return tasks, nil
}

// UpsertStat writes the full replacement payload keyed on (date, user).
// Fields outside the enumerated set are left untouched.
func (r *implRepository) UpsertStat(ctx context.Context, opt repo.UpsertStatOptions) error {
	balanceData, err := json.Marshal(opt.BalanceData)
	if err != nil {
		return repo.ErrFailedToUpsert
	}
	tagStats, err := json.Marshal(opt.TagStats)
	if err != nil {
		return repo.ErrFailedToUpsert
	}
	center, err := json.Marshal(opt.Center)
	if err != nil {
		return repo.ErrFailedToUpsert
	}

	const query = `
		INSERT INTO daily_stats (user_id, date, balance_data, productivity_num, tag_stats, center, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id, date) DO UPDATE SET
			balance_data = EXCLUDED.balance_data,
			productivity_num = EXCLUDED.productivity_num,
			tag_stats = EXCLUDED.tag_stats,
			center = EXCLUDED.center,
			updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query,
		opt.UserID, opt.Date, balanceData, opt.ProductivityNum, tagStats, center,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertStat"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// DeleteStat removes the record for (date, user); absent records are a no-op.
func (r *implRepository) DeleteStat(ctx context.Context, opt repo.DeleteStatOptions) error {
	const query = `DELETE FROM daily_stats WHERE user_id = $1 AND date = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.Date); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteStat"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListStats returns the user's stat records ordered by date ascending,
// optionally bounded by [StartDate, EndDate].
func (r *implRepository) ListStats(ctx context.Context, opt repo.ListStatsOptions) ([]model.DailyStat, error) {
	query := `
		SELECT id, user_id, date, balance_data, productivity_num, tag_stats, center, updated_at
		FROM daily_stats
		WHERE user_id = $1`
	args := []any{opt.UserID}

	if opt.StartDate != "" && opt.EndDate != "" {
		query += ` AND date >= $2 AND date <= $3`
		args = append(args, opt.StartDate, opt.EndDate)
	}
	query += ` ORDER BY date`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStats"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []model.DailyStat
	for rows.Next() {
		var stat model.DailyStat
		var balanceData, tagStats, center []byte
		if err := rows.Scan(
			&stat.ID, &stat.UserID, &stat.Date,
			&balanceData, &stat.ProductivityNum, &tagStats, &center, &stat.UpdatedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListStats"), err)
			return nil, repo.ErrFailedToList
		}
		if err := json.Unmarshal(balanceData, &stat.BalanceData); err != nil {
			return nil, repo.ErrFailedToList
		}
		if err := json.Unmarshal(tagStats, &stat.TagStats); err != nil {
			return nil, repo.ErrFailedToList
		}
		if err := json.Unmarshal(center, &stat.Center); err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, stat)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListStats"), err)
		return nil, repo.ErrFailedToList
	}
	return out, nil
}
