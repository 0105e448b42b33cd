package repository

import (
	"context"

	"daily-task-management/internal/model"
)

// Repository is the composed interface for the stats aggregation store.
type Repository interface {
	TaskQueryRepository
	StatRepository
}

// TaskQueryRepository reads the task snapshot feeding a recomputation.
type TaskQueryRepository interface {
	ListTasksByDeadline(ctx context.Context, opt ListTasksByDeadlineOptions) ([]model.Task, error)
}

// StatRepository defines all data access methods for the DailyStat record.
type StatRepository interface {
	// UpsertStat creates-or-replaces the stat keyed on (date, user),
	// rewriting balance data, productivity, tag stats and center entirely.
	UpsertStat(ctx context.Context, opt UpsertStatOptions) error
	// DeleteStat is idempotent; deleting an absent record is not an error.
	DeleteStat(ctx context.Context, opt DeleteStatOptions) error
	ListStats(ctx context.Context, opt ListStatsOptions) ([]model.DailyStat, error)
}
