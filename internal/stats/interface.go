package stats

import (
	"context"

	"daily-task-management/internal/model"
)

type UseCase interface {
	// Recompute rebuilds the DailyStat for (date, user) from the current
	// task snapshot: delete when no task remains, full-record upsert
	// otherwise. Called by the task layer after every mutation.
	Recompute(ctx context.Context, date string, userID string) error

	// List returns every stat of the caller ordered by date ascending.
	List(ctx context.Context, sc model.Scope) (ListStatsOutput, error)

	// Range returns stats within [start-of-start-month, end].
	Range(ctx context.Context, sc model.Scope, input RangeInput) (ListStatsOutput, error)
}
