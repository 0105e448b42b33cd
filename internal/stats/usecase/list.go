package usecase

import (
	"context"
	"time"

	"daily-task-management/internal/model"
	"daily-task-management/internal/stats"
	repo "daily-task-management/internal/stats/repository"
)

// List returns every stat record of the caller, date ascending.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (stats.ListStatsOutput, error) {
	records, err := uc.repo.ListStats(ctx, repo.ListStatsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListStats: %v", err)
		return stats.ListStatsOutput{}, err
	}
	return stats.ListStatsOutput{Stats: records}, nil
}

// Range returns the caller's stats between the first day of the start
// month and the end date inclusive.
func (uc *implUseCase) Range(ctx context.Context, sc model.Scope, input stats.RangeInput) (stats.ListStatsOutput, error) {
	start, err := time.Parse("2006-01-02", input.Start)
	if err != nil {
		return stats.ListStatsOutput{}, stats.ErrInvalidRange
	}
	if _, err := time.Parse("2006-01-02", input.End); err != nil {
		return stats.ListStatsOutput{}, stats.ErrInvalidRange
	}

	// The range always opens at the first of the start month so a monthly
	// chart receives the whole month regardless of the requested day.
	monthStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")

	records, err := uc.repo.ListStats(ctx, repo.ListStatsOptions{
		UserID:    sc.UserID,
		StartDate: monthStart,
		EndDate:   input.End,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Range ListStats: %v", err)
		return stats.ListStatsOutput{}, err
	}
	return stats.ListStatsOutput{Stats: records}, nil
}
