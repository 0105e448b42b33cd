package usecase_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"daily-task-management/internal/model"
	"daily-task-management/internal/stats"
	"daily-task-management/internal/stats/repository"
	"daily-task-management/internal/stats/usecase"
)

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Scoped To Caller", func(t *testing.T) {
		var gotOpt repository.ListStatsOptions
		repo := &mockRepo{
			listStatsFunc: func(opt repository.ListStatsOptions) ([]model.DailyStat, error) {
				gotOpt = opt
				return []model.DailyStat{{Date: "2024-09-04"}}, nil
			},
		}
		uc := newUseCase(repo)

		out, err := uc.List(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpt.UserID != "user-1" {
			t.Errorf("expected user scoping, got %+v", gotOpt)
		}
		if len(out.Stats) != 1 {
			t.Errorf("expected one stat, got %d", len(out.Stats))
		}
	})
}

func TestRange(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Start Clamped To Month Begin", func(t *testing.T) {
		var gotOpt repository.ListStatsOptions
		repo := &mockRepo{
			listStatsFunc: func(opt repository.ListStatsOptions) ([]model.DailyStat, error) {
				gotOpt = opt
				return nil, nil
			},
		}
		uc := newUseCase(repo)

		_, err := uc.Range(ctx, sc, stats.RangeInput{Start: "2024-09-15", End: "2024-09-30"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpt.StartDate != "2024-09-01" {
			t.Errorf("expected start clamped to 2024-09-01, got %s", gotOpt.StartDate)
		}
		if gotOpt.EndDate != "2024-09-30" {
			t.Errorf("expected end 2024-09-30, got %s", gotOpt.EndDate)
		}
	})

	t.Run("Malformed Range", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, &mockLogger{}, rand.New(rand.NewSource(1)), stats.DefaultScoreConfig(480))

		_, err := uc.Range(ctx, sc, stats.RangeInput{Start: "not-a-date", End: "2024-09-30"})
		if !errors.Is(err, stats.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})
}
