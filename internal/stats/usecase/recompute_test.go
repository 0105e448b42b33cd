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

func newUseCase(repo *mockRepo) stats.UseCase {
	return usecase.New(repo, &mockLogger{}, rand.New(rand.NewSource(1)), stats.DefaultScoreConfig(480))
}

func taskSet() []model.Task {
	return []model.Task{
		{Difficulty: 4, EstimatedTime: 120, TagID: "work", Deadline: "2024-09-04", IsCompleted: true},
		{Difficulty: 2, EstimatedTime: 60, TagID: "work", Deadline: "2024-09-04"},
		{Difficulty: 3, EstimatedTime: 90, TagID: "errand", Deadline: "2024-09-04", IsLife: true},
	}
}

func TestRecompute(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Set Deletes Record", func(t *testing.T) {
		repo := &mockRepo{
			listTasksFunc: func(opt repository.ListTasksByDeadlineOptions) ([]model.Task, error) {
				return nil, nil
			},
		}
		uc := newUseCase(repo)

		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deletes) != 1 {
			t.Fatalf("expected one delete, got %d", len(repo.deletes))
		}
		if len(repo.upserts) != 0 {
			t.Errorf("expected no upsert on empty set")
		}
		if repo.deletes[0].Date != "2024-09-04" || repo.deletes[0].UserID != "user-1" {
			t.Errorf("delete keyed wrong: %+v", repo.deletes[0])
		}
	})

	t.Run("Empty Set Without Prior Record Is Noop", func(t *testing.T) {
		// The store delete is idempotent; recompute only requires that no
		// error surfaces when nothing was there to remove.
		repo := &mockRepo{}
		uc := newUseCase(repo)

		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Non Empty Set Upserts Full Record", func(t *testing.T) {
		repo := &mockRepo{
			listTasksFunc: func(opt repository.ListTasksByDeadlineOptions) ([]model.Task, error) {
				return taskSet(), nil
			},
		}
		uc := newUseCase(repo)

		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.upserts) != 1 {
			t.Fatalf("expected one upsert, got %d", len(repo.upserts))
		}

		up := repo.upserts[0]
		if up.Date != "2024-09-04" || up.UserID != "user-1" {
			t.Errorf("upsert keyed wrong: date=%s user=%s", up.Date, up.UserID)
		}
		if up.BalanceData.BalanceNum < 0 || up.BalanceData.BalanceNum > 100 {
			t.Errorf("balance out of range: %d", up.BalanceData.BalanceNum)
		}
		if up.BalanceData.Title == "" || up.BalanceData.Message == "" {
			t.Errorf("missing balance message: %+v", up.BalanceData)
		}
		if up.ProductivityNum < 0 {
			t.Errorf("negative productivity: %f", up.ProductivityNum)
		}
		if len(up.TagStats) != 2 || up.TagStats[0].TagID != "work" || up.TagStats[0].Count != 2 {
			t.Errorf("unexpected tag stats: %v", up.TagStats)
		}
		for _, v := range up.Center {
			if v < 0.2 || v > 0.8 {
				t.Errorf("center out of range: %v", up.Center)
			}
		}
		if len(repo.deletes) != 0 {
			t.Errorf("expected no delete on non-empty set")
		}
	})

	t.Run("Idempotent Modulo Message And Center", func(t *testing.T) {
		repo := &mockRepo{
			listTasksFunc: func(opt repository.ListTasksByDeadlineOptions) ([]model.Task, error) {
				return taskSet(), nil
			},
		}
		uc := newUseCase(repo)

		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first, second := repo.upserts[0], repo.upserts[1]
		if first.BalanceData.BalanceNum != second.BalanceData.BalanceNum {
			t.Errorf("balance changed on identical input: %d vs %d",
				first.BalanceData.BalanceNum, second.BalanceData.BalanceNum)
		}
		if first.ProductivityNum != second.ProductivityNum {
			t.Errorf("productivity changed on identical input")
		}
		if len(first.TagStats) != len(second.TagStats) {
			t.Fatalf("tag stats length changed")
		}
		for i := range first.TagStats {
			if first.TagStats[i] != second.TagStats[i] {
				t.Errorf("tag stats changed on identical input")
			}
		}
	})

	t.Run("Query Error Propagates", func(t *testing.T) {
		queryErr := errors.New("store down")
		repo := &mockRepo{
			listTasksFunc: func(opt repository.ListTasksByDeadlineOptions) ([]model.Task, error) {
				return nil, queryErr
			},
		}
		uc := newUseCase(repo)

		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); !errors.Is(err, queryErr) {
			t.Errorf("expected query error to propagate, got %v", err)
		}
	})

	t.Run("Upsert Error Propagates", func(t *testing.T) {
		upsertErr := errors.New("write failed")
		repo := &mockRepo{
			listTasksFunc: func(opt repository.ListTasksByDeadlineOptions) ([]model.Task, error) {
				return taskSet(), nil
			},
			upsertFunc: func(opt repository.UpsertStatOptions) error { return upsertErr },
		}
		uc := newUseCase(repo)

		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); !errors.Is(err, upsertErr) {
			t.Errorf("expected upsert error to propagate, got %v", err)
		}
	})

	t.Run("Misconfigured Capacity Fails", func(t *testing.T) {
		repo := &mockRepo{
			listTasksFunc: func(opt repository.ListTasksByDeadlineOptions) ([]model.Task, error) {
				return taskSet(), nil
			},
		}
		uc := usecase.New(repo, &mockLogger{}, rand.New(rand.NewSource(1)), stats.DefaultScoreConfig(0))

		if err := uc.Recompute(ctx, "2024-09-04", "user-1"); !errors.Is(err, stats.ErrInvalidCapacity) {
			t.Errorf("expected ErrInvalidCapacity, got %v", err)
		}
		if len(repo.upserts) != 0 {
			t.Errorf("no write may happen after a scoring failure")
		}
	})
}
