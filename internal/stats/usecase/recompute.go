package usecase

import (
	"context"

	"daily-task-management/internal/model"
	"daily-task-management/internal/stats"
	repo "daily-task-management/internal/stats/repository"
)

// Recompute rebuilds the DailyStat for (date, user) from the current task
// snapshot: exactly one read, then at most one write (delete when the key
// has no tasks left, full-record upsert otherwise).
//
// Concurrent calls for the same key are not serialized; the replace-all
// upsert makes a race last-writer-wins, and any write still reflects a
// complete snapshot. Callers needing strict ordering must serialize per key
// themselves.
func (uc *implUseCase) Recompute(ctx context.Context, date string, userID string) error {
	tasks, err := uc.repo.ListTasksByDeadline(ctx, repo.ListTasksByDeadlineOptions{
		Deadline: date,
		UserID:   userID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recompute ListTasksByDeadline: %v", err)
		return err
	}

	if len(tasks) == 0 {
		if err := uc.repo.DeleteStat(ctx, repo.DeleteStatOptions{Date: date, UserID: userID}); err != nil {
			uc.l.Errorf(ctx, "uc.Recompute DeleteStat: %v", err)
			return err
		}
		return nil
	}

	scores, err := stats.ComputeScores(tasks, uc.scoreCfg)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recompute ComputeScores: %v", err)
		return err
	}
	tagStats := stats.AggregateTags(tasks)
	message := stats.PickBalanceMessage(scores.BalanceNum, uc.rng)

	if err := uc.repo.UpsertStat(ctx, repo.UpsertStatOptions{
		Date:   date,
		UserID: userID,
		BalanceData: model.BalanceData{
			Title:      message.Title,
			Message:    message.Message,
			BalanceNum: scores.BalanceNum,
		},
		ProductivityNum: scores.ProductivityNum,
		TagStats:        tagStats,
		Center:          stats.DrawCenter(uc.rng),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Recompute UpsertStat: %v", err)
		return err
	}

	uc.l.Debugf(ctx, "daily stats updated: date=%s balance=%d", date, scores.BalanceNum)
	return nil
}
